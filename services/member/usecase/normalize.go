package usecase

import (
	"strings"

	"memberhub/domain"

	"github.com/bytedance/sonic"
)

// ParseBusinessProfiles settles the business-profile list into structured
// form. Multipart submissions carry it as serialized JSON text while JSON
// bodies may carry it already structured; both are accepted here so nothing
// downstream ever sees the raw shape. At least one profile is mandatory.
func ParseBusinessProfiles(v interface{}) ([]domain.BusinessProfileInput, error) {
	var profiles []domain.BusinessProfileInput

	switch raw := v.(type) {
	case nil:
		return nil, domain.NewValidationError("business_profiles: at least one business profile is required")
	case []domain.BusinessProfileInput:
		profiles = raw
	case string:
		if strings.TrimSpace(raw) == "" {
			return nil, domain.NewValidationError("business_profiles: at least one business profile is required")
		}
		if err := sonic.Unmarshal([]byte(raw), &profiles); err != nil {
			return nil, domain.NewValidationError("business_profiles: malformed value, expected a JSON list")
		}
	case []byte:
		if err := sonic.Unmarshal(raw, &profiles); err != nil {
			return nil, domain.NewValidationError("business_profiles: malformed value, expected a JSON list")
		}
	default:
		// Structured but untyped (decoded request body). Round-trip it.
		b, err := sonic.Marshal(raw)
		if err != nil {
			return nil, domain.NewValidationError("business_profiles: malformed value, expected a JSON list")
		}
		if err := sonic.Unmarshal(b, &profiles); err != nil {
			return nil, domain.NewValidationError("business_profiles: malformed value, expected a JSON list")
		}
	}

	if len(profiles) == 0 {
		return nil, domain.NewValidationError("business_profiles: at least one business profile is required")
	}

	return profiles, nil
}

// ParseFamilyDetails settles the optional family-details object. Absent or
// empty input yields an empty record, which registration treats as "no
// family details". Malformed text is a validation failure, never a panic.
func ParseFamilyDetails(v interface{}) (*domain.FamilyInput, error) {
	family := &domain.FamilyInput{}

	switch raw := v.(type) {
	case nil:
		return family, nil
	case domain.FamilyInput:
		*family = raw
	case *domain.FamilyInput:
		if raw != nil {
			*family = *raw
		}
	case string:
		if strings.TrimSpace(raw) == "" {
			return family, nil
		}
		if err := sonic.Unmarshal([]byte(raw), family); err != nil {
			return nil, domain.NewValidationError("family_details: malformed value, expected a JSON object")
		}
	case []byte:
		if err := sonic.Unmarshal(raw, family); err != nil {
			return nil, domain.NewValidationError("family_details: malformed value, expected a JSON object")
		}
	default:
		b, err := sonic.Marshal(raw)
		if err != nil {
			return nil, domain.NewValidationError("family_details: malformed value, expected a JSON object")
		}
		if err := sonic.Unmarshal(b, family); err != nil {
			return nil, domain.NewValidationError("family_details: malformed value, expected a JSON object")
		}
	}

	return family, nil
}
