package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"memberhub/domain"

	"github.com/asaskevich/govalidator"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// memberNoAttempts bounds how often a colliding member number is regenerated
// before the registration is given up as a conflict.
const memberNoAttempts = 3

type memberUseCase struct {
	repo    domain.MemberRepo
	stager  domain.AssetStager
	gen     MemberNoGenerator
	log     *logrus.Logger
	TimeOut time.Duration
}

func NewMemberUseCase(repo domain.MemberRepo, stager domain.AssetStager, gen MemberNoGenerator, log *logrus.Logger, to time.Duration) domain.MemberUseCase {
	return &memberUseCase{
		repo:    repo,
		stager:  stager,
		gen:     gen,
		log:     log,
		TimeOut: to,
	}
}

// Register runs the whole registration workflow. The asset stager has
// already written every uploaded file before this is called, so every exit
// path that is not a committed transaction must delete those files again.
func (mu *memberUseCase) Register(ctx context.Context, req *domain.RegisterRequest, assets *domain.StagedAssets) (*domain.RegisteredMember, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.TimeOut)
	defer cancel()

	res, err := mu.register(ctx, req, assets)
	if err != nil {
		mu.stager.Cleanup(assets.All())
		return nil, err
	}
	return res, nil
}

func (mu *memberUseCase) register(ctx context.Context, req *domain.RegisterRequest, assets *domain.StagedAssets) (*domain.RegisteredMember, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	profiles, err := ParseBusinessProfiles(req.BusinessProfiles)
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if err := validateStruct(&profiles[i]); err != nil {
			return nil, err
		}
	}

	// Every staged file must end up referenced by a persisted row. A file
	// staged for a slot beyond the submitted profile list can never be, so
	// the request is rejected and the error path deletes the files.
	if assets != nil {
		for i := len(profiles); i < len(assets.Profiles); i++ {
			if slot := assets.Profiles[i]; slot.Image != "" || len(slot.Gallery) > 0 {
				return nil, domain.NewValidationError(
					fmt.Sprintf("business profile slot %d has files but no matching business_profiles entry", i))
			}
		}
	}

	family, err := ParseFamilyDetails(req.FamilyDetails)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %v", err)
	}

	reg := &domain.Registration{
		Member: domain.Member{
			Name:          req.Name,
			Email:         req.Email,
			Password:      string(hash),
			Telephone:     req.Telephone,
			Address:       req.Address,
			About:         req.About,
			MaritalStatus: req.MaritalStatus,
			Status:        domain.StatusPending,
			AccessLevel:   domain.AccessBasic,
		},
		ReferralCode: strings.TrimSpace(req.ReferralCode),
		ReferralName: req.ReferralName,
	}

	if assets != nil && assets.ProfileImage != "" {
		reg.Member.ProfileImage = filepath.ToSlash(assets.ProfileImage)
	}

	for i, in := range profiles {
		slot := assets.ProfileAt(i)

		gallery := make(domain.StringList, 0, len(slot.Gallery))
		for _, p := range slot.Gallery {
			gallery = append(gallery, filepath.ToSlash(p))
		}

		reg.Profiles = append(reg.Profiles, domain.BusinessProfile{
			CompanyName:  in.CompanyName,
			CompanyEmail: in.CompanyEmail,
			CompanyPhone: in.CompanyPhone,
			Address:      in.Address,
			Website:      in.Website,
			Description:  in.Description,
			ProfileImage: filepath.ToSlash(slot.Image),
			MediaGallery: gallery,
			MediaType:    ClassifyGallery(gallery),
		})
	}

	if !family.Empty() {
		reg.Family = ShapeFamilyRecord(req.MaritalStatus, family)
	}

	var member *domain.Member
	for attempt := 0; attempt < memberNoAttempts; attempt++ {
		reg.Member.MemberNo = mu.gen.Next()
		member, err = mu.repo.Register(ctx, reg)
		if errors.Is(err, domain.ErrDuplicateMemberNo) {
			mu.log.Warnf("member number collision on %s, regenerating", reg.Member.MemberNo)
			continue
		}
		break
	}
	if err != nil {
		return nil, mapRegisterError(err)
	}

	return &domain.RegisteredMember{
		ID:           member.ID,
		MemberNo:     member.MemberNo,
		Name:         member.Name,
		Email:        member.Email,
		ProfileImage: member.ProfileImage,
		CreatedAt:    member.CreatedAt,
	}, nil
}

// mapRegisterError keeps user-correctable failures as-is and wraps the rest
// as persistence failures.
func mapRegisterError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidReferral),
		errors.Is(err, domain.ErrDuplicateMemberNo):
		return err
	default:
		return &domain.PersistenceError{Op: "register member", Err: err}
	}
}

// ShapeFamilyRecord builds the persisted family record from raw input.
// Spouse and children fields are only legal for married members; a children
// list whose length disagrees with the declared count is dropped silently.
func ShapeFamilyRecord(maritalStatus string, in *domain.FamilyInput) *domain.FamilyRecord {
	rec := &domain.FamilyRecord{
		FatherName:    in.FatherName,
		FatherContact: in.FatherContact,
		MotherName:    in.MotherName,
		MotherContact: in.MotherContact,
		Address:       in.Address,
	}

	if strings.EqualFold(strings.TrimSpace(maritalStatus), "married") {
		rec.SpouseName = in.SpouseName
		rec.SpouseContact = in.SpouseContact
		rec.NumberOfChildren = in.NumberOfChildren
		if in.NumberOfChildren > 0 && len(in.ChildrenNames) == in.NumberOfChildren {
			rec.ChildrenNames = domain.StringList(in.ChildrenNames)
		}
	}

	return rec
}

// validateStruct reports every failed govalidator check for the struct as
// one ValidationError.
func validateStruct(s interface{}) error {
	if _, err := govalidator.ValidateStruct(s); err != nil {
		var fields []string
		for field, msg := range govalidator.ErrorsByField(err) {
			fields = append(fields, fmt.Sprintf("%s: %s", field, msg))
		}
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
