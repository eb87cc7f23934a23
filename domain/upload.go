package domain

import "mime/multipart"

// ProfileAssets are the staged files resolved for one business-profile slot.
// The association is positional: Profiles[i] belongs to the i-th entry of the
// submitted business-profile list.
type ProfileAssets struct {
	Image   string   `json:"image"`
	Gallery []string `json:"gallery"`
}

// StagedAssets holds every file written to storage for one request before
// the registration transaction opens. If the transaction fails, all listed
// paths must be deleted.
type StagedAssets struct {
	ProfileImage string          `json:"profile_image"`
	Profiles     []ProfileAssets `json:"profiles"`
}

// All returns every staged path, for compensating cleanup.
func (s *StagedAssets) All() []string {
	if s == nil {
		return nil
	}
	var paths []string
	if s.ProfileImage != "" {
		paths = append(paths, s.ProfileImage)
	}
	for _, p := range s.Profiles {
		if p.Image != "" {
			paths = append(paths, p.Image)
		}
		paths = append(paths, p.Gallery...)
	}
	return paths
}

// ProfileAt returns the assets for the i-th business profile, or an empty
// set when no files were staged for that slot.
func (s *StagedAssets) ProfileAt(i int) ProfileAssets {
	if s == nil || i < 0 || i >= len(s.Profiles) {
		return ProfileAssets{}
	}
	return s.Profiles[i]
}

// AssetStager writes uploaded files to content storage ahead of
// orchestration and deletes them again when the request fails.
type AssetStager interface {
	Stage(form *multipart.Form) (*StagedAssets, error)
	StageProfileSlot(form *multipart.Form) (*ProfileAssets, error)
	Cleanup(paths []string)
}
