package usecase

import (
	"context"
	"path/filepath"
	"time"

	"memberhub/domain"
)

type businessProfileUseCase struct {
	repo    domain.BusinessProfileRepo
	stager  domain.AssetStager
	TimeOut time.Duration
}

func NewBusinessProfileUseCase(repo domain.BusinessProfileRepo, stager domain.AssetStager, to time.Duration) domain.BusinessProfileUseCase {
	return &businessProfileUseCase{
		repo:    repo,
		stager:  stager,
		TimeOut: to,
	}
}

// UpsertByMember applies one business profile for a member. Files for this
// slot were staged before this runs; if persistence fails they are deleted
// again, same discipline as registration.
func (bu *businessProfileUseCase) UpsertByMember(ctx context.Context, memberID int, input *domain.BusinessProfileInput, assets *domain.ProfileAssets) (*domain.BusinessProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, bu.TimeOut)
	defer cancel()

	profile, err := bu.upsert(ctx, memberID, input, assets)
	if err != nil && assets != nil {
		staged := domain.StagedAssets{Profiles: []domain.ProfileAssets{*assets}}
		bu.stager.Cleanup(staged.All())
	}
	return profile, err
}

func (bu *businessProfileUseCase) upsert(ctx context.Context, memberID int, input *domain.BusinessProfileInput, assets *domain.ProfileAssets) (*domain.BusinessProfile, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	profile := &domain.BusinessProfile{
		MemberID:     memberID,
		CompanyName:  input.CompanyName,
		CompanyEmail: input.CompanyEmail,
		CompanyPhone: input.CompanyPhone,
		Address:      input.Address,
		Website:      input.Website,
		Description:  input.Description,
	}

	if assets != nil {
		profile.ProfileImage = filepath.ToSlash(assets.Image)
		gallery := make(domain.StringList, 0, len(assets.Gallery))
		for _, p := range assets.Gallery {
			gallery = append(gallery, filepath.ToSlash(p))
		}
		profile.MediaGallery = gallery
		profile.MediaType = ClassifyGallery(gallery)
	} else {
		// A body-only update must not detach media already on the profile.
		// The repository upserts the first profile by id, so its media is
		// carried over.
		existing, err := bu.repo.GetByMember(ctx, memberID)
		if err != nil {
			return nil, err
		}
		if existing != nil && len(*existing) > 0 {
			cur := (*existing)[0]
			profile.ProfileImage = cur.ProfileImage
			profile.MediaGallery = cur.MediaGallery
			profile.MediaType = cur.MediaType
		}
	}

	if err := bu.repo.UpsertByMember(ctx, memberID, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (bu *businessProfileUseCase) GetByMember(ctx context.Context, memberID int) (*[]domain.BusinessProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, bu.TimeOut)
	defer cancel()

	return bu.repo.GetByMember(ctx, memberID)
}
