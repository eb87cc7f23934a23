package repository

import (
	"context"
	"errors"
	"fmt"

	"memberhub/domain"

	"gorm.io/gorm"
)

type businessProfileRepository struct {
	db *gorm.DB
}

func NewBusinessProfileRepository(db *gorm.DB) domain.BusinessProfileRepo {
	return &businessProfileRepository{
		db: db,
	}
}

// UpsertByMember updates the member's business profile in place if one
// exists, otherwise creates it. Runs in its own transaction so a failed
// write never leaves a half-updated row behind.
func (br *businessProfileRepository) UpsertByMember(ctx context.Context, memberID int, profile *domain.BusinessProfile) error {
	return br.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("members").Where("id = ?", memberID).Count(&count).Error; err != nil {
			return fmt.Errorf("could not check member: %v", err)
		}
		if count == 0 {
			return domain.ErrNotFound
		}

		var existing domain.BusinessProfile
		err := tx.Where("member_id = ?", memberID).Order("id").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile.MemberID = memberID
			if err := tx.Create(profile).Error; err != nil {
				return fmt.Errorf("could not create business profile: %v", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not load business profile: %v", err)
		}

		profile.ID = existing.ID
		profile.MemberID = memberID
		profile.CreatedAt = existing.CreatedAt
		if err := tx.Save(profile).Error; err != nil {
			return fmt.Errorf("could not update business profile: %v", err)
		}
		return nil
	})
}

func (br *businessProfileRepository) GetByMember(ctx context.Context, memberID int) (*[]domain.BusinessProfile, error) {
	var profiles []domain.BusinessProfile

	err := br.db.WithContext(ctx).Where("member_id = ?", memberID).Order("id").Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("could not get business profiles: %v", err)
	}

	return &profiles, nil
}
