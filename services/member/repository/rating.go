package repository

import (
	"context"
	"errors"
	"fmt"

	"memberhub/domain"

	"gorm.io/gorm"
)

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) domain.RatingRepo {
	return &ratingRepository{
		db: db,
	}
}

// RateBusiness upserts the caller's rating for a business and notifies the
// business owner in the same transaction.
func (rr *ratingRepository) RateBusiness(ctx context.Context, rating *domain.Rating) error {
	return rr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var business domain.BusinessProfile
		err := tx.Where("id = ?", rating.BusinessProfileID).First(&business).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("could not load business profile: %v", err)
		}

		var existing domain.Rating
		err = tx.Where("business_profile_id = ? AND member_id = ?", rating.BusinessProfileID, rating.MemberID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(rating).Error; err != nil {
				return fmt.Errorf("could not create rating: %v", err)
			}
		} else if err != nil {
			return fmt.Errorf("could not load rating: %v", err)
		} else {
			rating.ID = existing.ID
			rating.CreatedAt = existing.CreatedAt
			if err := tx.Save(rating).Error; err != nil {
				return fmt.Errorf("could not update rating: %v", err)
			}
		}

		notification := domain.Notification{
			MemberID: business.MemberID,
			Kind:     "rating",
			Body:     fmt.Sprintf("%s received a %d-star rating", business.CompanyName, rating.Score),
		}
		if err := tx.Create(&notification).Error; err != nil {
			return fmt.Errorf("could not create notification: %v", err)
		}

		return nil
	})
}

func (rr *ratingRepository) GetByBusiness(ctx context.Context, businessProfileID int) (*[]domain.Rating, error) {
	var ratings []domain.Rating

	err := rr.db.WithContext(ctx).Where("business_profile_id = ?", businessProfileID).Order("id").Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("could not get ratings: %v", err)
	}

	return &ratings, nil
}
