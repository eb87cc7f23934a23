package usecase

import (
	"context"
	"time"

	"memberhub/domain"
)

type ratingUseCase struct {
	repo    domain.RatingRepo
	TimeOut time.Duration
}

func NewRatingUseCase(repo domain.RatingRepo, to time.Duration) domain.RatingUseCase {
	return &ratingUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (ru *ratingUseCase) RateBusiness(ctx context.Context, rating *domain.Rating) error {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	if rating.Score < 1 || rating.Score > 5 {
		return domain.NewValidationError("score: must be between 1 and 5")
	}

	return ru.repo.RateBusiness(ctx, rating)
}

func (ru *ratingUseCase) GetByBusiness(ctx context.Context, businessProfileID int) (*[]domain.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, ru.TimeOut)
	defer cancel()

	return ru.repo.GetByBusiness(ctx, businessProfileID)
}
