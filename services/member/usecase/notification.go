package usecase

import (
	"context"
	"time"

	"memberhub/domain"
)

type notificationUseCase struct {
	repo    domain.NotificationRepo
	TimeOut time.Duration
}

func NewNotificationUseCase(repo domain.NotificationRepo, to time.Duration) domain.NotificationUseCase {
	return &notificationUseCase{
		repo:    repo,
		TimeOut: to,
	}
}

func (nu *notificationUseCase) GetByMember(ctx context.Context, memberID int) (*[]domain.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, nu.TimeOut)
	defer cancel()

	return nu.repo.GetByMember(ctx, memberID)
}

func (nu *notificationUseCase) MarkRead(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, nu.TimeOut)
	defer cancel()

	return nu.repo.MarkRead(ctx, id)
}
