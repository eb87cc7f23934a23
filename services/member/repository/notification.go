package repository

import (
	"context"
	"fmt"

	"memberhub/domain"

	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) domain.NotificationRepo {
	return &notificationRepository{
		db: db,
	}
}

func (nr *notificationRepository) GetByMember(ctx context.Context, memberID int) (*[]domain.Notification, error) {
	var notifications []domain.Notification

	err := nr.db.WithContext(ctx).Where("member_id = ?", memberID).Order("id DESC").Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("could not get notifications: %v", err)
	}

	return &notifications, nil
}

func (nr *notificationRepository) MarkRead(ctx context.Context, id int) error {
	result := nr.db.WithContext(ctx).Model(&domain.Notification{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("could not mark notification read: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
