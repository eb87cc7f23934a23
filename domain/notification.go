package domain

import (
	"context"
	"time"
)

type Notification struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID  int       `gorm:"not null;index" json:"member_id"`
	Kind      string    `gorm:"type:varchar(30);not null" json:"kind"`
	Body      string    `gorm:"type:text" json:"body"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

type NotificationRepo interface {
	GetByMember(ctx context.Context, memberID int) (*[]Notification, error)
	MarkRead(ctx context.Context, id int) error
}

type NotificationUseCase interface {
	GetByMember(ctx context.Context, memberID int) (*[]Notification, error)
	MarkRead(ctx context.Context, id int) error
}
