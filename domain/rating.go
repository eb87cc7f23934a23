package domain

import (
	"context"
	"time"
)

type Rating struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessProfileID int       `gorm:"not null;index:idx_rating_business_member,unique" json:"business_profile_id"`
	MemberID          int       `gorm:"not null;index:idx_rating_business_member,unique" json:"member_id"`
	Score             int       `gorm:"not null" json:"score" valid:"required~Score is required,range(1|5)~Score must be between 1 and 5"`
	Comment           string    `gorm:"type:text" json:"comment"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Rating) TableName() string {
	return "ratings"
}

type RatingRepo interface {
	RateBusiness(ctx context.Context, rating *Rating) error
	GetByBusiness(ctx context.Context, businessProfileID int) (*[]Rating, error)
}

type RatingUseCase interface {
	RateBusiness(ctx context.Context, rating *Rating) error
	GetByBusiness(ctx context.Context, businessProfileID int) (*[]Rating, error)
}
