package domain

import (
	"context"
	"time"
)

type BusinessProfile struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID     int        `gorm:"not null;index" json:"member_id"`
	CompanyName  string     `gorm:"type:varchar(255);not null" json:"company_name" valid:"required~Company name is required"`
	CompanyEmail string     `gorm:"type:varchar(255)" json:"company_email"`
	CompanyPhone string     `gorm:"type:varchar(30)" json:"company_phone"`
	Address      string     `gorm:"type:text" json:"address"`
	Website      string     `gorm:"type:varchar(255)" json:"website"`
	Description  string     `gorm:"type:text" json:"description"`
	ProfileImage string     `gorm:"type:text" json:"profile_image"`
	MediaGallery StringList `gorm:"type:text" json:"media_gallery"`
	MediaType    string     `gorm:"type:varchar(10)" json:"media_type"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}

// BusinessProfileInput is one entry of the registration form's profile list,
// before staged media is attached.
type BusinessProfileInput struct {
	CompanyName  string `json:"company_name" valid:"required~Company name is required"`
	CompanyEmail string `json:"company_email"`
	CompanyPhone string `json:"company_phone"`
	Address      string `json:"address"`
	Website      string `json:"website"`
	Description  string `json:"description"`
}

type BusinessProfileRepo interface {
	UpsertByMember(ctx context.Context, memberID int, profile *BusinessProfile) error
	GetByMember(ctx context.Context, memberID int) (*[]BusinessProfile, error)
}

type BusinessProfileUseCase interface {
	UpsertByMember(ctx context.Context, memberID int, input *BusinessProfileInput, assets *ProfileAssets) (*BusinessProfile, error)
	GetByMember(ctx context.Context, memberID int) (*[]BusinessProfile, error)
}
