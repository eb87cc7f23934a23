package domain

import (
	"context"
	"time"
)

type Member struct {
	ID            int       `json:"id"`
	MemberNo      string    `json:"member_no"`
	Name          string    `json:"name" valid:"required~Name is required"`
	Email         string    `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password      string    `json:"-"`
	Telephone     string    `json:"telephone"`
	Address       string    `json:"address"`
	About         string    `json:"about"`
	MaritalStatus string    `json:"marital_status"`
	ProfileImage  string    `json:"profile_image"`
	Status        string    `json:"status"`
	AccessLevel   string    `json:"access_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RegisterRequest is the inbound registration form. BusinessProfiles and
// FamilyDetails arrive either as serialized JSON text (multipart fields) or
// as structured JSON; the normalizer settles them before orchestration.
type RegisterRequest struct {
	Name          string `json:"name" valid:"required~Name is required"`
	Email         string `json:"email" valid:"required~Email is required,email~Invalid email format"`
	Password      string `json:"password" valid:"required~Password is required"`
	Telephone     string `json:"telephone"`
	Address       string `json:"address"`
	About         string `json:"about"`
	MaritalStatus string `json:"marital_status"`
	ReferralCode  string `json:"referral_code"`
	ReferralName  string `json:"referral_name"`

	BusinessProfiles interface{} `json:"business_profiles" valid:"-"`
	FamilyDetails    interface{} `json:"family_details" valid:"-"`
}

// Registration is the fully-shaped aggregate handed to the repository. All
// validation, normalization, hashing and media classification happen before
// it is built; the repository only persists it atomically.
type Registration struct {
	Member       Member
	ReferralCode string
	ReferralName string
	Profiles     []BusinessProfile
	Family       *FamilyRecord
}

// RegisteredMember is the success response. Never carries the password hash.
type RegisteredMember struct {
	ID           int       `json:"id"`
	MemberNo     string    `json:"member_no"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}

// MemberUpdate is a partial scalar update. Nil fields are left untouched; a
// non-nil Password is rehashed by the usecase before it reaches the repo.
type MemberUpdate struct {
	Name          *string `json:"name"`
	Telephone     *string `json:"telephone"`
	Address       *string `json:"address"`
	About         *string `json:"about"`
	MaritalStatus *string `json:"marital_status"`
	Password      *string `json:"password"`
}

type MemberDetail struct {
	Member   Member            `json:"member"`
	Profiles []BusinessProfile `json:"business_profiles"`
	Family   *FamilyRecord     `json:"family_record,omitempty"`
}

type MemberRepo interface {
	Register(ctx context.Context, reg *Registration) (*Member, error)
	GetMemberDetail(ctx context.Context, id int) (*MemberDetail, error)
	FindMemberByNo(ctx context.Context, memberNo string) (*Member, error)
	UpdateMember(ctx context.Context, id int, patch *MemberUpdate) error
	DeleteMember(ctx context.Context, id int) error
}

type MemberUseCase interface {
	Register(ctx context.Context, req *RegisterRequest, assets *StagedAssets) (*RegisteredMember, error)
	GetMemberDetail(ctx context.Context, id int) (*MemberDetail, error)
	UpdateMember(ctx context.Context, id int, patch *MemberUpdate) error
	DeleteMember(ctx context.Context, id int) error
}
