package domain

import (
	"context"
	"time"
)

type FamilyRecord struct {
	ID               int        `gorm:"primaryKey;autoIncrement" json:"id"`
	MemberID         int        `gorm:"not null;uniqueIndex" json:"member_id"`
	FatherName       string     `gorm:"type:varchar(150)" json:"father_name"`
	FatherContact    string     `gorm:"type:varchar(30)" json:"father_contact"`
	MotherName       string     `gorm:"type:varchar(150)" json:"mother_name"`
	MotherContact    string     `gorm:"type:varchar(30)" json:"mother_contact"`
	Address          string     `gorm:"type:text" json:"address"`
	SpouseName       string     `gorm:"type:varchar(150)" json:"spouse_name,omitempty"`
	SpouseContact    string     `gorm:"type:varchar(30)" json:"spouse_contact,omitempty"`
	NumberOfChildren int        `json:"number_of_children,omitempty"`
	ChildrenNames    StringList `gorm:"type:text" json:"children_names,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (FamilyRecord) TableName() string {
	return "family_records"
}

// FamilyInput is the raw family-details object from the form. Spouse and
// children fields are only honored when the member's marital status allows
// them; the usecase shapes the persisted record.
type FamilyInput struct {
	FatherName       string   `json:"father_name"`
	FatherContact    string   `json:"father_contact"`
	MotherName       string   `json:"mother_name"`
	MotherContact    string   `json:"mother_contact"`
	Address          string   `json:"address"`
	SpouseName       string   `json:"spouse_name"`
	SpouseContact    string   `json:"spouse_contact"`
	NumberOfChildren int      `json:"number_of_children"`
	ChildrenNames    []string `json:"children_names"`
}

// Empty reports whether the form carried no family details at all.
func (f *FamilyInput) Empty() bool {
	if f == nil {
		return true
	}
	return f.FatherName == "" && f.FatherContact == "" &&
		f.MotherName == "" && f.MotherContact == "" && f.Address == "" &&
		f.SpouseName == "" && f.SpouseContact == "" && f.NumberOfChildren == 0 &&
		len(f.ChildrenNames) == 0
}

type FamilyRecordRepo interface {
	UpsertByMember(ctx context.Context, memberID int, record *FamilyRecord) error
	GetByMember(ctx context.Context, memberID int) (*FamilyRecord, error)
}

type FamilyRecordUseCase interface {
	UpsertByMember(ctx context.Context, memberID int, input *FamilyInput) (*FamilyRecord, error)
	GetByMember(ctx context.Context, memberID int) (*FamilyRecord, error)
}
