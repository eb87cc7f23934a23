package repository

import (
	"context"
	"errors"
	"fmt"

	"memberhub/domain"

	"gorm.io/gorm"
)

type familyRecordRepository struct {
	db *gorm.DB
}

func NewFamilyRecordRepository(db *gorm.DB) domain.FamilyRecordRepo {
	return &familyRecordRepository{
		db: db,
	}
}

// UpsertByMember keeps at most one family record per member: update in place
// if one exists, otherwise create.
func (fr *familyRecordRepository) UpsertByMember(ctx context.Context, memberID int, record *domain.FamilyRecord) error {
	return fr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table("members").Where("id = ?", memberID).Count(&count).Error; err != nil {
			return fmt.Errorf("could not check member: %v", err)
		}
		if count == 0 {
			return domain.ErrNotFound
		}

		var existing domain.FamilyRecord
		err := tx.Where("member_id = ?", memberID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record.MemberID = memberID
			if err := tx.Create(record).Error; err != nil {
				return fmt.Errorf("could not create family record: %v", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not load family record: %v", err)
		}

		record.ID = existing.ID
		record.MemberID = memberID
		record.CreatedAt = existing.CreatedAt
		if err := tx.Save(record).Error; err != nil {
			return fmt.Errorf("could not update family record: %v", err)
		}
		return nil
	})
}

func (fr *familyRecordRepository) GetByMember(ctx context.Context, memberID int) (*domain.FamilyRecord, error) {
	var record domain.FamilyRecord

	err := fr.db.WithContext(ctx).Where("member_id = ?", memberID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get family record: %v", err)
	}

	return &record, nil
}
