package usecase

import (
	"context"
	"time"

	"memberhub/domain"
)

type familyRecordUseCase struct {
	repo    domain.FamilyRecordRepo
	members domain.MemberRepo
	TimeOut time.Duration
}

func NewFamilyRecordUseCase(repo domain.FamilyRecordRepo, members domain.MemberRepo, to time.Duration) domain.FamilyRecordUseCase {
	return &familyRecordUseCase{
		repo:    repo,
		members: members,
		TimeOut: to,
	}
}

// UpsertByMember shapes and stores the member's family record. The marital
// status that gates spouse and children fields is the one on the stored
// member, not anything the caller sends.
func (fu *familyRecordUseCase) UpsertByMember(ctx context.Context, memberID int, input *domain.FamilyInput) (*domain.FamilyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	if input.Empty() {
		return nil, domain.NewValidationError("family_details: must not be empty")
	}

	detail, err := fu.members.GetMemberDetail(ctx, memberID)
	if err != nil {
		return nil, err
	}

	record := ShapeFamilyRecord(detail.Member.MaritalStatus, input)
	record.MemberID = memberID

	if err := fu.repo.UpsertByMember(ctx, memberID, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (fu *familyRecordUseCase) GetByMember(ctx context.Context, memberID int) (*domain.FamilyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, fu.TimeOut)
	defer cancel()

	return fu.repo.GetByMember(ctx, memberID)
}
