package usecase

import (
	"context"
	"fmt"

	"memberhub/domain"

	"golang.org/x/crypto/bcrypt"
)

func (mu *memberUseCase) GetMemberDetail(ctx context.Context, id int) (*domain.MemberDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.TimeOut)
	defer cancel()

	detail, err := mu.repo.GetMemberDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	// The hash never leaves the service.
	detail.Member.Password = ""

	return detail, nil
}

// UpdateMember patches member scalars. A supplied password is rehashed; an
// absent one keeps the stored hash. Child entities are never touched here.
func (mu *memberUseCase) UpdateMember(ctx context.Context, id int, patch *domain.MemberUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, mu.TimeOut)
	defer cancel()

	if patch.Password != nil {
		if *patch.Password == "" {
			return domain.NewValidationError("password: must not be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("could not hash password: %v", err)
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	return mu.repo.UpdateMember(ctx, id, patch)
}

func (mu *memberUseCase) DeleteMember(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, mu.TimeOut)
	defer cancel()

	return mu.repo.DeleteMember(ctx, id)
}
