package repository

import (
	"context"
	"fmt"

	"memberhub/domain"
	"memberhub/middleware"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) domain.AuthRepo {
	return &authRepository{
		db: db,
	}
}

func (ar *authRepository) Login(ctx context.Context, data *domain.LoginRequest) (*domain.LoginResponse, error) {
	var member domain.Member

	err := ar.db.WithContext(ctx).Table("members").Where("email = ?", data.Email).First(&member).Error
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	err = bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(data.Password))
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := middleware.GenerateJWT(member.ID, member.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token, err : %v", err)
	}

	return &domain.LoginResponse{
		Token:    token,
		MemberNo: member.MemberNo,
		Name:     member.Name,
	}, nil
}
