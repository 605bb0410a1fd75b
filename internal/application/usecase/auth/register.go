package auth

import (
	"context"
	"crypto/md5"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/dev-network/internal/domain/user"
	"github.com/khoahotran/dev-network/pkg/apperror"
	"github.com/khoahotran/dev-network/pkg/auth"
	"github.com/khoahotran/dev-network/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	AccessToken string
	User        *user.User
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user failed: %w", err)
	}
	if existing != nil {
		return nil, apperror.NewInvalidInput("user already exists", nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		Avatar:       gravatarURL(input.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &RegisterOutput{AccessToken: token, User: u}, nil
}

func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
