package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/khoahotran/dev-network/internal/domain/user"
	"github.com/khoahotran/dev-network/pkg/apperror"
	"github.com/khoahotran/dev-network/pkg/auth"
	"github.com/khoahotran/dev-network/pkg/logger"
	"go.uber.org/zap"
)

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		userRepo: repo,
		jwtSvc:   jwtSvc,
		logger:   log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	u, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewUnauthorized("unknown email", nil)
		}
		return nil, fmt.Errorf("find user failed: %w", err)
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		return nil, apperror.NewUnauthorized("incorrect password", nil)
	}

	token, err := uc.jwtSvc.GenerateToken(u.ID)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("user_id", u.ID.String()))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	return &LoginOutput{AccessToken: token}, nil
}
