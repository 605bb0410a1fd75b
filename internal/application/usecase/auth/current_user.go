package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/dev-network/internal/domain/user"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type CurrentUserUseCase struct {
	userRepo user.Repository
}

func NewCurrentUserUseCase(repo user.Repository) *CurrentUserUseCase {
	return &CurrentUserUseCase{userRepo: repo}
}

type CurrentUserInput struct {
	UserID uuid.UUID
}

type CurrentUserOutput struct {
	User *user.User
}

func (uc *CurrentUserUseCase) Execute(ctx context.Context, input CurrentUserInput) (*CurrentUserOutput, error) {
	u, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperror.NewNotFound("user", input.UserID.String())
		}
		return nil, fmt.Errorf("find user failed: %w", err)
	}
	return &CurrentUserOutput{User: u}, nil
}
