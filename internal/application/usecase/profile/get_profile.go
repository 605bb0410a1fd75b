package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/khoahotran/dev-network/internal/domain/profile"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type GetProfileUseCase struct {
	profileRepo profile.Repository
}

func NewGetProfileUseCase(repo profile.Repository) *GetProfileUseCase {
	return &GetProfileUseCase{profileRepo: repo}
}

type GetProfileInput struct {
	OwnerID uuid.UUID
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.GetByOwnerID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return nil, apperror.NewNotFound("profile", input.OwnerID.String())
		}
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}
