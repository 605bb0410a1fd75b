package profile

import (
	"context"
	"fmt"

	"github.com/khoahotran/dev-network/internal/domain/profile"
)

type ListProfilesUseCase struct {
	profileRepo profile.Repository
}

func NewListProfilesUseCase(repo profile.Repository) *ListProfilesUseCase {
	return &ListProfilesUseCase{profileRepo: repo}
}

type ListProfilesOutput struct {
	Profiles []*profile.Profile
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context) (*ListProfilesOutput, error) {
	profiles, err := uc.profileRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles failed: %w", err)
	}
	return &ListProfilesOutput{Profiles: profiles}, nil
}
