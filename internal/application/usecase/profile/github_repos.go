package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/khoahotran/dev-network/internal/domain/github"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type GithubReposUseCase struct {
	githubClient github.Client
}

func NewGithubReposUseCase(client github.Client) *GithubReposUseCase {
	return &GithubReposUseCase{githubClient: client}
}

type GithubReposInput struct {
	Username string
}

type GithubReposOutput struct {
	Repos []github.Repo
}

// Execute fetches the username's latest repositories. Any non-success from
// the upstream API comes back as a not-found outcome, never as a server
// failure, so callers can render "no github profile" directly.
func (uc *GithubReposUseCase) Execute(ctx context.Context, input GithubReposInput) (*GithubReposOutput, error) {
	repos, err := uc.githubClient.ReposByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, github.ErrNoGithubProfile) {
			return nil, apperror.NewNotFound("github profile", input.Username)
		}
		return nil, fmt.Errorf("github lookup failed: %w", err)
	}
	return &GithubReposOutput{Repos: repos}, nil
}
