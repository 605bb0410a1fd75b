package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/dev-network/internal/domain/github"
	"github.com/khoahotran/dev-network/pkg/apperror"
)

type stubGithubClient struct {
	repos []github.Repo
	err   error
}

func (s stubGithubClient) ReposByUsername(ctx context.Context, username string) ([]github.Repo, error) {
	return s.repos, s.err
}

func TestGithubRepos_UnknownUsernameIsNotFound(t *testing.T) {
	uc := NewGithubReposUseCase(stubGithubClient{err: github.ErrNoGithubProfile})

	_, err := uc.Execute(context.Background(), GithubReposInput{Username: "doesnotexist123"})

	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGithubRepos_ReturnsUpstreamRepos(t *testing.T) {
	repos := []github.Repo{
		{ID: 1, Name: "first", CreatedAt: time.Now().Add(-48 * time.Hour)},
		{ID: 2, Name: "second", CreatedAt: time.Now()},
	}
	uc := NewGithubReposUseCase(stubGithubClient{repos: repos})

	output, err := uc.Execute(context.Background(), GithubReposInput{Username: "someone"})

	require.NoError(t, err)
	assert.Equal(t, repos, output.Repos)
}
