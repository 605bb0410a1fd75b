package github

import (
	"context"
	"errors"
	"time"
)

// ErrNoGithubProfile covers both an unknown username and any non-success
// response from the upstream API; callers can't tell those apart and treat
// both as "no repositories to show".
var ErrNoGithubProfile = errors.New("no github profile found")

type Repo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	HTMLURL         string    `json:"html_url"`
	Description     string    `json:"description,omitempty"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type Client interface {
	ReposByUsername(ctx context.Context, username string) ([]Repo, error)
}
