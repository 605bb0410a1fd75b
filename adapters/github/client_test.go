package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	githubdomain "github.com/khoahotran/dev-network/internal/domain/github"
	"github.com/khoahotran/dev-network/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, fields ...zap.Field)             {}
func (nopLogger) Warn(msg string, fields ...zap.Field)             {}
func (nopLogger) Error(msg string, err error, fields ...zap.Field) {}
func (nopLogger) Fatal(msg string, err error, fields ...zap.Field) {}
func (l nopLogger) With(fields ...zap.Field) logger.Logger         { return l }

func TestReposByUsername_RequestsFixedPageOldestFirst(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"name":"first","html_url":"https://github.com/dev/first","created_at":"2020-01-01T00:00:00Z"},{"id":2,"name":"second","html_url":"https://github.com/dev/second","created_at":"2021-01-01T00:00:00Z"}]`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, nopLogger{})

	repos, err := c.ReposByUsername(context.Background(), "dev")

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "first", repos[0].Name)
	assert.Equal(t, []string{"5"}, gotQuery["per_page"])
	assert.Equal(t, []string{"created:asc"}, gotQuery["sort"])
}

func TestReposByUsername_Non200IsNotFoundOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, nopLogger{})

	_, err := c.ReposByUsername(context.Background(), "doesnotexist123")

	require.ErrorIs(t, err, githubdomain.ErrNoGithubProfile)
}

func TestReposByUsername_TransportFailureIsNotFoundOutcome(t *testing.T) {
	// Point at a closed server so the round trip itself fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClientWithBaseURL(srv.URL, nopLogger{})

	_, err := c.ReposByUsername(context.Background(), "dev")

	require.ErrorIs(t, err, githubdomain.ErrNoGithubProfile)
}
