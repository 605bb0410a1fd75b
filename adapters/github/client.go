package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/khoahotran/dev-network/internal/config"
	githubdomain "github.com/khoahotran/dev-network/internal/domain/github"
	"github.com/khoahotran/dev-network/pkg/logger"
)

const (
	apiBaseURL   = "https://api.github.com"
	reposPerPage = 5
)

// Client fetches a user's repositories from the GitHub API, a fixed page of
// the oldest-first listing, authenticated with the configured client
// credentials. Results are cached in redis so public lookups of the same
// username don't burn the upstream rate limit.
type Client struct {
	httpClient   *http.Client
	cache        *redis.Client
	baseURL      string
	clientID     string
	clientSecret string
	cacheTTL     time.Duration
	logger       logger.Logger
}

func NewClient(cfg config.Config, cache *redis.Client, log logger.Logger) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		cache:        cache,
		baseURL:      apiBaseURL,
		clientID:     cfg.Github.ClientID,
		clientSecret: cfg.Github.ClientSecret,
		cacheTTL:     cfg.Github.CacheTTL,
		logger:       log,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(baseURL string, log logger.Logger) *Client {
	c := NewClient(config.Config{}, nil, log)
	c.baseURL = baseURL
	return c
}

func (c *Client) ReposByUsername(ctx context.Context, username string) ([]githubdomain.Repo, error) {
	cacheKey := "github:repos:" + username

	if c.cache != nil {
		if cached, err := c.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var repos []githubdomain.Repo
			if err := json.Unmarshal(cached, &repos); err == nil {
				return repos, nil
			}
		}
	}

	q := url.Values{}
	q.Set("per_page", fmt.Sprintf("%d", reposPerPage))
	q.Set("sort", "created:asc")
	q.Set("client_id", c.clientID)
	q.Set("client_secret", c.clientSecret)
	reqURL := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(username), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("User-Agent", "dev-network-api")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("github request failed", zap.String("username", username), zap.Error(err))
		return nil, githubdomain.ErrNoGithubProfile
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("github returned non-200",
			zap.String("username", username),
			zap.Int("status", resp.StatusCode))
		return nil, githubdomain.ErrNoGithubProfile
	}

	var repos []githubdomain.Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode github response: %w", err)
	}

	if c.cache != nil {
		if data, err := json.Marshal(repos); err == nil {
			if err := c.cache.Set(ctx, cacheKey, data, c.cacheTTL).Err(); err != nil {
				c.logger.Warn("failed to cache github repos", zap.String("username", username), zap.Error(err))
			}
		}
	}

	return repos, nil
}
