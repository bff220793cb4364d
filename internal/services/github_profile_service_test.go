package services

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// pointAtDeadEndpoint redirects the service's API calls at a port nothing
// listens on, so fetches fail fast instead of reaching the network.
func pointAtDeadEndpoint(t *testing.T, s *GitHubProfileService) {
	t.Helper()
	base, err := url.Parse("http://127.0.0.1:1/")
	assert.NoError(t, err)
	s.client.BaseURL = base
}

func TestGetProfileRequiresUsername(t *testing.T) {
	service := NewGitHubProfileService("")

	_, err := service.GetProfile(context.Background(), "  ")
	assert.Error(t, err)
}

func TestGetProfileServedFromCache(t *testing.T) {
	service := NewGitHubProfileService("")
	pointAtDeadEndpoint(t, service)

	cached := &GitHubProfile{Login: "octocat", Followers: 42, FetchedAt: time.Now().UTC()}
	service.cache["octocat"] = cached

	profile, err := service.GetProfile(context.Background(), "Octocat")
	assert.NoError(t, err)
	assert.Equal(t, cached, profile, "fresh cache entries are served without a fetch")
}

func TestGetProfileStaleFallback(t *testing.T) {
	service := NewGitHubProfileService("")
	pointAtDeadEndpoint(t, service)

	stale := &GitHubProfile{Login: "octocat", FetchedAt: time.Now().UTC().Add(-2 * time.Hour)}
	service.cache["octocat"] = stale

	profile, err := service.GetProfile(context.Background(), "octocat")
	assert.NoError(t, err)
	assert.Equal(t, stale, profile, "a failed refresh should fall back to the stale entry")
}

func TestGetProfileFetchFailure(t *testing.T) {
	service := NewGitHubProfileService("")
	pointAtDeadEndpoint(t, service)

	_, err := service.GetProfile(context.Background(), "nobody")
	assert.Error(t, err)
}

func TestWarmCacheHonorsContext(t *testing.T) {
	service := NewGitHubProfileService("")
	pointAtDeadEndpoint(t, service)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Returns immediately, leaving the cache untouched
	service.WarmCache(ctx, []string{"a", "b", "c"})
	assert.Empty(t, service.cache)
}
