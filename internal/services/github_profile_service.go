package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/mertkaya/platformhub/pkg/logger"
	"golang.org/x/oauth2"
)

// GitHubProfile is a cached snapshot of a GitHub account, shown as a preview
// next to items that reference a GitHub username.
type GitHubProfile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	FetchedAt   time.Time `json:"fetched_at"`
}

type GitHubProfileService struct {
	client *github.Client
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[string]*GitHubProfile
}

// NewGitHubProfileService creates the service. The token is optional;
// without it requests run against the unauthenticated rate limit.
func NewGitHubProfileService(token string) *GitHubProfileService {
	var httpClient *http.Client
	if token != "" {
		httpClient = oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		))
	}

	return &GitHubProfileService{
		client: github.NewClient(httpClient),
		ttl:    time.Hour,
		cache:  make(map[string]*GitHubProfile),
	}
}

// GetProfile returns the profile for a GitHub username, served from cache
// while fresh. On a fetch failure a stale cached profile is still returned.
func (s *GitHubProfileService) GetProfile(ctx context.Context, username string) (*GitHubProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}

	key := strings.ToLower(username)

	s.mu.RLock()
	cached := s.cache[key]
	s.mu.RUnlock()

	if cached != nil && time.Since(cached.FetchedAt) < s.ttl {
		return cached, nil
	}

	user, _, err := s.client.Users.Get(ctx, username)
	if err != nil {
		if cached != nil {
			return cached, nil
		}
		return nil, err
	}

	profile := &GitHubProfile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		FetchedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.cache[key] = profile
	s.mu.Unlock()

	return profile, nil
}

// WarmCache fetches profiles for the given usernames, best effort
func (s *GitHubProfileService) WarmCache(ctx context.Context, usernames []string) {
	for _, username := range usernames {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := s.GetProfile(ctx, username); err != nil {
			logger.WithError(err).WithField("username", username).Debugf("Profile fetch failed")
		}
	}
}
