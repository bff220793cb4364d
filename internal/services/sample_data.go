package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
)

// ErrDemoReadOnly is returned by mutating operations while demo mode is on.
var ErrDemoReadOnly = errors.New("demo mode is read-only")

var (
	demoUserID          = uuid.MustParse("c0a8b7d4-91f2-4e3a-b6c5-0d9e8f7a6b5c")
	demoPortfolioID     = uuid.MustParse("a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d")
	demoMobileAppID     = uuid.MustParse("b2c3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e")
	demoGitHubItemID    = uuid.MustParse("d4e5f6a7-b8c9-4d0e-a1f2-3b4c5d6e7f80")
	demoVercelItemID    = uuid.MustParse("e5f6a7b8-c9d0-4e1f-b2a3-4c5d6e7f8091")
	demoInstagramItemID = uuid.MustParse("f6a7b8c9-d0e1-4f2a-83b4-c5d6e7f80912")

	demoBaseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

// SampleUser is the fixed account demo mode signs everyone in as.
func SampleUser() *models.User {
	return &models.User{
		ID:             demoUserID,
		Email:          "demo@platformhub.local",
		Name:           "Demo User",
		EmailConfirmed: true,
		CreatedAt:      demoBaseTime,
	}
}

// SampleProjects returns the static project set served when the database is
// unavailable or demo mode is enabled. Newest first, like the real listing.
func SampleProjects() []*models.Project {
	return []*models.Project{
		{
			ID:          demoMobileAppID,
			OwnerID:     demoUserID,
			Title:       "Mobile App",
			Description: "App infra and releases",
			Status:      models.StatusCompleted,
			CreatedAt:   demoBaseTime.Add(24 * time.Hour),
			UpdatedAt:   demoBaseTime.Add(24 * time.Hour),
		},
		{
			ID:          demoPortfolioID,
			OwnerID:     demoUserID,
			Title:       "Personal Portfolio",
			Description: "Website and social accounts",
			Status:      models.StatusOngoing,
			CreatedAt:   demoBaseTime,
			UpdatedAt:   demoBaseTime,
		},
	}
}

// SampleItems returns the static items belonging to a sample project.
func SampleItems(projectID string) []*models.ProjectItem {
	if projectID != demoPortfolioID.String() {
		return nil
	}

	return []*models.ProjectItem{
		{
			ID:        demoInstagramItemID,
			ProjectID: demoPortfolioID,
			Platform:  "Instagram",
			Username:  "demo.portfolio",
			Notes:     "Public account",
			CreatedAt: demoBaseTime.Add(2 * time.Hour),
		},
		{
			ID:        demoVercelItemID,
			ProjectID: demoPortfolioID,
			Platform:  "Vercel",
			Link:      "https://vercel.com/dashboard",
			CreatedAt: demoBaseTime.Add(time.Hour),
		},
		{
			ID:        demoGitHubItemID,
			ProjectID: demoPortfolioID,
			Platform:  "GitHub",
			Username:  "your-handle",
			CreatedAt: demoBaseTime.Add(30 * time.Minute),
		},
	}
}
