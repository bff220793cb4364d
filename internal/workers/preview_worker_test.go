package workers

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/internal/services"
	"github.com/mertkaya/platformhub/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPreviewWorkerStopsOnStop(t *testing.T) {
	db := testutil.OpenTestDB(t)
	worker := NewPreviewWorker("preview-worker-1",
		repositories.NewProjectItemRepository(db),
		services.NewGitHubProfileService(""),
		time.Hour)

	done := make(chan error, 1)
	go func() {
		done <- worker.Start(context.Background())
	}()

	time.Sleep(20 * time.Millisecond)
	assert.True(t, worker.IsRunning())
	assert.NoError(t, worker.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.False(t, worker.IsRunning())

	// A second Stop is a no-op
	assert.NoError(t, worker.Stop())
}

func TestPreviewWorkerStopsOnContextCancel(t *testing.T) {
	db := testutil.OpenTestDB(t)
	worker := NewPreviewWorker("preview-worker-1",
		repositories.NewProjectItemRepository(db),
		services.NewGitHubProfileService(""),
		time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- worker.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.False(t, worker.IsRunning())
}

func TestRefreshProfilesEmpty(t *testing.T) {
	db := testutil.OpenTestDB(t)
	itemRepo := repositories.NewProjectItemRepository(db)
	worker := NewPreviewWorker("preview-worker-1", itemRepo, services.NewGitHubProfileService(""), time.Hour)

	// No stored usernames means nothing to warm and no API calls
	worker.refreshProfiles(context.Background())

	// Link-only GitHub items are also skipped
	projectID := uuid.New()
	_, err := db.Exec(`INSERT INTO projects (id, user_id, name) VALUES (?, ?, 'p')`,
		projectID.String(), uuid.New().String())
	assert.NoError(t, err)
	assert.NoError(t, itemRepo.Create(&models.ProjectItem{
		ProjectID: projectID,
		Platform:  "GitHub",
		Link:      "https://github.com/octocat",
	}))

	usernames, err := itemRepo.ListGitHubUsernames()
	assert.NoError(t, err)
	assert.Empty(t, usernames)
}
