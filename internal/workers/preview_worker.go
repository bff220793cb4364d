package workers

import (
	"context"
	"time"

	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/internal/services"
	"github.com/mertkaya/platformhub/pkg/logger"
)

// PreviewWorker periodically warms the GitHub profile cache for the
// usernames stored across all projects, so item previews are served from
// cache instead of hitting the API on first view.
type PreviewWorker struct {
	*BaseWorker
	itemRepo       *repositories.ProjectItemRepository
	profileService *services.GitHubProfileService
	interval       time.Duration
}

// NewPreviewWorker creates a new preview worker
func NewPreviewWorker(workerID string, itemRepo *repositories.ProjectItemRepository,
	profileService *services.GitHubProfileService, interval time.Duration) *PreviewWorker {
	return &PreviewWorker{
		BaseWorker:     NewBaseWorker(workerID),
		itemRepo:       itemRepo,
		profileService: profileService,
		interval:       interval,
	}
}

// Start begins the preview worker process
func (w *PreviewWorker) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)
	logger.Infof("Preview worker %s started", w.WorkerID)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("Preview worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("Preview worker %s stopping", w.WorkerID)
			return nil
		case <-ticker.C:
			w.refreshProfiles(ctx)
		}
	}
}

// refreshProfiles warms the cache for every stored GitHub username
func (w *PreviewWorker) refreshProfiles(ctx context.Context) {
	usernames, err := w.itemRepo.ListGitHubUsernames()
	if err != nil {
		logger.WithError(err).Warnf("Preview worker %s failed to list usernames", w.WorkerID)
		return
	}

	if len(usernames) == 0 {
		return
	}

	logger.Debugf("Preview worker %s refreshing %d profiles", w.WorkerID, len(usernames))
	w.profileService.WarmCache(ctx, usernames)
}
