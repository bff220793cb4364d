package workers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/mertkaya/platformhub/internal/repositories"
	"github.com/mertkaya/platformhub/internal/services"
	"github.com/mertkaya/platformhub/pkg/logger"
)

// WorkerManager manages the background workers
type WorkerManager struct {
	workers        []Worker
	itemRepo       *repositories.ProjectItemRepository
	profileService *services.GitHubProfileService
	wg             sync.WaitGroup
	ctx            context.Context
	cancel         context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(itemRepo *repositories.ProjectItemRepository, profileService *services.GitHubProfileService) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:        make([]Worker, 0),
		itemRepo:       itemRepo,
		profileService: profileService,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// StartAll starts all workers based on environment configuration
func (wm *WorkerManager) StartAll() error {
	previewWorkers := wm.getWorkerCount("PREVIEW_WORKERS", 1)
	previewInterval := wm.getWorkerInterval("PREVIEW_INTERVAL_MINUTES", 15)

	logger.Infof("Starting workers - Preview: %d (every %s)", previewWorkers, previewInterval)

	for i := 0; i < previewWorkers; i++ {
		worker := NewPreviewWorker(fmt.Sprintf("preview-%d", i+1), wm.itemRepo, wm.profileService, previewInterval)
		wm.workers = append(wm.workers, worker)
		wm.startWorker(worker)
	}

	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() {
	logger.Info("Stopping all workers")

	wm.cancel()
	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).Warnf("Failed to stop worker %s", worker.GetWorkerID())
		}
	}

	wm.wg.Wait()
	logger.Info("All workers stopped")
}

// startWorker runs a worker in its own goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.WithError(err).Errorf("Worker %s exited with error", worker.GetWorkerID())
		}
	}()
}

// getWorkerCount reads a worker count from the environment
func (wm *WorkerManager) getWorkerCount(envVar string, defaultCount int) int {
	if value := os.Getenv(envVar); value != "" {
		if count, err := strconv.Atoi(value); err == nil && count >= 0 {
			return count
		}
	}
	return defaultCount
}

// getWorkerInterval reads a refresh interval in minutes from the environment
func (wm *WorkerManager) getWorkerInterval(envVar string, defaultMinutes int) time.Duration {
	minutes := defaultMinutes
	if value := os.Getenv(envVar); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			minutes = parsed
		}
	}
	return time.Duration(minutes) * time.Minute
}
