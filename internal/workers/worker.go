package workers

import (
	"context"
	"sync/atomic"
)

// Worker interface defines the contract for all workers
type Worker interface {
	// Start begins the worker process
	Start(ctx context.Context) error

	// Stop gracefully stops the worker
	Stop() error

	// GetWorkerID returns the unique identifier for this worker
	GetWorkerID() string
}

// BaseWorker provides common functionality for all workers
type BaseWorker struct {
	WorkerID string
	running  atomic.Bool
	StopChan chan struct{}
}

// NewBaseWorker creates a new base worker
func NewBaseWorker(workerID string) *BaseWorker {
	return &BaseWorker{
		WorkerID: workerID,
		StopChan: make(chan struct{}),
	}
}

// GetWorkerID returns the worker's unique identifier
func (w *BaseWorker) GetWorkerID() string {
	return w.WorkerID
}

// IsRunning reports whether the worker loop is active
func (w *BaseWorker) IsRunning() bool {
	return w.running.Load()
}

// setRunning records the worker loop state
func (w *BaseWorker) setRunning(running bool) {
	w.running.Store(running)
}

// Stop gracefully stops the worker
func (w *BaseWorker) Stop() error {
	if w.running.CompareAndSwap(true, false) {
		close(w.StopChan)
	}
	return nil
}
