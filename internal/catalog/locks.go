package catalog

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"railbook/internal/domain"
)

// trainLocks hands out one weighted semaphore per train id, created
// lazily and never removed while the process runs. Semaphore instead
// of sync.Mutex so acquisition can honor a context deadline and fail
// Busy instead of blocking forever.
type trainLocks struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

func newTrainLocks() *trainLocks {
	return &trainLocks{sems: make(map[string]*semaphore.Weighted)}
}

func (l *trainLocks) get(trainID string) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()
	sem, ok := l.sems[trainID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		l.sems[trainID] = sem
	}
	return sem
}

// acquire blocks until the train's critical section is free or ctx
// expires. The returned release func must be called exactly once.
func (l *trainLocks) acquire(ctx context.Context, trainID string) (release func(), err error) {
	sem := l.get(trainID)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, domain.BusyError{Resource: "train " + trainID, Err: err}
	}
	return func() { sem.Release(1) }, nil
}
