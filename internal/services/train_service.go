package services

import (
	"context"
	"time"

	"railbook/internal/catalog"
	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// TrainService is the administrative mutation path. Add, Update and
// Remove take the same per-train lock as bookings, so an admin rewrite
// can never land between a booking's re-read and its persisted write
// and be silently overwritten by the booking's stale snapshot.
type TrainService struct {
	Catalog     *catalog.TrainCatalog
	LockTimeout time.Duration
	RequestID   string
}

func (s TrainService) lockTimeout() time.Duration {
	if s.LockTimeout > 0 {
		return s.LockTimeout
	}
	return defaultLockTimeout
}

func (s TrainService) withTrainLock(ctx context.Context, trainID string, fn func() error) error {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout())
	defer cancel()

	release, err := s.Catalog.LockTrain(lockCtx, trainID)
	if err != nil {
		return err
	}
	defer release()
	return fn()
}

// Add appends a new train to the catalog.
func (s TrainService) Add(ctx context.Context, train models.Train) error {
	err := s.withTrainLock(ctx, train.ID, func() error {
		return s.Catalog.Add(train)
	})
	if err == nil {
		utils.LogEvent(s.RequestID, "trains", "add", "train="+train.ID)
	}
	return err
}

// Update replaces the stored train wholesale.
func (s TrainService) Update(ctx context.Context, train models.Train) error {
	err := s.withTrainLock(ctx, train.ID, func() error {
		return s.Catalog.Replace(train)
	})
	if err == nil {
		utils.LogEvent(s.RequestID, "trains", "update", "train="+train.ID)
	}
	return err
}

// Remove deletes a train; false when it was already absent.
func (s TrainService) Remove(ctx context.Context, trainID string) (bool, error) {
	removed := false
	err := s.withTrainLock(ctx, trainID, func() error {
		var err error
		removed, err = s.Catalog.Remove(trainID)
		return err
	})
	if err == nil && removed {
		utils.LogEvent(s.RequestID, "trains", "remove", "train="+trainID)
	}
	return removed, err
}
