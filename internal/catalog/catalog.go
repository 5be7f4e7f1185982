// Package catalog owns the authoritative, persisted set of trains.
// It is the only component that reads or writes the train store, and
// the transaction boundary for every seat mutation.
package catalog

import (
	"context"
	"strings"
	"sync"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/storage"
)

type TrainCatalog struct {
	store storage.TrainStore

	// storeMu makes every load-mutate-persist a single critical
	// section: the store rewrites the whole collection, so two
	// interleaved saves would lose one of the updates even when they
	// touch different trains.
	storeMu sync.Mutex

	locks *trainLocks
}

func NewTrainCatalog(store storage.TrainStore) *TrainCatalog {
	return &TrainCatalog{store: store, locks: newTrainLocks()}
}

// LockTrain grants the caller the per-train critical section. Other
// mutations on the same train block; mutations on other trains run in
// parallel. Fails Busy when ctx expires before the lock is free.
func (c *TrainCatalog) LockTrain(ctx context.Context, trainID string) (release func(), err error) {
	return c.locks.acquire(ctx, trainID)
}

// FindByID fetches the current persisted train. Always reads the
// store so no caller can act on a stale cached grid.
func (c *TrainCatalog) FindByID(trainID string) (models.Train, error) {
	trains, err := c.store.Load()
	if err != nil {
		return models.Train{}, err
	}
	for _, t := range trains {
		if t.ID == trainID {
			return t, nil
		}
	}
	return models.Train{}, domain.NotFoundError{Resource: "train"}
}

// ListAll returns a read-only snapshot of the collection.
func (c *TrainCatalog) ListAll() ([]models.Train, error) {
	return c.store.Load()
}

// SearchByStation returns trains whose route includes the station.
func (c *TrainCatalog) SearchByStation(station string) ([]models.Train, error) {
	trains, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	out := []models.Train{}
	for _, t := range trains {
		if t.StopsAt(station) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Add appends a new train and persists. Duplicate ids are a conflict.
func (c *TrainCatalog) Add(train models.Train) error {
	train.ID = strings.TrimSpace(train.ID)
	if err := train.Validate(); err != nil {
		return err
	}

	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	trains, err := c.store.Load()
	if err != nil {
		return err
	}
	for _, t := range trains {
		if t.ID == train.ID {
			return domain.ConflictError{Resource: "train", Msg: "id already exists"}
		}
	}
	trains = append(trains, train.Clone())
	return c.store.Save(trains)
}

// Replace swaps the stored train with the same id and persists. This
// is the sole mutation primitive: seat booking is load current train,
// flip the cell, Replace.
func (c *TrainCatalog) Replace(train models.Train) error {
	if err := train.Validate(); err != nil {
		return err
	}

	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	trains, err := c.store.Load()
	if err != nil {
		return err
	}
	for i, t := range trains {
		if t.ID == train.ID {
			trains[i] = train.Clone()
			return c.store.Save(trains)
		}
	}
	return domain.NotFoundError{Resource: "train"}
}

// Remove deletes a train by id. Returns false without error when the
// train was already absent.
func (c *TrainCatalog) Remove(trainID string) (bool, error) {
	c.storeMu.Lock()
	defer c.storeMu.Unlock()

	trains, err := c.store.Load()
	if err != nil {
		return false, err
	}
	for i, t := range trains {
		if t.ID == trainID {
			trains = append(trains[:i], trains[i+1:]...)
			if err := c.store.Save(trains); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// AvailableSeatCount reports free seats; 0 for an unknown train. This
// is a reporting convenience, callers that need an existence error use
// FindByID.
func (c *TrainCatalog) AvailableSeatCount(trainID string) int {
	t, err := c.FindByID(trainID)
	if err != nil {
		return 0
	}
	return t.Seats.CountFree()
}
