// Package storage holds the persistence gateways. Every Save replaces
// the whole stored collection; every gateway write is all-or-nothing
// so a crash mid-write can never leave a half-updated dataset.
package storage

import (
	"railbook/internal/domain/models"
)

// TrainStore is the durable record of the train collection. Load
// returns an empty slice when no data exists yet; an unreadable
// dataset is a StorageError, never an empty result.
type TrainStore interface {
	Load() ([]models.Train, error)
	Save(trains []models.Train) error
}

// TicketStore persists the ticket ledger.
type TicketStore interface {
	Load() ([]models.Ticket, error)
	Save(tickets []models.Ticket) error
}

// UserStore persists registered accounts.
type UserStore interface {
	Load() ([]models.User, error)
	Save(users []models.User) error
}
