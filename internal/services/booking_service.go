package services

import (
	"context"
	"time"

	"railbook/internal/catalog"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// BookingService enforces the seat state machine: the only legal
// transitions are book (free -> occupied) and cancel (occupied ->
// free). Each call runs as one critical section per train, so no two
// callers can both observe a cell free and both flip it.
type BookingService struct {
	Catalog     *catalog.TrainCatalog
	LockTimeout time.Duration
	RequestID   string
}

const defaultLockTimeout = 5 * time.Second

func (s BookingService) lockTimeout() time.Duration {
	if s.LockTimeout > 0 {
		return s.LockTimeout
	}
	return defaultLockTimeout
}

// Book flips (row, col) on the train from free to occupied and
// persists. The train is re-read from the catalog inside the critical
// section; a matrix fetched before the lock could already be stale.
func (s BookingService) Book(ctx context.Context, trainID string, row, col int) error {
	err := s.mutateSeat(ctx, trainID, row, col, models.SeatFree, models.SeatOccupied, "seat is already booked")
	if err == nil {
		utils.LogEvent(s.RequestID, "booking", "book", utils.SeatRef(trainID, row, col))
	}
	return err
}

// Cancel flips (row, col) from occupied back to free and persists.
func (s BookingService) Cancel(ctx context.Context, trainID string, row, col int) error {
	err := s.mutateSeat(ctx, trainID, row, col, models.SeatOccupied, models.SeatFree, "seat is already free")
	if err == nil {
		utils.LogEvent(s.RequestID, "booking", "cancel", utils.SeatRef(trainID, row, col))
	}
	return err
}

func (s BookingService) mutateSeat(ctx context.Context, trainID string, row, col int, want, next models.SeatState, conflictMsg string) error {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout())
	defer cancel()

	release, err := s.Catalog.LockTrain(lockCtx, trainID)
	if err != nil {
		return err
	}
	// Once acquired the critical section runs to completion; ctx only
	// governs acquisition. A caller that walks away mid-call still
	// gets a fully applied (or fully rejected) mutation.
	defer release()

	train, err := s.Catalog.FindByID(trainID)
	if err != nil {
		return err
	}
	state, err := train.Seats.Get(row, col)
	if err != nil {
		return err
	}
	if state != want {
		return domain.ConflictError{Resource: "seat", Msg: conflictMsg}
	}
	if err := train.Seats.Set(row, col, next); err != nil {
		return err
	}
	return s.Catalog.Replace(train)
}

// BookSeat is the boolean convenience wrapper: all failure kinds
// collapse to false. Callers that need the distinct kinds use Book.
func (s BookingService) BookSeat(ctx context.Context, trainID string, row, col int) bool {
	if err := s.Book(ctx, trainID, row, col); err != nil {
		utils.LogEvent(s.RequestID, "booking", "book_failed", err.Error())
		return false
	}
	return true
}

// CancelSeat is the boolean convenience wrapper for Cancel.
func (s BookingService) CancelSeat(ctx context.Context, trainID string, row, col int) bool {
	if err := s.Cancel(ctx, trainID, row, col); err != nil {
		utils.LogEvent(s.RequestID, "booking", "cancel_failed", err.Error())
		return false
	}
	return true
}

// AvailableSeatCount reports free seats on the train; 0 when unknown.
func (s BookingService) AvailableSeatCount(trainID string) int {
	return s.Catalog.AvailableSeatCount(trainID)
}
