package models

import (
	"railbook/internal/domain"
)

// SeatState is the per-cell occupancy value. The integer values are
// part of the persisted record and must not change.
type SeatState int

const (
	SeatFree     SeatState = 0
	SeatOccupied SeatState = 1
)

// SeatMatrix is a rectangular grid of seat states indexed by
// zero-based (row, col). It is owned by exactly one Train; callers
// must not retain a reference across catalog mutations.
type SeatMatrix [][]SeatState

// NewSeatMatrix builds an all-free rows x cols matrix.
func NewSeatMatrix(rows, cols int) SeatMatrix {
	m := make(SeatMatrix, rows)
	for i := range m {
		m[i] = make([]SeatState, cols)
	}
	return m
}

func (m SeatMatrix) Rows() int {
	return len(m)
}

func (m SeatMatrix) Cols(row int) int {
	if row < 0 || row >= len(m) {
		return 0
	}
	return len(m[row])
}

func (m SeatMatrix) inBounds(row, col int) bool {
	return row >= 0 && row < len(m) && col >= 0 && col < len(m[row])
}

// Get returns the state at (row, col).
func (m SeatMatrix) Get(row, col int) (SeatState, error) {
	if !m.inBounds(row, col) {
		return SeatFree, domain.ValidationError{Field: "seat", Msg: "position out of bounds"}
	}
	return m[row][col], nil
}

// Set writes the state at (row, col).
func (m SeatMatrix) Set(row, col int, state SeatState) error {
	if !m.inBounds(row, col) {
		return domain.ValidationError{Field: "seat", Msg: "position out of bounds"}
	}
	m[row][col] = state
	return nil
}

// CountFree recounts free cells on every call. No incremental counter
// is kept: administrative updates may rewrite the grid wholesale and
// a cached count would drift.
func (m SeatMatrix) CountFree() int {
	free := 0
	for _, row := range m {
		for _, s := range row {
			if s == SeatFree {
				free++
			}
		}
	}
	return free
}

// Clone deep-copies the grid so the caller cannot alias stored state.
func (m SeatMatrix) Clone() SeatMatrix {
	if m == nil {
		return nil
	}
	out := make(SeatMatrix, len(m))
	for i, row := range m {
		out[i] = make([]SeatState, len(row))
		copy(out[i], row)
	}
	return out
}

// Validate checks the grid is rectangular and every cell is a legal
// seat state.
func (m SeatMatrix) Validate() error {
	if len(m) == 0 {
		return domain.ValidationError{Field: "seats", Msg: "matrix is empty"}
	}
	width := len(m[0])
	for _, row := range m {
		if len(row) != width {
			return domain.ValidationError{Field: "seats", Msg: "matrix is not rectangular"}
		}
		for _, s := range row {
			if s != SeatFree && s != SeatOccupied {
				return domain.ValidationError{Field: "seats", Msg: "seat state must be 0 or 1"}
			}
		}
	}
	return nil
}
