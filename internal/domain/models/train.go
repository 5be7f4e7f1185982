package models

import (
	"strings"

	"railbook/internal/domain"
)

// Train is one schedulable train with its seat grid. JSON tags match
// the persisted record shape.
type Train struct {
	ID           string            `json:"trainId"`
	Number       string            `json:"trainNo"`
	Seats        SeatMatrix        `json:"seats"`
	StationTimes map[string]string `json:"stationTimes"`
	Stations     []string          `json:"stations"`
}

// Clone deep-copies the train so callers never share the stored grid.
func (t Train) Clone() Train {
	out := t
	out.Seats = t.Seats.Clone()
	if t.Stations != nil {
		out.Stations = append([]string(nil), t.Stations...)
	}
	if t.StationTimes != nil {
		out.StationTimes = make(map[string]string, len(t.StationTimes))
		for k, v := range t.StationTimes {
			out.StationTimes[k] = v
		}
	}
	return out
}

// StopsAt reports whether the train's route includes the station.
func (t Train) StopsAt(station string) bool {
	for _, s := range t.Stations {
		if s == station {
			return true
		}
	}
	return false
}

// Validate checks catalog invariants before a train is accepted.
func (t Train) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return domain.ValidationError{Field: "trainId", Msg: "must not be empty"}
	}
	return t.Seats.Validate()
}
