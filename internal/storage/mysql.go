package storage

import (
	"database/sql"
	"encoding/json"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

// MySQLTrainStore keeps the train collection in a single table, one
// row per train with the grid and route serialized as JSON columns.
// Save rewrites the whole collection inside one transaction, which
// preserves the gateway contract: readers see either the old
// collection or the new one, never a mix.
type MySQLTrainStore struct {
	DB *sql.DB
}

func NewMySQLTrainStore(db *sql.DB) *MySQLTrainStore {
	return &MySQLTrainStore{DB: db}
}

// EnsureSchema creates the trains table when missing.
func (s *MySQLTrainStore) EnsureSchema() error {
	ddl := `
CREATE TABLE IF NOT EXISTS trains (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	train_id VARCHAR(64) NOT NULL,
	train_no VARCHAR(64) NOT NULL,
	seats JSON NOT NULL,
	stations JSON NOT NULL,
	station_times JSON NOT NULL,
	UNIQUE KEY uniq_train_id (train_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	if _, err := s.DB.Exec(ddl); err != nil {
		return domain.StorageError{Op: "schema", Err: err}
	}
	return nil
}

func (s *MySQLTrainStore) Load() ([]models.Train, error) {
	rows, err := s.DB.Query(`SELECT train_id, train_no, seats, stations, station_times FROM trains ORDER BY id ASC`)
	if err != nil {
		return nil, domain.StorageError{Op: "read", Err: err}
	}
	defer rows.Close()

	out := []models.Train{}
	for rows.Next() {
		var t models.Train
		var seats, stations, times []byte
		if err := rows.Scan(&t.ID, &t.Number, &seats, &stations, &times); err != nil {
			return nil, domain.StorageError{Op: "read", Err: err}
		}
		if err := json.Unmarshal(seats, &t.Seats); err != nil {
			return nil, domain.StorageError{Op: "decode", Err: err}
		}
		if err := json.Unmarshal(stations, &t.Stations); err != nil {
			return nil, domain.StorageError{Op: "decode", Err: err}
		}
		if err := json.Unmarshal(times, &t.StationTimes); err != nil {
			return nil, domain.StorageError{Op: "decode", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "read", Err: err}
	}
	return out, nil
}

func (s *MySQLTrainStore) Save(trains []models.Train) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return domain.StorageError{Op: "write", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM trains`); err != nil {
		return domain.StorageError{Op: "write", Err: err}
	}
	for _, t := range trains {
		seats, err := json.Marshal(t.Seats)
		if err != nil {
			return domain.StorageError{Op: "encode", Err: err}
		}
		stations, err := json.Marshal(t.Stations)
		if err != nil {
			return domain.StorageError{Op: "encode", Err: err}
		}
		times, err := json.Marshal(t.StationTimes)
		if err != nil {
			return domain.StorageError{Op: "encode", Err: err}
		}
		if _, err := tx.Exec(
			`INSERT INTO trains (train_id, train_no, seats, stations, station_times) VALUES (?,?,?,?,?)`,
			t.ID, t.Number, seats, stations, times,
		); err != nil {
			return domain.StorageError{Op: "write", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return domain.StorageError{Op: "write", Err: err}
	}
	return nil
}
