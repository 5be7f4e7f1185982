package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

// jsonFile stores one collection as a single JSON array. Writes go to
// a temp file in the same directory followed by rename, so readers
// only ever observe the old record or the new one.
type jsonFile[T any] struct {
	path string
}

func (f jsonFile[T]) load() ([]T, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, domain.StorageError{Op: "read", Err: err}
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, domain.StorageError{Op: "decode", Err: err}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (f jsonFile[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return domain.StorageError{Op: "encode", Err: err}
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.StorageError{Op: "write", Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return domain.StorageError{Op: "write", Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return domain.StorageError{Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return domain.StorageError{Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return domain.StorageError{Op: "write", Err: err}
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return domain.StorageError{Op: "write", Err: fmt.Errorf("replace %s: %w", f.path, err)}
	}
	return nil
}

// FileTrainStore keeps the train collection in trains.json under dir.
type FileTrainStore struct {
	file jsonFile[models.Train]
}

func NewFileTrainStore(dir string) *FileTrainStore {
	return &FileTrainStore{file: jsonFile[models.Train]{path: filepath.Join(dir, "trains.json")}}
}

func (s *FileTrainStore) Load() ([]models.Train, error) { return s.file.load() }

func (s *FileTrainStore) Save(trains []models.Train) error { return s.file.save(trains) }

// FileTicketStore keeps issued tickets in tickets.json under dir.
type FileTicketStore struct {
	file jsonFile[models.Ticket]
}

func NewFileTicketStore(dir string) *FileTicketStore {
	return &FileTicketStore{file: jsonFile[models.Ticket]{path: filepath.Join(dir, "tickets.json")}}
}

func (s *FileTicketStore) Load() ([]models.Ticket, error) { return s.file.load() }

func (s *FileTicketStore) Save(tickets []models.Ticket) error { return s.file.save(tickets) }

// FileUserStore keeps accounts in users.json under dir.
type FileUserStore struct {
	file jsonFile[models.User]
}

func NewFileUserStore(dir string) *FileUserStore {
	return &FileUserStore{file: jsonFile[models.User]{path: filepath.Join(dir, "users.json")}}
}

func (s *FileUserStore) Load() ([]models.User, error) { return s.file.load() }

func (s *FileUserStore) Save(users []models.User) error { return s.file.save(users) }
