package storage

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

func TestMySQLTrainStoreLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"train_id", "train_no", "seats", "stations", "station_times"}).
		AddRow("T1", "12301", []byte(`[[0,1],[0,0]]`), []byte(`["delhi","agra"]`), []byte(`{"delhi":"08:00"}`))
	mock.ExpectQuery("SELECT train_id, train_no, seats, stations, station_times FROM trains").
		WillReturnRows(rows)

	store := NewMySQLTrainStore(db)
	trains, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(trains) != 1 || trains[0].ID != "T1" {
		t.Fatalf("unexpected trains: %+v", trains)
	}
	if got, _ := trains[0].Seats.Get(0, 1); got != models.SeatOccupied {
		t.Fatal("seat grid not decoded")
	}
	if trains[0].StationTimes["delhi"] != "08:00" {
		t.Fatal("station times not decoded")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLTrainStoreSaveRewritesCollectionInOneTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM trains").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO trains").
		WithArgs("T1", "12301", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO trains").
		WithArgs("T2", "12302", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	store := NewMySQLTrainStore(db)
	err = store.Save([]models.Train{
		{ID: "T1", Number: "12301", Seats: models.NewSeatMatrix(1, 1)},
		{ID: "T2", Number: "12302", Seats: models.NewSeatMatrix(1, 1)},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLTrainStoreSaveRollsBackOnInsertFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM trains").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO trains").
		WillReturnError(errDummy{})
	mock.ExpectRollback()

	store := NewMySQLTrainStore(db)
	err = store.Save([]models.Train{{ID: "T1", Number: "1", Seats: models.NewSeatMatrix(1, 1)}})
	if !domain.IsStorage(err) {
		t.Fatalf("expected storage error, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

type errDummy struct{}

func (errDummy) Error() string { return "boom" }
