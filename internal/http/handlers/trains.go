package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"railbook/internal/domain/models"
)

// GET /api/trains
func (a *API) ListTrains(c *gin.Context) {
	trains, err := a.Catalog.ListAll()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trains": trains})
}

// GET /api/trains/:id
func (a *API) GetTrain(c *gin.Context) {
	train, err := a.Catalog.FindByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, train)
}

// GET /api/trains/search?station=...
func (a *API) SearchTrains(c *gin.Context) {
	station := strings.TrimSpace(c.Query("station"))
	if station == "" {
		RespondError(c, http.StatusBadRequest, "station query param is required", nil)
		return
	}
	trains, err := a.Catalog.SearchByStation(station)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trains": trains})
}

// GET /api/trains/:id/seats
func (a *API) GetTrainSeats(c *gin.Context) {
	trainID := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"train_id":  trainID,
		"available": a.Catalog.AvailableSeatCount(trainID),
	})
}

type trainRequest struct {
	TrainID      string            `json:"trainId"`
	TrainNo      string            `json:"trainNo"`
	Seats        models.SeatMatrix `json:"seats"`
	Rows         int               `json:"rows"`
	Cols         int               `json:"cols"`
	Stations     []string          `json:"stations"`
	StationTimes map[string]string `json:"stationTimes"`
}

func (r trainRequest) toTrain() models.Train {
	seats := r.Seats
	if len(seats) == 0 && r.Rows > 0 && r.Cols > 0 {
		seats = models.NewSeatMatrix(r.Rows, r.Cols)
	}
	return models.Train{
		ID:           strings.TrimSpace(r.TrainID),
		Number:       strings.TrimSpace(r.TrainNo),
		Seats:        seats,
		Stations:     r.Stations,
		StationTimes: r.StationTimes,
	}
}

// POST /api/trains
func (a *API) CreateTrain(c *gin.Context) {
	var req trainRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	train := req.toTrain()
	if err := a.trains(c).Add(c.Request.Context(), train); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, train)
}

// PUT /api/trains/:id
func (a *API) UpdateTrain(c *gin.Context) {
	var req trainRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	train := req.toTrain()
	train.ID = c.Param("id")
	if err := a.trains(c).Update(c.Request.Context(), train); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, train)
}

// DELETE /api/trains/:id
func (a *API) DeleteTrain(c *gin.Context) {
	removed, err := a.trains(c).Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !removed {
		RespondError(c, http.StatusNotFound, "train not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
