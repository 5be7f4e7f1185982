package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"railbook/internal/http/middleware"
	"railbook/internal/utils"
)

type bookRequest struct {
	TrainID     string `json:"train_id"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// POST /api/bookings
//
// Books the seat and, on success, records a ticket for the caller.
// The booking engine only flips the seat; the ticket is this layer's
// derived record of the success.
func (a *API) CreateBooking(c *gin.Context) {
	var req bookRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.TrainID) == "" {
		RespondError(c, http.StatusBadRequest, "train_id is required", nil)
		return
	}
	if req.Date != "" {
		if _, err := utils.ParseDate(req.Date); err != nil {
			RespondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD", err)
			return
		}
	}

	if err := a.booking(c).Book(c.Request.Context(), req.TrainID, req.Row, req.Col); err != nil {
		RespondDomainError(c, err)
		return
	}

	ticket, err := a.Tickets.Issue(middleware.GetUserID(c), req.TrainID, req.Source, req.Destination, req.Date, req.Row, req.Col)
	if err != nil {
		// The seat is booked; the ledger write failed. Surface the
		// storage problem instead of pretending the booking failed.
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booked": true,
		"ticket": ticket,
	})
}

type cancelRequest struct {
	TrainID  string `json:"train_id"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	TicketID string `json:"ticket_id"`
}

// POST /api/bookings/cancel
func (a *API) CancelBooking(c *gin.Context) {
	var req cancelRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.TrainID) == "" {
		RespondError(c, http.StatusBadRequest, "train_id is required", nil)
		return
	}

	if err := a.booking(c).Cancel(c.Request.Context(), req.TrainID, req.Row, req.Col); err != nil {
		RespondDomainError(c, err)
		return
	}

	removedTicket := false
	if strings.TrimSpace(req.TicketID) != "" {
		removed, err := a.Tickets.Remove(req.TicketID)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		removedTicket = removed
	}

	c.JSON(http.StatusOK, gin.H{
		"cancelled":      true,
		"ticket_removed": removedTicket,
	})
}
