package services

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
	"railbook/internal/storage"
	"railbook/internal/utils"
)

// TicketService is the ledger of issued tickets. Tickets are derived
// records: issuing or removing one never touches seat state, and the
// seat matrix stays the single source of truth for occupancy.
type TicketService struct {
	Store     storage.TicketStore
	RequestID string

	mu sync.Mutex
}

// Issue records a ticket for a booking that already succeeded.
func (s *TicketService) Issue(userID, trainID, source, destination, date string, row, col int) (models.Ticket, error) {
	ticket := models.Ticket{
		ID:            uuid.NewString(),
		UserID:        strings.TrimSpace(userID),
		Source:        strings.TrimSpace(source),
		Destination:   strings.TrimSpace(destination),
		DateOfJourney: strings.TrimSpace(date),
		TrainID:       strings.TrimSpace(trainID),
		Row:           row,
		Col:           col,
	}
	if ticket.UserID == "" {
		return models.Ticket{}, domain.ValidationError{Field: "userId", Msg: "must not be empty"}
	}
	if ticket.TrainID == "" {
		return models.Ticket{}, domain.ValidationError{Field: "trainId", Msg: "must not be empty"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.Store.Load()
	if err != nil {
		return models.Ticket{}, err
	}
	tickets = append(tickets, ticket)
	if err := s.Store.Save(tickets); err != nil {
		return models.Ticket{}, err
	}
	utils.LogEvent(s.RequestID, "ticket", "issue", "ticket_id="+ticket.ID)
	return ticket, nil
}

// Get fetches one ticket by id.
func (s *TicketService) Get(ticketID string) (models.Ticket, error) {
	tickets, err := s.Store.Load()
	if err != nil {
		return models.Ticket{}, err
	}
	for _, t := range tickets {
		if t.ID == ticketID {
			return t, nil
		}
	}
	return models.Ticket{}, domain.NotFoundError{Resource: "ticket"}
}

// ListByUser returns every ticket held by the user.
func (s *TicketService) ListByUser(userID string) ([]models.Ticket, error) {
	tickets, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	out := []models.Ticket{}
	for _, t := range tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// Remove deletes a ticket from the ledger. Returns false when absent.
// Removing a ticket does not free the seat; that is Cancel's job.
func (s *TicketService) Remove(ticketID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets, err := s.Store.Load()
	if err != nil {
		return false, err
	}
	for i, t := range tickets {
		if t.ID == ticketID {
			tickets = append(tickets[:i], tickets[i+1:]...)
			if err := s.Store.Save(tickets); err != nil {
				return false, err
			}
			utils.LogEvent(s.RequestID, "ticket", "remove", "ticket_id="+ticketID)
			return true, nil
		}
	}
	return false, nil
}
