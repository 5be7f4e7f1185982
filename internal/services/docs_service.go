package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"railbook/internal/domain/models"
	"railbook/internal/utils"
)

// DocsService renders printable documents for issued tickets.
type DocsService struct {
	Tickets   *TicketService
	Catalog   trainFinder
	RequestID string
}

type trainFinder interface {
	FindByID(trainID string) (models.Train, error)
}

// GenerateETicket renders the ticket as a PDF. The train lookup is
// best-effort: a ticket for a since-deleted train still prints.
func (s DocsService) GenerateETicket(ticketID string) ([]byte, string, error) {
	ticket, err := s.Tickets.Get(ticketID)
	if err != nil {
		return nil, "", err
	}
	trainNo := ticket.TrainID
	if s.Catalog != nil {
		if train, err := s.Catalog.FindByID(ticket.TrainID); err == nil {
			trainNo = train.Number
		}
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "ticket_id="+ticketID)
	return buildETicketPDF(ticket, trainNo)
}

func buildETicketPDF(t models.Ticket, trainNo string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket ID   : %s", safe(t.ID, "-")),
		fmt.Sprintf("Train       : %s", safe(trainNo, "-")),
		fmt.Sprintf("Seat        : row %d, col %d", t.Row, t.Col),
		fmt.Sprintf("Route       : %s -> %s", safe(t.Source, "-"), safe(t.Destination, "-")),
		fmt.Sprintf("Date        : %s", safe(t.DateOfJourney, "-")),
		fmt.Sprintf("Passenger   : %s", safe(t.UserID, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("eticket-%s.pdf", t.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
