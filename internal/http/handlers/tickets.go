package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"railbook/internal/http/middleware"
)

// GET /api/tickets/:id
func (a *API) GetTicket(c *gin.Context) {
	ticket, err := a.Tickets.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// GET /api/my/tickets
func (a *API) ListMyTickets(c *gin.Context) {
	tickets, err := a.Tickets.ListByUser(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

// GET /api/tickets/:id/e-ticket
func (a *API) GetTicketPDF(c *gin.Context) {
	raw, filename, err := a.docs(c).GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}
