package handlers

import (
	"github.com/gin-gonic/gin"

	"railbook/internal/catalog"
	"railbook/internal/config"
	"railbook/internal/http/middleware"
	"railbook/internal/services"
)

// API bundles the handler dependencies. Services carrying a request id
// are built per request; the catalog and stores are shared.
type API struct {
	Env     config.Env
	Catalog *catalog.TrainCatalog
	Users   *services.UserService
	Tickets *services.TicketService
}

func (a *API) booking(c *gin.Context) services.BookingService {
	return services.BookingService{
		Catalog:     a.Catalog,
		LockTimeout: a.Env.LockTimeout,
		RequestID:   middleware.GetRequestID(c),
	}
}

func (a *API) trains(c *gin.Context) services.TrainService {
	return services.TrainService{
		Catalog:     a.Catalog,
		LockTimeout: a.Env.LockTimeout,
		RequestID:   middleware.GetRequestID(c),
	}
}

func (a *API) docs(c *gin.Context) services.DocsService {
	return services.DocsService{
		Tickets:   a.Tickets,
		Catalog:   a.Catalog,
		RequestID: middleware.GetRequestID(c),
	}
}
