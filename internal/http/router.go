package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"railbook/internal/config"
	h "railbook/internal/http/handlers"
	"railbook/internal/http/middleware"
)

func NewRouter(env config.Env, api *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), cors.New(corsConfig()))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	root := r.Group("/api")
	{
		root.GET("/health", h.Health)

		auth := root.Group("/auth")
		auth.POST("/login", api.Login)
		auth.POST("/register", api.Register)

		trains := root.Group("/trains")
		trains.GET("", api.ListTrains)
		trains.GET("/search", api.SearchTrains)
		trains.GET("/:id", api.GetTrain)
		trains.GET("/:id/seats", api.GetTrainSeats)

		authed := root.Group("")
		authed.Use(middleware.RequireAuth([]byte(env.JWTSecret)))
		{
			authed.POST("/trains", api.CreateTrain)
			authed.PUT("/trains/:id", api.UpdateTrain)
			authed.DELETE("/trains/:id", api.DeleteTrain)

			authed.POST("/bookings", api.CreateBooking)
			authed.POST("/bookings/cancel", api.CancelBooking)

			authed.GET("/tickets/:id", api.GetTicket)
			authed.GET("/tickets/:id/e-ticket", api.GetTicketPDF)
			authed.GET("/my/tickets", api.ListMyTickets)
		}
	}

	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowCredentials = true

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins := []string{}
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowOrigins = origins
		return cfg
	}

	cfg.AllowOrigins = []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	return cfg
}
