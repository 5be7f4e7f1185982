package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"

	"railbook/internal/catalog"
	"railbook/internal/config"
	api "railbook/internal/http"
	"railbook/internal/http/handlers"
	"railbook/internal/services"
	"railbook/internal/storage"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	trainStore, closeStore := buildTrainStore(env)
	defer closeStore()

	cat := catalog.NewTrainCatalog(trainStore)
	users := &services.UserService{Store: storage.NewFileUserStore(env.DataDir)}
	tickets := &services.TicketService{Store: storage.NewFileTicketStore(env.DataDir)}

	r := api.NewRouter(env, &handlers.API{
		Env:     env,
		Catalog: cat,
		Users:   users,
		Tickets: tickets,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

func buildTrainStore(env config.Env) (storage.TrainStore, func()) {
	if env.StoreDriver != "mysql" {
		return storage.NewFileTrainStore(env.DataDir), func() {}
	}

	db, err := sql.Open("mysql", env.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to open MySQL: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping MySQL: %v", err)
	}

	store := storage.NewMySQLTrainStore(db)
	if err := store.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure trains schema: %v", err)
	}
	log.Println("Connected to MySQL train store")
	return store, func() { _ = db.Close() }
}
