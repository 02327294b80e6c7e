package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"sportsbuddy/config"
	"sportsbuddy/database"
	"sportsbuddy/handlers"
	"sportsbuddy/routes"
	"sportsbuddy/store"
)

func main() {
	log.Println("Starting Sports Buddy API server...")

	cfg := config.Load()

	// A failed connection aborts startup; nothing can be served
	// without the store, so there is no retry loop.
	log.Println("Connecting to MongoDB...")
	db, err := database.Connect(context.Background(), cfg.MongoURL)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	api := handlers.New(store.NewMongo(db))
	router := routes.SetupRouter(api, cfg.CORSOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}
	if err := database.Disconnect(shutdownCtx, db); err != nil {
		log.Println("MongoDB disconnect error: ", err)
	}

	log.Println("Server stopped")
}
