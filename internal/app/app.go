package app

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/brasketbro/lovenest/internal/store"
	"github.com/brasketbro/lovenest/internal/utils"
)

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Select store backend: Postgres when DATABASE_URL is set, otherwise the
	// in-memory store (data is lost on restart).
	var st store.Storage
	if dbURL := utils.GetEnv("DATABASE_URL", ""); dbURL != "" {
		pg, err := store.NewPgStorage(dbURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		st = pg
		log.Println("Connected to PostgreSQL")
	} else {
		st = store.NewMemStorage()
		log.Println("Using in-memory store")
	}
	defer st.Close()

	app := New(st)

	// Start Server
	port := utils.GetEnv("PORT", "8080")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}
