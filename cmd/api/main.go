package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"saas-sim/internal/client"
	"saas-sim/internal/config"
	"saas-sim/internal/handler"
	"saas-sim/internal/messaging"
	"saas-sim/internal/payments"
	"saas-sim/internal/server"
	"saas-sim/internal/sourcing"
	"saas-sim/internal/store"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitSQLiteClient(cfg.DatabaseURL)
	st := store.New()
	snapshots := store.NewSnapshotRepository(db)

	paymentsHandler := handler.NewPaymentsHandler(payments.New(st))
	messagingHandler := handler.NewMessagingHandler(messaging.New(st))
	sourcingHandler := handler.NewSourcingHandler(sourcing.New(st))
	stateHandler := handler.NewStateHandler(st, snapshots, cfg.Snapshot.Path)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(paymentsHandler, messagingHandler, sourcingHandler, stateHandler)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
