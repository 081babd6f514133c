package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wfunc/hangman/config"
	"github.com/wfunc/hangman/logger"
	"github.com/wfunc/hangman/monitor"
	"github.com/wfunc/hangman/server"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Init("info")
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Init(cfg.Log.Level)
	defer logger.Sync()

	catalog, err := cfg.WordCatalog()
	if err != nil {
		logger.Log.Fatalf("Invalid word catalog: %v", err)
	}
	logger.Log.Infof("Loaded %d catalog entries", catalog.Len())

	mon := monitor.NewMonitor("hangman")
	go func() {
		logger.Log.Infof("Metrics listening on %s", cfg.Server.MetricsAddress)
		if err := http.ListenAndServe(cfg.Server.MetricsAddress, mon.Handler()); err != nil {
			logger.Log.Errorf("Metrics server stopped: %v", err)
		}
	}()

	gameServer, err := server.NewGameServer(server.Options{
		HTTPAddress:   cfg.Server.HTTPAddress,
		RPCAddress:    cfg.Server.RPCAddress,
		IdleTimeout:   cfg.Server.IdleTimeout,
		SweepInterval: cfg.Server.SweepInterval,
		Heartbeat:     cfg.Server.Heartbeat,
		Catalog:       catalog,
	}, mon)
	if err != nil {
		logger.Log.Fatalf("Failed to create server: %v", err)
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		logger.Log.Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := gameServer.Shutdown(ctx); err != nil {
			logger.Log.Errorf("Shutdown error: %v", err)
		}
	}()

	// Start Server
	if err := gameServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}
