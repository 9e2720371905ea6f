package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"enroll/internal/platform/config"
	"enroll/internal/platform/httpserver"
	"enroll/internal/platform/logger"
	"enroll/internal/server"
	"enroll/internal/server/metrics"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	handler := server.NewHandler(
		server.NewRegistry(),
		server.NewIssuer(cfg.SigningKey, cfg.TokenTTL),
		log,
		metrics.New(),
	)
	router := server.NewRouter(handler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting enroll demo server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
