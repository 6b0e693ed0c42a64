package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Poovetha/Inventory/internal/config"
	"github.com/Poovetha/Inventory/internal/db"
	"github.com/Poovetha/Inventory/internal/logger"
	"github.com/Poovetha/Inventory/internal/metrics"
	"github.com/Poovetha/Inventory/internal/seed"
	"github.com/Poovetha/Inventory/internal/server"
	"github.com/Poovetha/Inventory/internal/store"
)

var (
	seedFlag        = flag.Bool("seed", false, "Insert demo data and exit")
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()
	logger.New(logger.Config{Env: cfg.Env, Level: cfg.LogLevel})

	conn, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if *migrateOnlyFlag {
		log.Info().Msg("migrations completed; exiting as requested")
		return
	}
	if *seedFlag {
		created, err := seed.Run(conn)
		if err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
		log.Info().Int("movements", created).Msg("seed data inserted")
		return
	}

	st := store.New(conn)
	m := metrics.New()
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: server.New(st, m)}

	go func() {
		log.Info().Str("env", cfg.Env).Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server gracefully stopped")
}
