package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/vasilika/portfolio-tracker-backend/config"
	"github.com/vasilika/portfolio-tracker-backend/internal/bootstrap"
	"github.com/vasilika/portfolio-tracker-backend/internal/storage/postgres"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	if level, err := zerolog.ParseLevel(cfg.App.LogLevel); err == nil {
		log = log.Level(level)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	if err := postgres.Migrate(&cfg.Database); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := bootstrap.OpenDB(ctx, &cfg.Database, bootstrap.DBOptions{})
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	if rdb != nil {
		defer rdb.Close()
	} else {
		log.Info().Msg("read-view cache disabled (REDIS_ADDR not set)")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config: cfg,
		DB:     pool,
		Redis:  rdb,
		Log:    log,
	})

	log.Info().Str("port", cfg.Server.Port).Str("env", cfg.App.Environment).Msg("listening")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
