package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/appsalute/clinic-booking/internal/config"
	dbpkg "github.com/appsalute/clinic-booking/internal/db"
	"github.com/appsalute/clinic-booking/internal/logging"
	"github.com/appsalute/clinic-booking/internal/routes"
	"github.com/appsalute/clinic-booking/internal/session"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.AppEnv, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	gin.SetMode(cfg.GinMode)

	db, err := dbpkg.Open(cfg)
	if err != nil {
		slog.Error("failed to open database", "err", err)
		os.Exit(1)
	}

	store, closeStore := newSessionStore(cfg)
	defer closeStore()

	r, shutdownRoutes := routes.NewRouter(db, cfg, store)
	defer shutdownRoutes()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", cfg.Addr(), "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to start server", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
	slog.Info("server stopped")
}

// newSessionStore uses redis when REDIS_ADDR is set and an in-process store otherwise.
func newSessionStore(cfg *config.Config) (session.Store, func()) {
	if cfg.RedisAddr == "" {
		slog.Warn("REDIS_ADDR not set, sessions are kept in memory")
		return session.NewMemoryStore(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("redis unreachable", "addr", cfg.RedisAddr, "err", err)
		os.Exit(1)
	}

	return session.NewRedisStore(client), func() { _ = client.Close() }
}
