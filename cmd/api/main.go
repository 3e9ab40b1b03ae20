package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/config"
	"rentalhub/internal/database"
	"rentalhub/internal/logger"
	jwtsvc "rentalhub/internal/pkg/jwt"
	"rentalhub/internal/pkg/ratelimit"
	"rentalhub/internal/repository"
	"rentalhub/internal/server"
)

func main() {
	if err := run(); err != nil {
		logger.Error("api exited", "error", err)
		os.Exit(1)
	}
}

// run owns every resource; deferred closes run in reverse so the database
// handle goes last.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(database.Options{DSN: cfg.Database.URL, Debug: cfg.Database.Debug})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if err := database.Migrate(db, cfg.Database.URL, cfg.Database.Migrations); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var limiter ratelimit.Limiter = ratelimit.Disabled{}
	if cfg.Redis.URL != "" {
		rl, err := ratelimit.NewRedis(cfg.Redis.URL, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
		if err != nil {
			return fmt.Errorf("login limiter: %w", err)
		}
		defer rl.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rl.Ping(pingCtx); err != nil {
			logger.Warn("redis unreachable, login limiter fails open", "error", err)
		}
		cancel()
		limiter = rl
	}

	router := server.NewRouter(server.Deps{
		Store:       repository.NewStore(db),
		Tokens:      jwtsvc.New(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL),
		Limiter:     limiter,
		CORSOrigins: cfg.HTTP.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.HTTP.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-quit:
	}
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
