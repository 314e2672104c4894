package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aemlabs/aemdash/internal/server/handlers"
	"github.com/aemlabs/aemdash/internal/server/jwt"
	"github.com/aemlabs/aemdash/internal/server/middleware"
	"github.com/aemlabs/aemdash/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	tokenTTL        = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
	loginRateLimit  = 10 // запросов на IP в минуту
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Address to listen on")
	dbPath := flag.String("db", "aemdash-server.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (or AEMDASH_JWT_SECRET env)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("AEMDASH_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("JWT secret is required (--jwt-secret or AEMDASH_JWT_SECRET)")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, *addr, *dbPath, secret); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, addr, dbPath, secret string) error {
	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	tokens := jwt.NewService(secret, tokenTTL)

	authHandler := handlers.NewAuthHandler(logger, store, tokens)
	dashHandler := handlers.NewDashboardHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	limiter := middleware.NewRateLimiter(loginRateLimit, time.Minute, logger)
	defer limiter.Stop()

	rateLimit := middleware.RateLimitMiddleware(limiter, logger)
	authRequired := middleware.AuthMiddleware(logger, tokens)

	mux := http.NewServeMux()
	mux.Handle("POST /account/login", rateLimit(http.HandlerFunc(authHandler.Login)))
	mux.Handle("GET /dashboard", authRequired(http.HandlerFunc(dashHandler.Dashboard)))
	mux.Handle("GET /api/v1/health", http.HandlerFunc(healthHandler.Health))

	handler := middleware.LoggingMiddleware(logger)(
		middleware.RecoveryMiddleware(logger)(mux),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("aemdash Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
