package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aemlabs/aemdash/internal/client/api"
	"github.com/aemlabs/aemdash/internal/client/auth"
	"github.com/aemlabs/aemdash/internal/client/cli"
	"github.com/aemlabs/aemdash/internal/client/creds"
	"github.com/aemlabs/aemdash/internal/client/dashboard"
	"github.com/aemlabs/aemdash/internal/client/dashcache"
	"github.com/aemlabs/aemdash/internal/client/failover"
	"github.com/aemlabs/aemdash/internal/client/iocli"
	"github.com/aemlabs/aemdash/internal/client/netcheck"
	"github.com/aemlabs/aemdash/internal/client/storage/boltdb"
	"github.com/aemlabs/aemdash/internal/crypto"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// app держит общие зависимости для сборки CLI под конкретную команду
type app struct {
	boltStorage *boltdb.Storage
	apiClient   *api.Client
	logger      *slog.Logger
}

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "aemdash-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Ctrl+C прерывает долгие операции (watch)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	a := &app{
		boltStorage: boltStorage,
		apiClient:   api.NewClient(*serverURL),
		logger:      logger,
	}

	if err := a.run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildCli собирает offline-resilience подсистему поверх заданного probe
func (a *app) buildCli(probe netcheck.Probe) *cli.Cli {
	runner := failover.NewRunner(probe, a.logger)
	hasher := crypto.NewHasher()

	credsCache := creds.New(a.boltStorage, hasher, a.logger)
	dashCache := dashcache.New(a.boltStorage)

	authService := auth.NewService(a.apiClient, credsCache, a.boltStorage, runner, a.logger)
	dashService := dashboard.NewService(a.apiClient, dashCache, a.boltStorage, runner, a.logger)

	return cli.New(iocli.NewStdio(), authService, dashService, dashCache, a.boltStorage)
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	probe := netcheck.NewHTTPProbe(a.apiClient, netcheck.DefaultProbeTimeout)

	switch command {
	case "login":
		return a.buildCli(probe).RunLogin(ctx)

	case "dashboard":
		fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
		watch := fs.Bool("watch", false, "Periodically reload the dashboard")
		interval := fs.Duration("interval", 30*time.Second, "Reload interval for --watch")
		if err := fs.Parse(args); err != nil {
			return err
		}

		if !*watch {
			return a.buildCli(probe).RunDashboard(ctx)
		}

		// В watch-режиме статус сети кешируется монитором, чтобы не
		// платить за health check на каждую перезагрузку
		monitor := netcheck.NewMonitor(probe, *interval/2, a.logger)
		go monitor.Run(ctx)
		return a.buildCli(monitor).RunDashboardWatch(ctx, *interval)

	case "logout":
		fs := flag.NewFlagSet("logout", flag.ExitOnError)
		wipeAll := fs.Bool("wipe", false, "Remove all offline data")
		wipeCreds := fs.Bool("wipe-credentials", false, "Remove cached credentials only")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return a.buildCli(probe).RunLogout(ctx, auth.LogoutOptions{
			WipeAll:         *wipeAll,
			WipeCredentials: *wipeCreds,
		})

	case "status":
		return a.buildCli(probe).RunStatus(ctx)

	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printVersion() {
	fmt.Printf("aemdash Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
