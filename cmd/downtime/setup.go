package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/pranavkumar389/downtime-monitor/internal/config"
	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/service/command"
	"github.com/pranavkumar389/downtime-monitor/internal/service/metrics"
	"github.com/pranavkumar389/downtime-monitor/internal/service/ui"
	"github.com/pranavkumar389/downtime-monitor/internal/storage/file"
	"github.com/pranavkumar389/downtime-monitor/internal/storage/logs"
	"github.com/pranavkumar389/downtime-monitor/internal/storage/sqlite"
	"github.com/pranavkumar389/downtime-monitor/internal/transport/cli"
	"github.com/pranavkumar389/downtime-monitor/pkg/log"
	"github.com/pranavkumar389/downtime-monitor/pkg/srv"
)

// NewServices wires the console. It returns the background services and the
// prompt, which the caller runs in the foreground.
func NewServices(ctx context.Context, exit func(int)) ([]srv.Service, *cli.ReadLine, error) {
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, nil, fmt.Errorf("failed to init env: %w", err)
	}

	// 1. Configuration
	appCfg, err := config.NewAppConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	// 2. Storage
	store, closeStore, err := initStore(ctx, appCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	services = append(services, srv.NewCleanup(closeStore))
	archive := logs.NewArchive(appCfg.GetLogsPath())

	// 3. Metrics
	provider := metrics.NewProvider()
	services = append(services, metrics.NewSampler(provider, appCfg.GetMetricsInterval()))

	// 4. Console
	rl, err := cli.OpenTerminal(appCfg.GetRuntimePath())
	if err != nil {
		_ = closeStore()
		return nil, nil, err
	}
	console := ui.NewConsole(rl.Stdout(), ui.WithColor(appCfg.IsColorEnabled() && ui.IsStdoutTTY()))

	router, err := command.New(command.Deps{
		Console: console,
		Store:   store,
		Archive: archive,
		Metrics: provider,
		Exit:    exit,
	})
	if err != nil {
		_ = rl.Close()
		_ = closeStore()
		return nil, nil, err
	}

	return services, cli.NewReadLine(router, console, rl), nil
}

func initStore(ctx context.Context, cfg core.AppConfig) (core.RecordStore, func() error, error) {
	switch cfg.GetStoreBackend() {
	case config.StoreSQLite:
		db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewRecordsRepo(db), db.Close, nil
	default:
		return file.NewStore(cfg.GetDataPath()), func() error { return nil }, nil
	}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
