package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

var _ core.AppConfig = AppConfig{}

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Environment variable names, as written by the installer.
const (
	EnvRuntimePath     = "DOWNTIME_RUNTIME_PATH"
	EnvStore           = "DOWNTIME_STORE"
	EnvDataDir         = "DOWNTIME_DATA_DIR"
	EnvLogsDir         = "DOWNTIME_LOGS_DIR"
	EnvDatabase        = "DOWNTIME_DATABASE"
	EnvMetricsInterval = "DOWNTIME_METRICS_INTERVAL"
	EnvColor           = "DOWNTIME_COLOR"
	EnvDebug           = "DOWNTIME_DEBUG"
)

const DefaultMetricsInterval = 5 * time.Second

type AppConfig struct {
	RuntimePath string `env:"DOWNTIME_RUNTIME_PATH" envDefault:".downtime"`

	// Record store backend: "file" or "sqlite"
	StoreBackend string `env:"DOWNTIME_STORE" envDefault:"file"`
	DataDir      string `env:"DOWNTIME_DATA_DIR" envDefault:"data"`
	LogsDir      string `env:"DOWNTIME_LOGS_DIR" envDefault:"logs"`
	DatabaseFile string `env:"DOWNTIME_DATABASE" envDefault:"downtime.db"`

	MetricsInterval time.Duration `env:"DOWNTIME_METRICS_INTERVAL" envDefault:"5s"`
	Color           bool          `env:"DOWNTIME_COLOR" envDefault:"true"`
}

func NewAppConfig(ctx context.Context) (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().
		Str("runtime", c.RuntimePath).
		Str("store", c.StoreBackend).
		Msg("loaded app config")
	return c, nil
}

func (c AppConfig) Validate() error {
	switch c.StoreBackend {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("unsupported store backend %q", c.StoreBackend)
	}
	if c.MetricsInterval <= 0 {
		return fmt.Errorf("metrics interval must be positive, got %s", c.MetricsInterval)
	}
	return nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDataPath() string {
	return c.underRuntime(c.DataDir)
}

func (c AppConfig) GetLogsPath() string {
	return c.underRuntime(c.LogsDir)
}

func (c AppConfig) GetDatabasePath() string {
	return c.underRuntime(c.DatabaseFile)
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetStoreBackend() string {
	return c.StoreBackend
}

func (c AppConfig) GetMetricsInterval() time.Duration {
	return c.MetricsInterval
}

func (c AppConfig) IsColorEnabled() bool {
	return c.Color
}

func (c AppConfig) underRuntime(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.RuntimePath, p)
}
