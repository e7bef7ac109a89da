package core

import "time"

type AppConfig interface {
	GetRuntimePath() string
	GetDataPath() string
	GetLogsPath() string
	GetDatabasePath() string
	GetStoreBackend() string
	GetMetricsInterval() time.Duration
	IsColorEnabled() bool
}
