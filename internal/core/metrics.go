package core

import "time"

type Stats struct {
	LoadAverage          [3]float64
	CPUCount             int
	FreeMemory           uint64
	HeapAlloc            uint64
	PeakHeapAlloc        uint64
	HeapUsedPercent      int
	HeapAvailablePercent int
	Uptime               time.Duration
}

type MetricsProvider interface {
	Stats() Stats
}
