package metrics

import (
	"math"
	"runtime"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

// hostInfo is the subset of kernel statistics the console reports.
type hostInfo struct {
	Loads       [3]float64
	FreeMemory  uint64
	TotalMemory uint64
}

// Provider reports process and host resource usage. Peak heap is tracked
// across every Sample and Stats call since the provider was created.
type Provider struct {
	started  time.Time
	peakHeap atomic.Uint64

	now      func() time.Time
	host     func() hostInfo
	memStats func(*runtime.MemStats)
	memLimit func() uint64
}

func NewProvider() *Provider {
	return &Provider{
		started:  time.Now(),
		now:      time.Now,
		host:     readHostInfo,
		memStats: runtime.ReadMemStats,
		memLimit: goMemoryLimit,
	}
}

// Sample records the current heap size toward the peak and returns it.
func (p *Provider) Sample() uint64 {
	var ms runtime.MemStats
	p.memStats(&ms)
	p.observe(ms.HeapAlloc)
	return ms.HeapAlloc
}

func (p *Provider) Stats() core.Stats {
	var ms runtime.MemStats
	p.memStats(&ms)
	p.observe(ms.HeapAlloc)

	host := p.host()
	limit := p.memLimit()
	if limit == 0 {
		limit = host.TotalMemory
	}
	used := percentOf(ms.HeapAlloc, limit)

	return core.Stats{
		LoadAverage:          host.Loads,
		CPUCount:             runtime.NumCPU(),
		FreeMemory:           host.FreeMemory,
		HeapAlloc:            ms.HeapAlloc,
		PeakHeapAlloc:        p.peakHeap.Load(),
		HeapUsedPercent:      used,
		HeapAvailablePercent: 100 - used,
		Uptime:               p.now().Sub(p.started),
	}
}

func (p *Provider) observe(heap uint64) {
	for {
		peak := p.peakHeap.Load()
		if heap <= peak || p.peakHeap.CompareAndSwap(peak, heap) {
			return
		}
	}
}

// percentOf returns round(part/whole*100) clamped to 0..100; 0 when whole is
// unknown.
func percentOf(part, whole uint64) int {
	if whole == 0 {
		return 0
	}
	pct := int(math.Round(float64(part) / float64(whole) * 100))
	return min(max(pct, 0), 100)
}

// goMemoryLimit returns the soft limit set through GOMEMLIMIT, or 0 when the
// runtime runs unlimited.
func goMemoryLimit() uint64 {
	limit := debug.SetMemoryLimit(-1)
	if limit <= 0 || limit == math.MaxInt64 {
		return 0
	}
	return uint64(limit)
}
