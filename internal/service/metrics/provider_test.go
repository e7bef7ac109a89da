package metrics

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(heap *uint64, limit uint64) *Provider {
	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Provider{
		started: started,
		now:     func() time.Time { return started.Add(42*time.Second + 900*time.Millisecond) },
		host: func() hostInfo {
			return hostInfo{Loads: [3]float64{0.1, 0.2, 0.3}, FreeMemory: 2048, TotalMemory: 4000}
		},
		memStats: func(ms *runtime.MemStats) { ms.HeapAlloc = *heap },
		memLimit: func() uint64 { return limit },
	}
}

func TestStats(t *testing.T) {
	heap := uint64(1000)
	p := newTestProvider(&heap, 0)

	s := p.Stats()
	assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, s.LoadAverage)
	assert.Equal(t, uint64(2048), s.FreeMemory)
	assert.Equal(t, uint64(1000), s.HeapAlloc)
	assert.Equal(t, 25, s.HeapUsedPercent)
	assert.Equal(t, 75, s.HeapAvailablePercent)
	assert.Equal(t, 42, int(s.Uptime.Seconds()))
	assert.Positive(t, s.CPUCount)
}

func TestStatsUsesMemoryLimit(t *testing.T) {
	heap := uint64(500)
	p := newTestProvider(&heap, 1000)

	s := p.Stats()
	assert.Equal(t, 50, s.HeapUsedPercent)
	assert.Equal(t, 50, s.HeapAvailablePercent)
}

func TestPeakHeap(t *testing.T) {
	heap := uint64(100)
	p := newTestProvider(&heap, 0)

	p.Sample()
	heap = 900
	p.Sample()
	heap = 300

	s := p.Stats()
	assert.Equal(t, uint64(300), s.HeapAlloc)
	assert.Equal(t, uint64(900), s.PeakHeapAlloc)
}

func TestPercentOf(t *testing.T) {
	tests := []struct {
		part, whole uint64
		want        int
	}{
		{part: 0, whole: 100, want: 0},
		{part: 1, whole: 3, want: 33},
		{part: 2, whole: 3, want: 67},
		{part: 150, whole: 100, want: 100},
		{part: 5, whole: 0, want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percentOf(tt.part, tt.whole))
	}
}

func TestNewProviderReportsRealValues(t *testing.T) {
	s := NewProvider().Stats()
	require.Positive(t, s.HeapAlloc)
	assert.GreaterOrEqual(t, s.PeakHeapAlloc, s.HeapAlloc)
	assert.GreaterOrEqual(t, s.HeapUsedPercent, 0)
	assert.LessOrEqual(t, s.HeapUsedPercent, 100)
	assert.Equal(t, 100, s.HeapUsedPercent+s.HeapAvailablePercent)
}
