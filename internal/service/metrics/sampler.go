package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

// Sampler polls the provider on an interval so short heap spikes between two
// stats commands still register as the peak.
type Sampler struct {
	provider *Provider
	interval time.Duration

	stop chan struct{}
	once sync.Once
}

func NewSampler(provider *Provider, interval time.Duration) *Sampler {
	return &Sampler{
		provider: provider,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (s *Sampler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger := log.FromCtx(ctx)
	logger.Debug().Dur("interval", s.interval).Msg("metrics sampler started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			heap := s.provider.Sample()
			logger.Debug().Uint64("heap_alloc", heap).Msg("heap sampled")
		}
	}
}

func (s *Sampler) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.stop) })
	return nil
}
