package command

import (
	"context"
	"sync"

	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

// tracker runs responder lookups in the background. Nothing waits on them in
// the prompt loop; Wait exists so tests and tooling can.
type tracker struct {
	wg sync.WaitGroup
}

func (t *tracker) Go(ctx context.Context, fn func()) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.FromCtx(ctx).Error().Interface("panic", r).Msg("responder panicked")
			}
		}()
		fn()
	}()
}

func (t *tracker) Wait() {
	t.wg.Wait()
}
