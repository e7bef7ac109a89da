package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/service/ui"
	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

const unrecognizedMessage = "Sorry! Try again"

// Router turns one line of operator input into at most one responder call.
type Router struct {
	registry *Registry
	bus      *Bus
	console  *ui.Console
	async    *tracker
}

func New(deps Deps) (*Router, error) {
	async := &tracker{}
	responders := newResponders(deps, async)

	registry, err := NewRegistry(NewCommands(responders)...)
	if err != nil {
		return nil, err
	}
	responders.specs = registry.Specs

	bus := NewBus()
	for _, spec := range registry.Specs() {
		if err := bus.Subscribe(spec.Phrase, spec.Handler); err != nil {
			return nil, fmt.Errorf("failed to subscribe %q: %w", spec.Phrase, err)
		}
	}

	return &Router{
		registry: registry,
		bus:      bus,
		console:  deps.Console,
		async:    async,
	}, nil
}

// ProcessInput matches and dispatches one line. It returns as soon as the
// responder has been handed the invocation; lookups continue in the
// background.
func (r *Router) ProcessInput(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	logger := log.FromCtx(ctx)
	phrase, err := r.registry.Match(line)
	if errors.Is(err, core.ErrUnrecognizedCommand) {
		closest, dist := r.registry.Closest(line)
		logger.Debug().Str("input", line).Str("closest", closest).Int("distance", dist).Msg("unrecognized command")
		r.console.Println(unrecognizedMessage)
		return
	}

	logger.Debug().Str("phrase", phrase).Msg("dispatching command")
	inv := core.Invocation{Phrase: phrase, Raw: line}
	// Responders outlive the prompt cycle and are never cancelled.
	if err := r.bus.Publish(context.WithoutCancel(ctx), inv); err != nil {
		logger.Error().Err(err).Msg("dispatch failed")
	}
}

func (r *Router) ListCommands() []core.CommandSpec {
	return r.registry.Specs()
}

// Wait blocks until every background lookup started so far has finished.
func (r *Router) Wait() {
	r.async.Wait()
}
