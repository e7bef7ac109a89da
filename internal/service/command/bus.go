package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

var (
	ErrAlreadySubscribed = errors.New("phrase already has a subscriber")
	ErrNoSubscriber      = errors.New("no subscriber for phrase")
)

// Bus delivers an invocation to the single responder subscribed to its
// phrase. Subscriptions happen once at startup; Publish is read-only.
type Bus struct {
	handlers map[string]core.Responder
}

func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string]core.Responder),
	}
}

func (b *Bus) Subscribe(phrase string, handler core.Responder) error {
	if _, exists := b.handlers[phrase]; exists {
		return fmt.Errorf("%w: %q", ErrAlreadySubscribed, phrase)
	}
	b.handlers[phrase] = handler
	return nil
}

func (b *Bus) Publish(ctx context.Context, inv core.Invocation) error {
	handler, ok := b.handlers[inv.Phrase]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSubscriber, inv.Phrase)
	}
	handler(ctx, inv)
	return nil
}
