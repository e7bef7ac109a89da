package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

func TestBusPublish(t *testing.T) {
	bus := NewBus()

	var got []core.Invocation
	require.NoError(t, bus.Subscribe("stats", func(ctx context.Context, inv core.Invocation) {
		got = append(got, inv)
	}))

	inv := core.Invocation{Phrase: "stats", Raw: "stats now"}
	require.NoError(t, bus.Publish(context.Background(), inv))
	assert.Equal(t, []core.Invocation{inv}, got)
}

func TestBusDuplicateSubscription(t *testing.T) {
	bus := NewBus()
	noop := func(ctx context.Context, inv core.Invocation) {}

	require.NoError(t, bus.Subscribe("man", noop))
	err := bus.Subscribe("man", noop)
	assert.ErrorIs(t, err, ErrAlreadySubscribed)
}

func TestBusNoSubscriber(t *testing.T) {
	bus := NewBus()
	err := bus.Publish(context.Background(), core.Invocation{Phrase: "stats"})
	assert.ErrorIs(t, err, ErrNoSubscriber)
}
