package core

import (
	"context"
	"errors"
)

// ErrUnrecognizedCommand is returned when no registered phrase matches the input line.
var ErrUnrecognizedCommand = errors.New("unrecognized command")

// Invocation is a matched command plus the raw line it was matched from.
type Invocation struct {
	Phrase string
	Raw    string
}

// Responder renders the output of one command.
type Responder func(ctx context.Context, inv Invocation)

type CmdRouter interface {
	ProcessInput(ctx context.Context, line string)
	ListCommands() []CommandSpec
}

// CommandSpec binds a lowercase phrase to the responder it triggers.
type CommandSpec struct {
	Phrase      string
	Usage       string
	Description string
	Handler     Responder
}
