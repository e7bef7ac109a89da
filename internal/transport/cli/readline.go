package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/service/ui"
	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

const banner = "The CLI is running."

type lineReader interface {
	Readline() (string, error)
	Close() error
}

// ReadLine is the operator prompt. Each line is handed to the router, which
// returns before the command's output is rendered.
type ReadLine struct {
	router  core.CmdRouter
	console *ui.Console
	rl      lineReader
}

// OpenTerminal prepares the prompt with an empty prompt string and history
// kept in the runtime directory.
func OpenTerminal(runtimePath string) (*readline.Instance, error) {
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "",
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt: %w", err)
	}
	return rl, nil
}

func NewReadLine(router core.CmdRouter, console *ui.Console, rl lineReader) *ReadLine {
	return &ReadLine{
		router:  router,
		console: console,
		rl:      rl,
	}
}

// Start runs the prompt loop until EOF, Ctrl+C on an empty line or context
// cancellation.
func (r *ReadLine) Start(ctx context.Context) error {
	log.FromCtx(ctx).Debug().Int("commands", len(r.router.ListCommands())).Msg("console started")
	r.console.Banner(banner)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		r.router.ProcessInput(ctx, line)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
