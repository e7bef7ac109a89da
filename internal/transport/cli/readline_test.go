package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/service/ui"
)

type readResult struct {
	line string
	err  error
}

type fakeReader struct {
	results []readResult
	closed  bool
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.results) == 0 {
		return "", io.EOF
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.line, r.err
}

func (f *fakeReader) Close() error {
	f.closed = true
	return nil
}

type fakeRouter struct {
	lines []string
}

func (f *fakeRouter) ProcessInput(ctx context.Context, line string) {
	f.lines = append(f.lines, line)
}

func (f *fakeRouter) ListCommands() []core.CommandSpec {
	return nil
}

func newTestReadLine(results ...readResult) (*ReadLine, *fakeRouter, *fakeReader, *bytes.Buffer) {
	out := &bytes.Buffer{}
	router := &fakeRouter{}
	reader := &fakeReader{results: results}
	return NewReadLine(router, ui.NewConsole(out), reader), router, reader, out
}

func TestStartForwardsLinesUntilEOF(t *testing.T) {
	r, router, _, out := newTestReadLine(
		readResult{line: "stats"},
		readResult{line: "  "},
		readResult{line: "list users"},
	)

	require.NoError(t, r.Start(context.Background()))
	assert.Equal(t, "The CLI is running.\n", out.String())
	assert.Equal(t, []string{"stats", "  ", "list users"}, router.lines)
}

func TestStartInterrupt(t *testing.T) {
	r, router, _, _ := newTestReadLine(
		readResult{line: "half typed", err: readline.ErrInterrupt},
		readResult{line: "stats"},
		readResult{line: "", err: readline.ErrInterrupt},
		readResult{line: "never read"},
	)

	require.NoError(t, r.Start(context.Background()))
	assert.Equal(t, []string{"stats"}, router.lines)
}

func TestStartReadError(t *testing.T) {
	boom := errors.New("tty gone")
	r, _, _, _ := newTestReadLine(readResult{err: boom})
	assert.ErrorIs(t, r.Start(context.Background()), boom)
}

func TestStartCancelled(t *testing.T) {
	r, router, _, _ := newTestReadLine(readResult{line: "stats"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, r.Start(ctx), context.Canceled)
	assert.Empty(t, router.lines)
}

func TestShutdownClosesReader(t *testing.T) {
	r, _, reader, _ := newTestReadLine()
	require.NoError(t, r.Shutdown(context.Background()))
	assert.True(t, reader.closed)
}
