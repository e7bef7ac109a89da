package command

import (
	"context"
	"os"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/service/ui"
	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

// Deps are the collaborators the responders read from.
type Deps struct {
	Console *ui.Console
	Store   core.RecordStore
	Archive core.LogArchive
	Metrics core.MetricsProvider
	// Exit terminates the process; os.Exit when nil.
	Exit func(code int)
}

// Responders holds one handler per command. Lookup failures are logged at
// debug level and otherwise swallowed: the console prefers staying available
// over reporting partial output.
type Responders struct {
	console *ui.Console
	store   core.RecordStore
	archive core.LogArchive
	metrics core.MetricsProvider
	exit    func(code int)
	async   *tracker
	specs   func() []core.CommandSpec
}

func newResponders(deps Deps, async *tracker) *Responders {
	exit := deps.Exit
	if exit == nil {
		exit = os.Exit
	}
	return &Responders{
		console: deps.Console,
		store:   deps.Store,
		archive: deps.Archive,
		metrics: deps.Metrics,
		exit:    exit,
		async:   async,
	}
}

func (r *Responders) Exit(ctx context.Context, inv core.Invocation) {
	log.FromCtx(ctx).Debug().Msg("exit requested")
	r.exit(0)
}

func lookupFailed(ctx context.Context, err error, op, collection, id string) {
	log.FromCtx(ctx).Debug().
		Err(err).
		Str("op", op).
		Str("collection", collection).
		Str("id", id).
		Msg("lookup failed")
}
