package command

import (
	"context"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

func (r *Responders) Stats(ctx context.Context, inv core.Invocation) {
	rows := statsRows(r.metrics.Stats())

	r.console.Header("SYSTEM STATISTICS")
	r.console.RenderTable(rows)
	r.console.VerticalSpace(1)
	r.console.HorizontalLine()
}
