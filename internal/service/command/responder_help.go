package command

import (
	"context"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/internal/service/ui"
)

func (r *Responders) Help(ctx context.Context, inv core.Invocation) {
	var specs []core.CommandSpec
	if r.specs != nil {
		specs = r.specs()
	}

	rows := make([]ui.Row, 0, len(specs))
	for _, spec := range specs {
		rows = append(rows, ui.Row{Key: spec.Usage, Value: spec.Description})
	}

	r.console.Header("CLI MANUAL")
	r.console.RenderTable(rows)
	r.console.VerticalSpace(1)
	r.console.HorizontalLine()
}
