package command

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
	"github.com/pranavkumar389/downtime-monitor/pkg/log"
)

// Archive names produced by log rotation carry an id-timestamp separator.
const logNameSeparator = "-"

func (r *Responders) ListLogs(ctx context.Context, inv core.Invocation) {
	r.async.Go(ctx, func() {
		names, err := r.archive.List(ctx, true)
		if err != nil {
			lookupFailed(ctx, err, "list", "logs", "")
			return
		}
		if len(names) == 0 {
			return
		}

		r.console.VerticalSpace(1)
		for _, name := range names {
			if strings.Contains(name, logNameSeparator) {
				r.console.Println(name)
				r.console.VerticalSpace(1)
			}
		}
	})
}

func (r *Responders) MoreLogInfo(ctx context.Context, inv core.Invocation) {
	name, ok := Argument(inv)
	if !ok {
		return
	}

	r.console.VerticalSpace(1)
	r.async.Go(ctx, func() {
		data, err := r.archive.Decompress(ctx, name)
		if err != nil || data == "" {
			lookupFailed(ctx, err, "decompress", "logs", name)
			return
		}

		for _, rec := range parseLogLines(ctx, data) {
			r.console.Dump(rec)
			r.console.VerticalSpace(1)
		}
	})
}

// parseLogLines decodes newline-delimited JSON objects, skipping lines that
// do not parse or decode to an empty object.
func parseLogLines(ctx context.Context, data string) []core.Record {
	var records []core.Record
	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var rec core.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			log.FromCtx(ctx).Debug().Err(err).Int("line", i+1).Msg("skipping unparsable log line")
			continue
		}
		if len(rec) == 0 {
			continue
		}
		records = append(records, rec)
	}
	return records
}
