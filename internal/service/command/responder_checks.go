package command

import (
	"context"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

// ListChecks prints one line per check, optionally filtered with --up or
// --down. Like ListUsers the per-check reads are concurrent and unordered.
func (r *Responders) ListChecks(ctx context.Context, inv core.Invocation) {
	filtered := HasFlag(inv, core.StateUp) || HasFlag(inv, core.StateDown)

	r.async.Go(ctx, func() {
		ids, err := r.store.List(ctx, core.CollectionChecks)
		if err != nil {
			lookupFailed(ctx, err, "list", core.CollectionChecks, "")
			return
		}
		if len(ids) == 0 {
			return
		}

		r.console.VerticalSpace(1)
		for _, id := range ids {
			id := id
			r.async.Go(ctx, func() {
				rec, err := r.store.Read(ctx, core.CollectionChecks, id)
				if err != nil || rec == nil {
					lookupFailed(ctx, err, "read", core.CollectionChecks, id)
					return
				}

				check := core.CheckFromRecord(rec)
				if filtered && !HasFlag(inv, check.FilterState()) {
					return
				}
				r.console.Println(formatCheckLine(check))
				r.console.VerticalSpace(1)
			})
		}
	})
}

func (r *Responders) MoreCheckInfo(ctx context.Context, inv core.Invocation) {
	id, ok := Argument(inv)
	if !ok {
		return
	}

	r.async.Go(ctx, func() {
		rec, err := r.store.Read(ctx, core.CollectionChecks, id)
		if err != nil || rec == nil {
			lookupFailed(ctx, err, "read", core.CollectionChecks, id)
			return
		}

		r.console.VerticalSpace(1)
		r.console.Dump(rec)
		r.console.VerticalSpace(1)
	})
}
