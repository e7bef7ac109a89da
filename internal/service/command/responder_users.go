package command

import (
	"context"

	"github.com/pranavkumar389/downtime-monitor/internal/core"
)

const credentialField = "hashedPassword"

// ListUsers prints one line per stored user. Each record is read on its own
// goroutine, so lines arrive in completion order, not id order.
func (r *Responders) ListUsers(ctx context.Context, inv core.Invocation) {
	r.async.Go(ctx, func() {
		ids, err := r.store.List(ctx, core.CollectionUsers)
		if err != nil {
			lookupFailed(ctx, err, "list", core.CollectionUsers, "")
			return
		}
		if len(ids) == 0 {
			return
		}

		r.console.VerticalSpace(1)
		for _, id := range ids {
			id := id
			r.async.Go(ctx, func() {
				rec, err := r.store.Read(ctx, core.CollectionUsers, id)
				if err != nil || rec == nil {
					lookupFailed(ctx, err, "read", core.CollectionUsers, id)
					return
				}
				r.console.Println(formatUserLine(core.UserFromRecord(rec)))
				r.console.VerticalSpace(1)
			})
		}
	})
}

func (r *Responders) MoreUserInfo(ctx context.Context, inv core.Invocation) {
	id, ok := Argument(inv)
	if !ok {
		return
	}

	r.async.Go(ctx, func() {
		rec, err := r.store.Read(ctx, core.CollectionUsers, id)
		if err != nil || rec == nil {
			lookupFailed(ctx, err, "read", core.CollectionUsers, id)
			return
		}
		delete(rec, credentialField)

		r.console.VerticalSpace(1)
		r.console.Dump(rec)
		r.console.VerticalSpace(1)
	})
}
