package focus

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/session"
	"tableflip.dev/entropy/pkg/store"
)

// Status prints the current session. With Watch it keeps observing: the
// countdown is recomputed from the stored start instant every tick, and the
// store watch picks up transitions made by another process (the original's
// mini window case). The expiry notification fires through the app's
// one-shot latch, so two status watchers never notify twice for the same
// interval.
type Status struct {
	Watch       bool
	Persistence store.Persistence
}

func (n *Status) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get status, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	n.print(&pp, a)

	if !n.Watch {
		return nil
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	tick := time.NewTicker(time.Second)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-tick.C:
			a.CheckExpiry(now)
			n.print(&pp, a)
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			if evt.Type != store.EventSessionChanged && evt.Type != store.EventInvalidated {
				continue
			}
			// Rebuild only when the stored session actually differs; a fresh
			// app has an unconsumed expiry latch, so rebuilding on unrelated
			// changes would re-notify for an interval already acknowledged.
			stored, _ := n.Persistence.LoadSession()
			if sameSession(stored, a.Session()) {
				continue
			}
			a, err = app.New(ctx, n.Persistence, notify.Stderr{})
			if err != nil {
				return err
			}
			n.print(&pp, a)
		}
	}
}

// sameSession reports whether the stored record describes the interval the
// app is already tracking. The stored zero value and a restored idle state
// are the same session. Timestamps compare at second precision, the stored
// codec's resolution.
func sameSession(stored, current session.State) bool {
	if stored.Mode == "" {
		stored.Mode = session.ModeIdle
	}
	return stored.Mode == current.Mode &&
		stored.TaskID == current.TaskID &&
		stored.Collapsed == current.Collapsed &&
		stored.DurationSeconds == current.DurationSeconds &&
		stored.StartedAt.Truncate(time.Second).Equal(current.StartedAt.Truncate(time.Second))
}

func (n *Status) print(pp *printers.PrettyPrint, a *app.App) {
	s := a.Session()
	title := ""
	if s.Mode == session.ModeFocus {
		title = taskTitle(a, s.TaskID)
	}
	pp.Session(s, a.Remaining(time.Now()), title)
}
