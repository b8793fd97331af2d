// Package focus provides the runners for the session lifecycle: starting a
// focus interval, crystallizing it, failing it with a reason, finishing the
// break, and observing the countdown.
package focus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Start struct {
	ID          string
	Persistence store.Persistence
}

func (n *Start) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not start, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	if !a.StartTask(n.ID) {
		return fmt.Errorf("can not start %q: unknown task, a project, or a session is already active", n.ID)
	}
	a.Flush()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Session(a.Session(), a.Remaining(time.Now()), taskTitle(a, a.Session().TaskID))

	return nil
}

func taskTitle(a *app.App, id string) string {
	for _, t := range a.Tasks() {
		if t.ID == id {
			return t.Title
		}
	}
	return id
}
