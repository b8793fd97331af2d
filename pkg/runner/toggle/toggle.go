// Package toggle provides the runner for flipping task completion, which
// also runs the parent completion cascade.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Toggle struct {
	ID          string
	Persistence store.Persistence
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not toggle, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	changed := a.ToggleCompletion(n.ID)
	a.Flush()
	if len(changed) == 0 {
		return fmt.Errorf("can not toggle %q: unknown task, or a project that only completes through its subtasks", n.ID)
	}

	listID := changed[0].ListID
	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(listID)
	pp.Tasks(a.Visible(listID)...)

	return nil
}
