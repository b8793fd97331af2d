package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Edit struct {
	ID    string
	Title string
	// EstimateSet distinguishes an explicit zero estimate from the flag not
	// being given at all.
	Estimate    int
	EstimateSet bool

	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	// Flags not given keep their current value.
	title, estimate := n.Title, n.Estimate
	for _, existing := range a.Tasks() {
		if existing.ID != n.ID {
			continue
		}
		if title == "" {
			title = existing.Title
		}
		if !n.EstimateSet {
			estimate = existing.Estimate
		}
		break
	}

	t := a.UpdateTask(n.ID, title, estimate)
	a.Flush()
	if t == nil {
		return fmt.Errorf("no task with id %q", n.ID)
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(t.ListID)
	pp.Tasks(a.Visible(t.ListID)...)

	return nil
}
