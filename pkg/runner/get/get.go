package get

import (
	"context"
	"errors"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
	"tableflip.dev/entropy/pkg/task"
)

type Get struct {
	ShowID bool
	ListID string
	All    bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	if n.All {
		for _, l := range a.Lists() {
			if l.Type == task.ListTypeTrash {
				continue
			}
			visible := a.Visible(l.ID)
			pp.TitleWithCount(l.Name, len(visible))
			pp.Tasks(visible...)
		}
		return nil
	}

	visible := a.Visible(n.ListID)
	pp.TitleWithCount(n.ListID, len(visible))
	pp.Tasks(visible...)

	return nil
}
