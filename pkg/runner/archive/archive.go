// Package archive provides the runner for soft-deleting tasks. Archiving a
// project takes its direct subtasks with it.
package archive

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Archive struct {
	ID          string
	Persistence store.Persistence
}

func (n *Archive) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not archive, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	changed := a.Archive(n.ID)
	a.Flush()
	if len(changed) == 0 {
		return fmt.Errorf("no task with id %q", n.ID)
	}

	listID := changed[0].ListID
	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount(listID, len(a.Visible(listID)))
	pp.Tasks(a.Visible(listID)...)

	return nil
}
