// Package move provides the runner for drag-style reordering: the source
// task takes the destination task's slot within their shared sibling bucket.
package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Move struct {
	ListID string
	SrcID  string
	DstID  string

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	changed := a.Move(n.ListID, n.SrcID, n.DstID)
	a.Flush()
	if len(changed) == 0 {
		return fmt.Errorf("can not move %q to %q: not siblings in %q", n.SrcID, n.DstID, n.ListID)
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(n.ListID)
	pp.Tasks(a.Visible(n.ListID)...)

	return nil
}
