package focus

import (
	"context"
	"errors"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type FinishBreak struct {
	Persistence store.Persistence
}

func (n *FinishBreak) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not finish break, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	if !a.FinishBreak() {
		return errors.New("no break to finish")
	}
	a.Flush()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Session(a.Session(), 0, "")

	return nil
}
