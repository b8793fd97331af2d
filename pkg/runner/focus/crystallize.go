package focus

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Crystallize struct {
	Persistence store.Persistence
}

func (n *Crystallize) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not crystallize, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	if !a.CompletePomodoro() {
		return errors.New("no focus session to crystallize")
	}
	a.Flush()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Session(a.Session(), a.Remaining(time.Now()), "")

	return nil
}
