package focus

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/journal"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Fail struct {
	Reason      string
	Persistence store.Persistence
}

func (n *Fail) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not fail, no persistence")
	}

	reason, ok := journal.ParseReason(n.Reason)
	if !ok {
		return fmt.Errorf("unknown reason %q, want internal, external, or cognitive", n.Reason)
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	// The CLI's confirm gesture already happened (the user typed the reason),
	// so collapse and resolve in one intent.
	a.Collapse()
	if !a.FailSession(reason) {
		return errors.New("no focus session to fail")
	}
	a.Flush()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Chronicle(a.Logs()...)

	return nil
}
