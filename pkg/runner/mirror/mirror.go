// Package mirror provides the retrospective runner: the chronicle of logged
// events plus daily terminal-session stats.
package mirror

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/journal"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Mirror struct {
	Days        int
	Persistence store.Persistence
}

func (n *Mirror) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not mirror, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	days := n.Days
	if days <= 0 {
		days = 7
	}

	entries := a.Logs()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("mirror")
	pp.Stats(journal.DailyStats(entries, days, time.Now()), journal.Efficiency(entries))
	pp.Chronicle(entries...)

	return nil
}
