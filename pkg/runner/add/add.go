package add

import (
	"context"
	"errors"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/printers"
	"tableflip.dev/entropy/pkg/store"
)

type Add struct {
	ListID   string
	Title    string
	Estimate int
	ParentID string
	Project  bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	a, err := app.New(ctx, n.Persistence, notify.Stderr{})
	if err != nil {
		return err
	}

	var listID string
	if n.Project {
		t := a.AddProject(n.ListID, n.Title)
		listID = t.ListID
	} else {
		t := a.AddTask(n.ListID, n.Title, n.Estimate, n.ParentID)
		listID = t.ListID
	}
	a.Flush()

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(listID)
	pp.Tasks(a.Visible(listID)...)

	return nil
}
