package edit

import (
	"context"
	"testing"

	"tableflip.dev/entropy/pkg/app"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func seedTask(t *testing.T) (store.Persistence, string) {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	a, err := app.New(context.Background(), p, notify.Discard{})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	created := a.AddTask("inbox", "write the report", 3, "")
	a.Flush()
	return p, created.ID
}

func TestEditResetsEstimateToZero(t *testing.T) {
	p, id := seedTask(t)

	e := Edit{ID: id, Estimate: 0, EstimateSet: true, Persistence: p}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("edit: %v", err)
	}

	a, err := app.New(context.Background(), p, notify.Discard{})
	if err != nil {
		t.Fatalf("reopen app: %v", err)
	}
	got := a.Visible("inbox")[0]
	if got.Estimate != 0 {
		t.Fatalf("expected estimate reset to 0, got %d", got.Estimate)
	}
	if got.Title != "write the report" {
		t.Fatalf("title changed by an estimate-only edit: %q", got.Title)
	}
}

func TestEditKeepsEstimateWhenFlagUnset(t *testing.T) {
	p, id := seedTask(t)

	e := Edit{ID: id, Title: "review the design", Persistence: p}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("edit: %v", err)
	}

	a, err := app.New(context.Background(), p, notify.Discard{})
	if err != nil {
		t.Fatalf("reopen app: %v", err)
	}
	got := a.Visible("inbox")[0]
	if got.Title != "review the design" {
		t.Fatalf("expected new title, got %q", got.Title)
	}
	if got.Estimate != 3 {
		t.Fatalf("expected estimate kept at 3, got %d", got.Estimate)
	}
}
