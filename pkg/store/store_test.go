package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/entropy/pkg/journal"
	"tableflip.dev/entropy/pkg/session"
	"tableflip.dev/entropy/pkg/settings"
	"tableflip.dev/entropy/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestTaskRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	first := task.New("inbox", "write the report", 3)
	first.SortOrder = 1100
	second := task.New("inbox", "review the design", 1)
	second.SortOrder = 1000

	if err := p.SaveTask(first); err != nil {
		t.Fatalf("save task: %v", err)
	}
	if err := p.SaveTask(second); err != nil {
		t.Fatalf("save task: %v", err)
	}

	got := p.LoadTasks(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Fatalf("expected sortOrder read order")
	}
	if got[1].Title != "write the report" || got[1].Estimate != 3 {
		t.Fatalf("task fields lost: %+v", got[1])
	}
}

func TestLogRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	j := journal.New()
	older := j.Record(journal.EventCreation, "t1", "one")
	older.Timestamp = task.Timestamp{Time: time.Now().Add(-time.Hour)}
	newer := j.RecordEntropy("t1", "one", journal.ReasonCognitive, 1500)

	if err := p.AppendLog(newer); err != nil {
		t.Fatalf("append log: %v", err)
	}
	if err := p.AppendLog(older); err != nil {
		t.Fatalf("append log: %v", err)
	}

	got := p.LoadLogs(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ID != older.ID {
		t.Fatalf("expected timestamp read order")
	}
	if got[1].EntropyReason != journal.ReasonCognitive || got[1].DurationSeconds != 1500 {
		t.Fatalf("entropy fields lost: %+v", got[1])
	}
}

func TestEnsureDefaultLists(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	if err := p.EnsureDefaultLists(); err != nil {
		t.Fatalf("ensure default lists: %v", err)
	}
	got := p.LoadLists(ctx)
	if len(got) != len(task.DefaultLists()) {
		t.Fatalf("expected %d lists, got %d", len(task.DefaultLists()), len(got))
	}
	if got[0].ID != task.ListInbox {
		t.Fatalf("expected inbox first, got %q", got[0].ID)
	}
	if got[len(got)-1].Type != task.ListTypeDone {
		t.Fatalf("expected done last, got %q", got[len(got)-1].Type)
	}

	// Idempotent: a second call must not duplicate.
	if err := p.EnsureDefaultLists(); err != nil {
		t.Fatalf("ensure default lists again: %v", err)
	}
	if again := p.LoadLists(ctx); len(again) != len(got) {
		t.Fatalf("expected %d lists after second ensure, got %d", len(got), len(again))
	}
}

func TestSessionRoundTrip(t *testing.T) {
	p := load(t)

	if _, ok := p.LoadSession(); ok {
		t.Fatalf("expected no session in a fresh store")
	}

	s := session.State{
		Mode:            session.ModeFocus,
		TaskID:          "t1",
		StartedAt:       task.Timestamp{Time: time.Now()},
		DurationSeconds: 1500,
	}
	if err := p.SaveSession(s); err != nil {
		t.Fatalf("save session: %v", err)
	}

	got, ok := p.LoadSession()
	if !ok {
		t.Fatalf("expected a session")
	}
	if got.Mode != session.ModeFocus || got.TaskID != "t1" || got.DurationSeconds != 1500 {
		t.Fatalf("session fields lost: %+v", got)
	}

	if err := p.ClearSession(); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	if _, ok := p.LoadSession(); ok {
		t.Fatalf("expected session cleared")
	}
	// Clearing an already empty session is not an error.
	if err := p.ClearSession(); err != nil {
		t.Fatalf("clear empty session: %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	p := load(t)

	if got := p.LoadSettings(); got != settings.Default() {
		t.Fatalf("expected defaults from a fresh store, got %+v", got)
	}

	want := settings.Default()
	want.PomodoroDuration = 45
	want.AutoStart = true
	if err := p.SaveSettings(want); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if got := p.LoadSettings(); got != want {
		t.Fatalf("settings lost: %+v != %+v", got, want)
	}
}
