package app

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/entropy/pkg/journal"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/session"
	"tableflip.dev/entropy/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := New(context.Background(), nil, notify.Discard{})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

func TestAddTaskRecordsCreation(t *testing.T) {
	a := newTestApp(t)

	created := a.AddTask("inbox", "write the report", 3, "")
	if created == nil {
		t.Fatalf("expected a task")
	}

	logs := a.Logs()
	if len(logs) != 1 || logs[0].Type != journal.EventCreation {
		t.Fatalf("expected one creation entry, got %d", len(logs))
	}
	if logs[0].TaskID != created.ID || logs[0].TaskTitle != "write the report" {
		t.Fatalf("creation entry does not reference the task: %+v", logs[0])
	}
}

func TestStartThenCrystallize(t *testing.T) {
	a := newTestApp(t)
	created := a.AddTask("inbox", "write the report", 3, "")

	if !a.StartTask(created.ID) {
		t.Fatalf("expected start to succeed")
	}
	if a.Session().Mode != session.ModeFocus {
		t.Fatalf("expected focus, got %s", a.Session().Mode)
	}
	if a.StartTask(created.ID) {
		t.Fatalf("expected second start to be refused")
	}

	if !a.CompletePomodoro() {
		t.Fatalf("expected crystallize to succeed")
	}
	if a.Session().Mode != session.ModeBreak {
		t.Fatalf("expected break, got %s", a.Session().Mode)
	}
	if a.CompletePomodoro() {
		t.Fatalf("expected second crystallize to be refused")
	}

	got := a.Visible("inbox")[0]
	if got.CompletedPomodoros != 1 || got.FailedPomodoros != 0 {
		t.Fatalf("expected one completed pomodoro, got %+v", got)
	}

	var crystals int
	for _, e := range a.Logs() {
		if e.Type == journal.EventCrystallization {
			crystals++
			if e.DurationSeconds != 25*60 {
				t.Fatalf("expected focus duration on the entry, got %d", e.DurationSeconds)
			}
		}
	}
	if crystals != 1 {
		t.Fatalf("expected exactly one crystallization entry, got %d", crystals)
	}

	if !a.FinishBreak() {
		t.Fatalf("expected break finish to succeed")
	}
	if a.Session().Mode != session.ModeIdle {
		t.Fatalf("expected idle, got %s", a.Session().Mode)
	}
}

func TestFailSessionRecordsEntropy(t *testing.T) {
	a := newTestApp(t)
	created := a.AddTask("inbox", "write the report", 3, "")
	a.StartTask(created.ID)

	if !a.Collapse() {
		t.Fatalf("expected collapse to succeed")
	}
	if a.CompletePomodoro() {
		t.Fatalf("collapsed session crystallized")
	}
	if !a.FailSession(journal.ReasonInternal) {
		t.Fatalf("expected fail to succeed")
	}
	if a.Session().Mode != session.ModeIdle {
		t.Fatalf("expected idle after fail, got %s", a.Session().Mode)
	}

	got := a.Visible("inbox")[0]
	if got.FailedPomodoros != 1 || got.CompletedPomodoros != 0 {
		t.Fatalf("expected one failed pomodoro, got %+v", got)
	}

	logs := a.Logs()
	last := logs[len(logs)-1]
	if last.Type != journal.EventEntropy || last.EntropyReason != journal.ReasonInternal {
		t.Fatalf("expected entropy entry with reason, got %+v", last)
	}
}

func TestStartRefusesProjectsAndCompleted(t *testing.T) {
	a := newTestApp(t)
	p := a.AddProject("inbox", "project")
	done := a.AddTask("inbox", "done", 0, "")
	a.ToggleCompletion(done.ID)

	if a.StartTask(p.ID) {
		t.Fatalf("started a project")
	}
	if a.StartTask(done.ID) {
		t.Fatalf("started a completed task")
	}
	if a.StartTask("nope") {
		t.Fatalf("started an unknown task")
	}
}

func TestCheckExpiryNotifiesOnce(t *testing.T) {
	a := newTestApp(t)
	created := a.AddTask("inbox", "write the report", 1, "")
	a.StartTask(created.ID)

	late := time.Now().Add(26 * time.Minute)
	if a.CheckExpiry(time.Now()) {
		t.Fatalf("expiry fired before the interval elapsed")
	}
	if !a.CheckExpiry(late) {
		t.Fatalf("expected first check after expiry to fire")
	}
	if a.CheckExpiry(late) {
		t.Fatalf("expected second check to stand down")
	}
}

func TestSessionSurvivesReload(t *testing.T) {
	cfg := testConfig{path: t.TempDir()}
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	a, err := New(context.Background(), p, notify.Discard{})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	created := a.AddTask("inbox", "write the report", 3, "")
	if !a.StartTask(created.ID) {
		t.Fatalf("expected start to succeed")
	}
	a.Flush()

	// A second process opening the same store resumes the session.
	b, err := New(context.Background(), p, notify.Discard{})
	if err != nil {
		t.Fatalf("reopen app: %v", err)
	}
	s := b.Session()
	if s.Mode != session.ModeFocus || s.TaskID != created.ID {
		t.Fatalf("expected resumed focus on %q, got %+v", created.ID, s)
	}

	if !b.FailSession(journal.ReasonExternal) {
		t.Fatalf("expected fail to succeed")
	}
	b.Flush()

	c, err := New(context.Background(), p, notify.Discard{})
	if err != nil {
		t.Fatalf("reopen app: %v", err)
	}
	if c.Session().Mode != session.ModeIdle {
		t.Fatalf("expected cleared session after fail, got %+v", c.Session())
	}
	if got := c.Visible("inbox")[0]; got.FailedPomodoros != 1 {
		t.Fatalf("expected failed counter persisted, got %+v", got)
	}
}
