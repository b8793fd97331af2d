package session

import (
	"testing"
	"time"
)

func TestStartOnlyFromIdle(t *testing.T) {
	now := time.Now()
	m := NewMachine()

	if !m.Start("t1", 25*time.Minute, now) {
		t.Fatalf("expected start from idle to succeed")
	}
	if m.Mode() != ModeFocus || m.TaskID() != "t1" {
		t.Fatalf("expected focus on t1, got %s %q", m.Mode(), m.TaskID())
	}
	if m.Start("t2", 25*time.Minute, now) {
		t.Fatalf("expected second start to be refused")
	}
}

func TestCompletePomodoroMovesToBreak(t *testing.T) {
	now := time.Now()
	m := NewMachine()
	m.Start("t1", 25*time.Minute, now)

	if !m.CompletePomodoro(5*time.Minute, now.Add(25*time.Minute)) {
		t.Fatalf("expected crystallize to succeed")
	}
	if m.Mode() != ModeBreak {
		t.Fatalf("expected break, got %s", m.Mode())
	}
	if m.TaskID() != "" {
		t.Fatalf("expected break to carry no task, got %q", m.TaskID())
	}
	if m.CompletePomodoro(5*time.Minute, now) {
		t.Fatalf("expected second crystallize to be refused")
	}
}

func TestCollapseBlocksCrystallize(t *testing.T) {
	now := time.Now()
	m := NewMachine()
	m.Start("t1", 25*time.Minute, now)

	if !m.Collapse() {
		t.Fatalf("expected collapse to succeed")
	}
	if m.CompletePomodoro(5*time.Minute, now) {
		t.Fatalf("collapsed session crystallized")
	}

	id, ok := m.Fail()
	if !ok || id != "t1" {
		t.Fatalf("expected fail to resolve t1, got %q %v", id, ok)
	}
	if m.Mode() != ModeIdle {
		t.Fatalf("expected idle after fail, got %s", m.Mode())
	}
}

func TestFailRequiresFocus(t *testing.T) {
	m := NewMachine()
	if _, ok := m.Fail(); ok {
		t.Fatalf("expected fail from idle to be refused")
	}
	m.Start("t1", 25*time.Minute, time.Now())
	m.CompletePomodoro(5*time.Minute, time.Now())
	if _, ok := m.Fail(); ok {
		t.Fatalf("expected fail during break to be refused")
	}
}

func TestRemainingRecomputedFromClock(t *testing.T) {
	now := time.Now()
	m := NewMachine()
	m.Start("t1", 25*time.Minute, now)

	if got := m.Remaining(now.Add(10 * time.Minute)); got != 15*time.Minute {
		t.Fatalf("expected 15m remaining, got %v", got)
	}
	// A suspended observer waking late sees zero, not a negative value.
	if got := m.Remaining(now.Add(40 * time.Minute)); got != 0 {
		t.Fatalf("expected 0 remaining after expiry, got %v", got)
	}
	if m.Mode() != ModeFocus {
		t.Fatalf("expiry must not transition the machine")
	}
}

func TestConsumeExpiryLatchesOncePerEntry(t *testing.T) {
	now := time.Now()
	m := NewMachine()
	m.Start("t1", 25*time.Minute, now)

	late := now.Add(26 * time.Minute)
	if m.ConsumeExpiry(now.Add(time.Minute)) {
		t.Fatalf("expiry consumed before the interval elapsed")
	}
	if !m.ConsumeExpiry(late) {
		t.Fatalf("expected first observer to win the latch")
	}
	if m.ConsumeExpiry(late) {
		t.Fatalf("expected second observer to lose the latch")
	}

	// Entering the break resets the latch for the new interval.
	m.CompletePomodoro(5*time.Minute, late)
	if !m.ConsumeExpiry(late.Add(6 * time.Minute)) {
		t.Fatalf("expected break expiry to latch once")
	}
}

func TestRestore(t *testing.T) {
	now := time.Now()
	m := NewMachine()
	m.Start("t1", 25*time.Minute, now)

	r := Restore(m.State())
	if r.Mode() != ModeFocus || r.TaskID() != "t1" {
		t.Fatalf("expected restored focus on t1, got %s %q", r.Mode(), r.TaskID())
	}
	if got := r.Remaining(now.Add(5 * time.Minute)); got != 20*time.Minute {
		t.Fatalf("expected 20m remaining after restore, got %v", got)
	}

	empty := Restore(State{})
	if empty.Mode() != ModeIdle {
		t.Fatalf("expected empty state to restore to idle, got %s", empty.Mode())
	}
}
