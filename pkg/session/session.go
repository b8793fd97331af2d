// Package session owns the single active focus/break cycle.
//
// Remaining time is never ticked down; it is recomputed from the stored
// start instant and duration, so a suspended observer resumes with the
// correct value. Expiry does not transition the machine by itself: the
// terminal transition fires when a caller acknowledges it (CompletePomodoro,
// FinishBreak), and ConsumeExpiry hands out that right exactly once per
// state entry so multiple clocks watching the same session cannot double
// apply side effects.
package session

import (
	"time"

	"tableflip.dev/entropy/pkg/task"
)

type Mode string

const (
	ModeIdle  Mode = "idle"
	ModeFocus Mode = "focus"
	ModeBreak Mode = "break"
)

// State is the observable session value broadcast to views.
type State struct {
	Mode      Mode           `json:"mode"`
	TaskID    string         `json:"taskId,omitempty"`
	StartedAt task.Timestamp `json:"startedAt"`
	// DurationSeconds matches the durable row column; the machine converts
	// when doing clock math.
	DurationSeconds int `json:"durationSeconds"`
	// Collapsed marks a focus session the user has abandoned and which now
	// awaits an entropy reason. It is a sub-state of focus, not a mode.
	Collapsed bool `json:"collapsed,omitempty"`
}

type Machine struct {
	state State
	// consumed is the one-shot expiry latch, reset on each state entry.
	consumed bool
}

func NewMachine() *Machine {
	return &Machine{state: State{Mode: ModeIdle}}
}

// Restore rebuilds a machine from a persisted state, e.g. when a second
// process opens the same session.
func Restore(s State) *Machine {
	if s.Mode == "" {
		s.Mode = ModeIdle
	}
	return &Machine{state: s}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Mode() Mode {
	return m.state.Mode
}

func (m *Machine) TaskID() string {
	return m.state.TaskID
}

// Start begins a focus session for the task. Ignored unless idle; the UI is
// expected to reach idle first, this is just the defensive guard.
func (m *Machine) Start(taskID string, duration time.Duration, now time.Time) bool {
	if m.state.Mode != ModeIdle {
		return false
	}
	m.enter(State{
		Mode:            ModeFocus,
		TaskID:          taskID,
		StartedAt:       task.Timestamp{Time: now},
		DurationSeconds: int(duration / time.Second),
	})
	return true
}

// CompletePomodoro acknowledges a focus session and moves to the break.
func (m *Machine) CompletePomodoro(breakDuration time.Duration, now time.Time) bool {
	if m.state.Mode != ModeFocus || m.state.Collapsed {
		return false
	}
	m.enter(State{
		Mode:            ModeBreak,
		StartedAt:       task.Timestamp{Time: now},
		DurationSeconds: int(breakDuration / time.Second),
	})
	return true
}

// Collapse marks the focus session as failed pending a reason. The caller
// only invokes this after the sustained confirm gesture completes.
func (m *Machine) Collapse() bool {
	if m.state.Mode != ModeFocus || m.state.Collapsed {
		return false
	}
	m.state.Collapsed = true
	return true
}

// Fail resolves a collapsed (or still running) focus session to idle. The
// caller records the entropy reason; the machine only clears the session.
func (m *Machine) Fail() (taskID string, ok bool) {
	if m.state.Mode != ModeFocus {
		return "", false
	}
	taskID = m.state.TaskID
	m.enter(State{Mode: ModeIdle})
	return taskID, true
}

// FinishBreak returns the machine to idle. No counters move and no event is
// logged for break completion.
func (m *Machine) FinishBreak() bool {
	if m.state.Mode != ModeBreak {
		return false
	}
	m.enter(State{Mode: ModeIdle})
	return true
}

// Remaining recomputes the time left from the wall clock. Zero when idle or
// already expired.
func (m *Machine) Remaining(now time.Time) time.Duration {
	if m.state.Mode == ModeIdle {
		return 0
	}
	remaining := m.duration() - now.Sub(m.state.StartedAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Expired reports whether the running interval has elapsed. Observing expiry
// does not transition the machine.
func (m *Machine) Expired(now time.Time) bool {
	if m.state.Mode == ModeIdle {
		return false
	}
	return !now.Before(m.state.StartedAt.Add(m.duration()))
}

// ConsumeExpiry returns true exactly once per state entry, and only once the
// interval has elapsed. The observer that wins the latch drives the terminal
// transition; everyone else sees false and stands down.
func (m *Machine) ConsumeExpiry(now time.Time) bool {
	if m.consumed || !m.Expired(now) {
		return false
	}
	m.consumed = true
	return true
}

func (m *Machine) duration() time.Duration {
	return time.Duration(m.state.DurationSeconds) * time.Second
}

func (m *Machine) enter(s State) {
	m.state = s
	m.consumed = false
}
