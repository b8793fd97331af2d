package app

import (
	"tableflip.dev/entropy/pkg/journal"
	"tableflip.dev/entropy/pkg/session"
	"tableflip.dev/entropy/pkg/settings"
	"tableflip.dev/entropy/pkg/task"
)

// Msg is a change broadcast. Views switch on the concrete type.
type Msg interface{}

// TasksChangedMsg carries every task touched by one intent, so observers can
// persist or re-render the batch together.
type TasksChangedMsg struct {
	Tasks []*task.Task
}

// SessionChangedMsg broadcasts the session state after a transition.
// Observers derive remaining time from the state themselves.
type SessionChangedMsg struct {
	State session.State
}

// LogAppendedMsg announces a new journal entry.
type LogAppendedMsg struct {
	Entry *journal.LogEntry
}

// SettingsChangedMsg announces updated preferences.
type SettingsChangedMsg struct {
	Settings settings.Settings
}
