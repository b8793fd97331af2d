// Package app is the intent-handling entry point. It owns the board, the
// session machine, and the journal; every view dispatches intents here and
// subscribes to change broadcasts instead of polling ambient state.
//
// Mutations are synchronous and immediately visible to observers. The
// durable store is a fire-and-forget mirror: a failed write is logged to
// stderr and never rolls back or blocks in-memory state.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/entropy/pkg/board"
	"tableflip.dev/entropy/pkg/journal"
	"tableflip.dev/entropy/pkg/notify"
	"tableflip.dev/entropy/pkg/session"
	"tableflip.dev/entropy/pkg/settings"
	"tableflip.dev/entropy/pkg/store"
	"tableflip.dev/entropy/pkg/task"
)

type App struct {
	mu sync.RWMutex

	board    *board.Board
	machine  *session.Machine
	journal  *journal.Journal
	lists    []task.List
	settings settings.Settings

	persistence store.Persistence
	notifier    notify.Notifier

	events chan Msg
	// mirror tracks outstanding best-effort writes so a short-lived process
	// can flush before exit.
	mirror sync.WaitGroup
}

// New builds an app from the durable store's current contents. A nil
// persistence yields a purely in-memory app.
func New(ctx context.Context, p store.Persistence, n notify.Notifier) (*App, error) {
	a := &App{
		board:       board.New(),
		machine:     session.NewMachine(),
		journal:     journal.New(),
		lists:       task.DefaultLists(),
		settings:    settings.Default(),
		persistence: p,
		notifier:    n,
		events:      make(chan Msg, 64),
	}
	if p == nil {
		return a, nil
	}

	if err := p.EnsureDefaultLists(); err != nil {
		return nil, err
	}
	a.lists = p.LoadLists(ctx)
	a.board = board.Load(p.LoadTasks(ctx))
	a.journal = journal.Load(p.LoadLogs(ctx))
	a.settings = p.LoadSettings()
	if s, ok := p.LoadSession(); ok {
		a.machine = session.Restore(s)
	}
	return a, nil
}

// Events exposes the broadcast channel views subscribe to. Events are
// dropped rather than blocking a mutator when no one is draining.
func (a *App) Events() <-chan Msg {
	return a.events
}

// Flush waits for outstanding mirror writes.
func (a *App) Flush() {
	a.mirror.Wait()
}

func (a *App) Lists() []task.List {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]task.List, len(a.lists))
	copy(out, a.lists)
	return out
}

func (a *App) Settings() settings.Settings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings
}

func (a *App) UpdateSettings(s settings.Settings) {
	a.mu.Lock()
	a.settings = s
	a.mu.Unlock()
	a.mirrorSettings(s)
	a.emit(SettingsChangedMsg{Settings: s})
}

// Tasks returns the full collection, archived included.
func (a *App) Tasks() []*task.Task {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.board.All()
}

// Visible returns the render projection for one list.
func (a *App) Visible(listID string) []*task.Task {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.board.Visible(listID)
}

func (a *App) Logs() []*journal.LogEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.journal.Entries()
}

func (a *App) Session() session.State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.machine.State()
}

// Remaining recomputes the active countdown from the wall clock.
func (a *App) Remaining(now time.Time) time.Duration {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.machine.Remaining(now)
}

// AddTask creates a task and records its creation event.
func (a *App) AddTask(listID, title string, estimate int, parentID string) *task.Task {
	a.mu.Lock()
	t := a.board.AddTask(listID, title, estimate, parentID)
	e := a.journal.Record(journal.EventCreation, t.ID, t.Title)
	a.mu.Unlock()

	a.mirrorTasks(t)
	a.mirrorLog(e)
	a.emit(TasksChangedMsg{Tasks: []*task.Task{t}})
	return t
}

// AddProject creates a container task and records its creation event.
func (a *App) AddProject(listID, title string) *task.Task {
	a.mu.Lock()
	t := a.board.AddProject(listID, title)
	e := a.journal.Record(journal.EventCreation, t.ID, t.Title)
	a.mu.Unlock()

	a.mirrorTasks(t)
	a.mirrorLog(e)
	a.emit(TasksChangedMsg{Tasks: []*task.Task{t}})
	return t
}

// ToggleCompletion flips a task and runs the cascade. Unknown ids and
// attempts to complete a project directly are no-ops.
func (a *App) ToggleCompletion(id string) []*task.Task {
	a.mu.Lock()
	changed := a.board.ToggleCompletion(id)
	a.mu.Unlock()
	if len(changed) == 0 {
		a.warn("toggle: task %q not toggled", id)
		return nil
	}

	a.mirrorTasks(changed...)
	a.emit(TasksChangedMsg{Tasks: changed})
	return changed
}

// UpdateTask replaces title and estimate. Unknown id is a no-op.
func (a *App) UpdateTask(id, title string, estimate int) *task.Task {
	a.mu.Lock()
	t := a.board.UpdateTask(id, title, estimate)
	a.mu.Unlock()
	if t == nil {
		a.warn("update: unknown task %q", id)
		return nil
	}

	a.mirrorTasks(t)
	a.emit(TasksChangedMsg{Tasks: []*task.Task{t}})
	return t
}

// Archive soft-deletes a task and, for projects, its direct subtasks.
func (a *App) Archive(id string) []*task.Task {
	a.mu.Lock()
	changed := a.board.Archive(id)
	a.mu.Unlock()
	if len(changed) == 0 {
		a.warn("archive: unknown task %q", id)
		return nil
	}

	a.mirrorTasks(changed...)
	a.emit(TasksChangedMsg{Tasks: changed})
	return changed
}

// Move reorders srcID to dstID's slot within their shared sibling bucket.
// Cross-bucket drags are rejected as a no-op.
func (a *App) Move(listID, srcID, dstID string) []*task.Task {
	a.mu.Lock()
	changed := a.board.Move(listID, srcID, dstID)
	a.mu.Unlock()
	if len(changed) == 0 {
		a.warn("move: %q and %q do not share a bucket in %q", srcID, dstID, listID)
		return nil
	}

	a.mirrorTasks(changed...)
	a.emit(TasksChangedMsg{Tasks: changed})
	return changed
}

// StartTask begins a focus session for an actionable task. Projects cannot
// be started; neither can anything while a session is running.
func (a *App) StartTask(id string) bool {
	now := time.Now()

	a.mu.Lock()
	t := a.board.Get(id)
	if t == nil || t.IsProject || !t.Active() {
		a.mu.Unlock()
		a.warn("start: task %q is not startable", id)
		return false
	}
	if !a.machine.Start(t.ID, a.settings.Focus(), now) {
		a.mu.Unlock()
		a.warn("start: session already active")
		return false
	}
	e := a.journal.Record(journal.EventStart, t.ID, t.Title)
	state := a.machine.State()
	a.mu.Unlock()

	a.mirrorLog(e)
	a.mirrorSession(state)
	a.emit(SessionChangedMsg{State: state})
	a.emit(LogAppendedMsg{Entry: e})
	return true
}

// CompletePomodoro acknowledges the focus session: the task's counter moves,
// a crystallization event is recorded, and the break starts. Multiple clock
// observers race through ConsumeExpiry first; the machine also leaves focus
// on the first call, so a second call cannot re-apply the side effects.
func (a *App) CompletePomodoro() bool {
	now := time.Now()

	a.mu.Lock()
	taskID := a.machine.TaskID()
	focusSeconds := a.machine.State().DurationSeconds
	if !a.machine.CompletePomodoro(a.settings.Break(), now) {
		a.mu.Unlock()
		a.warn("crystallize: no focus session active")
		return false
	}
	t := a.board.CompletePomodoro(taskID)
	var e *journal.LogEntry
	if t != nil {
		e = a.journal.RecordCrystallization(t.ID, t.Title, focusSeconds)
	}
	state := a.machine.State()
	a.mu.Unlock()

	if t != nil {
		a.mirrorTasks(t)
		a.mirrorLog(e)
		a.emit(TasksChangedMsg{Tasks: []*task.Task{t}})
		a.emit(LogAppendedMsg{Entry: e})
	}
	a.mirrorSession(state)
	a.emit(SessionChangedMsg{State: state})
	return true
}

// Collapse marks the running focus session as failed pending a reason. The
// caller invokes it only after the sustained confirm gesture completes.
func (a *App) Collapse() bool {
	a.mu.Lock()
	ok := a.machine.Collapse()
	state := a.machine.State()
	a.mu.Unlock()
	if !ok {
		return false
	}
	a.mirrorSession(state)
	a.emit(SessionChangedMsg{State: state})
	return true
}

// FailSession resolves the focus session as entropy with the given reason
// and returns the machine to idle.
func (a *App) FailSession(reason journal.EntropyReason) bool {
	a.mu.Lock()
	focusSeconds := a.machine.State().DurationSeconds
	taskID, ok := a.machine.Fail()
	if !ok {
		a.mu.Unlock()
		a.warn("fail: no focus session active")
		return false
	}
	t := a.board.FailPomodoro(taskID)
	var e *journal.LogEntry
	if t != nil {
		e = a.journal.RecordEntropy(t.ID, t.Title, reason, focusSeconds)
	}
	state := a.machine.State()
	a.mu.Unlock()

	if t != nil {
		a.mirrorTasks(t)
		a.mirrorLog(e)
		a.emit(TasksChangedMsg{Tasks: []*task.Task{t}})
		a.emit(LogAppendedMsg{Entry: e})
	}
	a.clearSessionMirror()
	a.emit(SessionChangedMsg{State: state})
	return true
}

// FinishBreak returns the machine to idle. No counters move, no event is
// logged.
func (a *App) FinishBreak() bool {
	a.mu.Lock()
	ok := a.machine.FinishBreak()
	state := a.machine.State()
	a.mu.Unlock()
	if !ok {
		a.warn("break: no break active")
		return false
	}
	a.clearSessionMirror()
	a.emit(SessionChangedMsg{State: state})
	return true
}

// CheckExpiry is called by clock observers. The first observer to see the
// interval elapse wins the one-shot latch and triggers the notification;
// later calls (or other windows) get false and do nothing.
func (a *App) CheckExpiry(now time.Time) bool {
	a.mu.Lock()
	mode := a.machine.Mode()
	won := a.machine.ConsumeExpiry(now)
	a.mu.Unlock()
	if !won {
		return false
	}

	if a.notifier != nil {
		switch mode {
		case session.ModeFocus:
			a.notifier.Notify(notify.Notification{
				Title: "Focus complete",
				Body:  "The interval elapsed. Crystallize it to start your break.",
				Kind:  notify.KindFocusComplete,
			})
		case session.ModeBreak:
			a.notifier.Notify(notify.Notification{
				Title: "Break complete",
				Body:  "Ready for the next task.",
				Kind:  notify.KindBreakComplete,
			})
		}
	}
	return true
}

func (a *App) emit(m Msg) {
	select {
	case a.events <- m:
	default:
		// No one draining; drop. Views refresh on the next snapshot.
	}
}

func (a *App) warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "app: "+format+"\n", args...)
}

func (a *App) mirrorTasks(tasks ...*task.Task) {
	if a.persistence == nil {
		return
	}
	snapshots := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t != nil {
			snapshots = append(snapshots, t.Clone())
		}
	}
	a.mirror.Add(1)
	go func() {
		defer a.mirror.Done()
		for _, t := range snapshots {
			if err := a.persistence.SaveTask(t); err != nil {
				fmt.Fprintf(os.Stderr, "app: mirror task %s: %v\n", t.ID, err)
			}
		}
	}()
}

func (a *App) mirrorLog(e *journal.LogEntry) {
	if a.persistence == nil || e == nil {
		return
	}
	snapshot := *e
	a.mirror.Add(1)
	go func() {
		defer a.mirror.Done()
		if err := a.persistence.AppendLog(&snapshot); err != nil {
			fmt.Fprintf(os.Stderr, "app: mirror log %s: %v\n", snapshot.ID, err)
		}
	}()
}

func (a *App) mirrorSession(s session.State) {
	if a.persistence == nil {
		return
	}
	a.mirror.Add(1)
	go func() {
		defer a.mirror.Done()
		if err := a.persistence.SaveSession(s); err != nil {
			fmt.Fprintf(os.Stderr, "app: mirror session: %v\n", err)
		}
	}()
}

func (a *App) clearSessionMirror() {
	if a.persistence == nil {
		return
	}
	a.mirror.Add(1)
	go func() {
		defer a.mirror.Done()
		if err := a.persistence.ClearSession(); err != nil {
			fmt.Fprintf(os.Stderr, "app: clear session: %v\n", err)
		}
	}()
}

func (a *App) mirrorSettings(s settings.Settings) {
	if a.persistence == nil {
		return
	}
	a.mirror.Add(1)
	go func() {
		defer a.mirror.Done()
		if err := a.persistence.SaveSettings(s); err != nil {
			fmt.Fprintf(os.Stderr, "app: mirror settings: %v\n", err)
		}
	}()
}
