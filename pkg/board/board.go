// Package board owns the in-memory task collection. It is the authoritative
// state; durable storage is a mirror written by the caller after each
// mutation. Mutators return every task they touched so callers can persist
// them in one batch. Operating on an unknown id is a no-op, never an error,
// because intents may race harmlessly against a just-updated view.
package board

import (
	"tableflip.dev/entropy/pkg/task"
)

type Board struct {
	tasks []*task.Task
	index map[string]*task.Task
}

func New() *Board {
	return &Board{
		tasks: make([]*task.Task, 0),
		index: make(map[string]*task.Task),
	}
}

// Load seeds a board from previously persisted tasks.
func Load(tasks []*task.Task) *Board {
	b := New()
	for _, t := range tasks {
		if t == nil || t.ID == "" {
			continue
		}
		b.tasks = append(b.tasks, t)
		b.index[t.ID] = t
	}
	return b
}

func (b *Board) Get(id string) *task.Task {
	return b.index[id]
}

// All returns the full collection, archived tasks included.
func (b *Board) All() []*task.Task {
	all := make([]*task.Task, len(b.tasks))
	copy(all, b.tasks)
	return all
}

// AddTask creates an actionable task at the end of its sibling bucket. Tasks
// added while the done view is selected land in the inbox, since the done
// list owns nothing. A parent id that does not resolve to a project is
// dropped rather than stored dangling.
func (b *Board) AddTask(listID, title string, estimate int, parentID string) *task.Task {
	if listID == task.ListDone {
		listID = task.ListInbox
	}
	if parentID != "" {
		parent := b.index[parentID]
		if parent == nil || !parent.IsProject {
			parentID = ""
		} else {
			// Subtasks always live in their project's list.
			listID = parent.ListID
		}
	}

	t := task.New(listID, title, estimate)
	t.ParentID = parentID
	t.SortOrder = b.nextSortOrder(listID, parentID)

	b.tasks = append(b.tasks, t)
	b.index[t.ID] = t
	return t
}

// AddProject creates a container task. Its estimate stays zero and its
// completion is only ever derived from its subtasks.
func (b *Board) AddProject(listID, title string) *task.Task {
	if listID == task.ListDone {
		listID = task.ListInbox
	}

	t := task.NewProject(listID, title)
	t.SortOrder = b.nextSortOrder(listID, "")

	b.tasks = append(b.tasks, t)
	b.index[t.ID] = t
	return t
}

// UpdateTask replaces title and estimate. Returns nil if the id is unknown.
func (b *Board) UpdateTask(id, title string, estimate int) *task.Task {
	t := b.index[id]
	if t == nil {
		return nil
	}
	t.Title = title
	t.Estimate = estimate
	return t
}

// ToggleCompletion flips the target between active and completed, then runs
// the completion cascade: if the toggled task is a subtask and every
// non-archived sibling is now completed, the parent project completes too.
// Un-completing a subtask never reactivates the parent; the cascade is a
// one-way ratchet.
//
// A project never completes through a direct toggle; its completion is only
// ever derived from its subtasks. Reopening a completed project is the one
// direct project transition allowed.
func (b *Board) ToggleCompletion(id string) []*task.Task {
	t := b.index[id]
	if t == nil {
		return nil
	}
	if t.IsProject && t.Status != task.StatusCompleted {
		return nil
	}

	if t.Status == task.StatusCompleted {
		t.Status = task.StatusActive
	} else {
		t.Status = task.StatusCompleted
	}
	changed := []*task.Task{t}

	if t.ParentID != "" && t.Status == task.StatusCompleted {
		if parent := b.completeParent(t.ParentID); parent != nil {
			changed = append(changed, parent)
		}
	}
	return changed
}

func (b *Board) completeParent(parentID string) *task.Task {
	parent := b.index[parentID]
	if parent == nil || parent.Status == task.StatusCompleted {
		return nil
	}
	for _, s := range b.tasks {
		if s.ParentID != parentID || s.Archived() {
			continue
		}
		if s.Status != task.StatusCompleted {
			return nil
		}
	}
	parent.Status = task.StatusCompleted
	return parent
}

// Archive soft-deletes the task and, when it is a project, all of its direct
// subtasks. The hierarchy is two levels deep so one pass is enough.
func (b *Board) Archive(id string) []*task.Task {
	t := b.index[id]
	if t == nil {
		return nil
	}

	changed := make([]*task.Task, 0, 1)
	for _, c := range b.tasks {
		if c.ID == id || c.ParentID == id {
			c.Status = task.StatusArchived
			changed = append(changed, c)
		}
	}
	return changed
}

// CompletePomodoro increments the completed counter for a crystallized
// session. Only the session machine's terminal transitions call this.
func (b *Board) CompletePomodoro(id string) *task.Task {
	t := b.index[id]
	if t == nil {
		return nil
	}
	t.CompletedPomodoros++
	return t
}

// FailPomodoro increments the failed counter for an entropy session.
func (b *Board) FailPomodoro(id string) *task.Task {
	t := b.index[id]
	if t == nil {
		return nil
	}
	t.FailedPomodoros++
	return t
}

func (b *Board) nextSortOrder(listID, parentID string) int {
	max := 0
	found := false
	for _, t := range b.tasks {
		if t.ListID != listID || t.ParentID != parentID {
			continue
		}
		if !found || t.SortOrder > max {
			max = t.SortOrder
			found = true
		}
	}
	if !found {
		return 1000
	}
	return max + 100
}
