package board

import (
	"testing"

	"tableflip.dev/entropy/pkg/task"
)

func TestVisibleListShowsOwnActiveTasks(t *testing.T) {
	b := New()
	a := b.AddTask("work", "a", 0, "")
	b.AddTask("life", "elsewhere", 0, "")
	done := b.AddTask("work", "done", 0, "")
	b.ToggleCompletion(done.ID)

	got := b.Visible("work")
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("expected only the active work task, got %d", len(got))
	}
}

func TestVisibleKeepsCompletedSubtaskUnderActiveParent(t *testing.T) {
	b := New()
	p := b.AddProject("work", "project")
	sub := b.AddTask("work", "sub", 0, p.ID)
	b.AddTask("work", "open", 0, p.ID)
	b.ToggleCompletion(sub.ID)

	got := b.Visible("work")
	if !containsID(got, sub.ID) {
		t.Fatalf("expected completed subtask to stay under its active parent")
	}
	if containsID(Visible(b.All(), task.ListDone), sub.ID) {
		t.Fatalf("completed subtask of an active parent leaked into done")
	}
}

func TestVisibleDoneCollectsAcrossLists(t *testing.T) {
	b := New()
	w := b.AddTask("work", "w", 0, "")
	l := b.AddTask("life", "l", 0, "")
	b.ToggleCompletion(w.ID)
	b.ToggleCompletion(l.ID)

	got := b.Visible(task.ListDone)
	if len(got) != 2 {
		t.Fatalf("expected both completed tasks in done, got %d", len(got))
	}
}

func TestVisibleDoneShowsSubtasksOfCompletedParent(t *testing.T) {
	b := New()
	p := b.AddProject("work", "project")
	sub := b.AddTask("work", "sub", 0, p.ID)
	b.ToggleCompletion(sub.ID)

	// Last subtask completion cascaded to the parent, so both transfer.
	got := b.Visible(task.ListDone)
	if !containsID(got, p.ID) || !containsID(got, sub.ID) {
		t.Fatalf("expected project and subtask in done view")
	}
}

func TestVisibleNeverShowsArchived(t *testing.T) {
	b := New()
	a := b.AddTask("work", "a", 0, "")
	b.ToggleCompletion(a.ID)
	b.Archive(a.ID)

	if len(b.Visible("work")) != 0 {
		t.Fatalf("archived task visible in its list")
	}
	if len(b.Visible(task.ListDone)) != 0 {
		t.Fatalf("archived task visible in done")
	}
}

func containsID(tasks []*task.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
