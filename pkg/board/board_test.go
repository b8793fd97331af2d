package board

import (
	"testing"

	"tableflip.dev/entropy/pkg/task"
)

func TestAddTaskSortOrderSpacing(t *testing.T) {
	b := New()

	first := b.AddTask("inbox", "one", 0, "")
	second := b.AddTask("inbox", "two", 0, "")
	third := b.AddTask("inbox", "three", 0, "")

	if first.SortOrder != 1000 {
		t.Fatalf("expected first sort order 1000, got %d", first.SortOrder)
	}
	if second.SortOrder != 1100 {
		t.Fatalf("expected second sort order 1100, got %d", second.SortOrder)
	}
	if third.SortOrder != 1200 {
		t.Fatalf("expected third sort order 1200, got %d", third.SortOrder)
	}
}

func TestAddTaskBucketsAreIndependent(t *testing.T) {
	b := New()
	p := b.AddProject("work", "project")

	root := b.AddTask("work", "root", 0, "")
	sub := b.AddTask("work", "sub", 0, p.ID)

	if root.SortOrder != 1100 {
		t.Fatalf("expected root after project at 1100, got %d", root.SortOrder)
	}
	if sub.SortOrder != 1000 {
		t.Fatalf("expected first subtask at 1000, got %d", sub.SortOrder)
	}
}

func TestAddTaskToDoneListRedirectsToInbox(t *testing.T) {
	b := New()
	got := b.AddTask(task.ListDone, "stray", 0, "")
	if got.ListID != task.ListInbox {
		t.Fatalf("expected inbox, got %q", got.ListID)
	}
}

func TestAddTaskDropsDanglingParent(t *testing.T) {
	b := New()
	got := b.AddTask("inbox", "orphan", 0, "nope")
	if got.ParentID != "" {
		t.Fatalf("expected parent dropped, got %q", got.ParentID)
	}
}

func TestAddTaskInheritsParentList(t *testing.T) {
	b := New()
	p := b.AddProject("work", "project")
	sub := b.AddTask("life", "sub", 0, p.ID)
	if sub.ListID != "work" {
		t.Fatalf("expected subtask in parent list work, got %q", sub.ListID)
	}
}

func TestToggleCompletionCascadesToParent(t *testing.T) {
	b := New()
	p := b.AddProject("inbox", "project")
	a := b.AddTask("inbox", "a", 0, p.ID)
	c := b.AddTask("inbox", "b", 0, p.ID)

	b.ToggleCompletion(a.ID)
	if p.Completed() {
		t.Fatalf("project completed with an active subtask remaining")
	}

	changed := b.ToggleCompletion(c.ID)
	if !p.Completed() {
		t.Fatalf("expected project completed after last subtask")
	}
	if len(changed) != 2 {
		t.Fatalf("expected subtask and parent in changed set, got %d", len(changed))
	}
}

func TestToggleCompletionIgnoresArchivedSiblings(t *testing.T) {
	b := New()
	p := b.AddProject("inbox", "project")
	a := b.AddTask("inbox", "a", 0, p.ID)
	dead := b.AddTask("inbox", "dead", 0, p.ID)
	dead.Status = task.StatusArchived

	b.ToggleCompletion(a.ID)
	if !p.Completed() {
		t.Fatalf("expected archived sibling to not block the cascade")
	}
}

func TestToggleCompletionRatchet(t *testing.T) {
	b := New()
	p := b.AddProject("inbox", "project")
	a := b.AddTask("inbox", "a", 0, p.ID)

	b.ToggleCompletion(a.ID)
	if !p.Completed() {
		t.Fatalf("expected project completed")
	}

	// Reopening the subtask must not reopen the project.
	b.ToggleCompletion(a.ID)
	if !a.Active() {
		t.Fatalf("expected subtask active again")
	}
	if !p.Completed() {
		t.Fatalf("expected project to stay completed")
	}
}

func TestToggleCompletionRefusesActiveProject(t *testing.T) {
	b := New()
	p := b.AddProject("inbox", "project")
	sub := b.AddTask("inbox", "sub", 0, p.ID)

	if changed := b.ToggleCompletion(p.ID); changed != nil {
		t.Fatalf("expected direct project toggle to be refused, got %v", changed)
	}
	if !p.Active() {
		t.Fatalf("project completed directly while a subtask is still active")
	}
	if !sub.Active() {
		t.Fatalf("subtask changed by a refused project toggle")
	}
}

func TestToggleCompletionReopensCompletedProject(t *testing.T) {
	b := New()
	p := b.AddProject("inbox", "project")
	sub := b.AddTask("inbox", "sub", 0, p.ID)

	b.ToggleCompletion(sub.ID)
	if !p.Completed() {
		t.Fatalf("expected cascade to complete the project")
	}

	changed := b.ToggleCompletion(p.ID)
	if len(changed) != 1 || !p.Active() {
		t.Fatalf("expected explicit reopen of a completed project to succeed")
	}
}

func TestToggleCompletionUnknownID(t *testing.T) {
	b := New()
	if changed := b.ToggleCompletion("nope"); changed != nil {
		t.Fatalf("expected nil for unknown id, got %v", changed)
	}
}

func TestArchiveProjectTakesDirectSubtasks(t *testing.T) {
	b := New()
	p := b.AddProject("inbox", "project")
	a := b.AddTask("inbox", "a", 0, p.ID)
	c := b.AddTask("inbox", "b", 0, p.ID)
	other := b.AddTask("inbox", "other", 0, "")

	changed := b.Archive(p.ID)
	if len(changed) != 3 {
		t.Fatalf("expected 3 archived, got %d", len(changed))
	}
	if !p.Archived() || !a.Archived() || !c.Archived() {
		t.Fatalf("expected project and subtasks archived")
	}
	if other.Archived() {
		t.Fatalf("unrelated task archived")
	}
}

func TestMoveTakesDestinationSlot(t *testing.T) {
	b := New()
	one := b.AddTask("inbox", "one", 0, "")
	two := b.AddTask("inbox", "two", 0, "")
	three := b.AddTask("inbox", "three", 0, "")

	changed := b.Move("inbox", three.ID, one.ID)
	if len(changed) != 3 {
		t.Fatalf("expected full bucket rewrite, got %d", len(changed))
	}

	got := b.Visible("inbox")
	want := []string{three.ID, one.ID, two.ID}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, got[i].ID)
		}
	}
	if got[0].SortOrder != 0 || got[1].SortOrder != 100 || got[2].SortOrder != 200 {
		t.Fatalf("expected rewritten keys 0,100,200, got %d,%d,%d",
			got[0].SortOrder, got[1].SortOrder, got[2].SortOrder)
	}
}

func TestMoveToOwnSlotKeepsOrder(t *testing.T) {
	b := New()
	one := b.AddTask("inbox", "one", 0, "")
	two := b.AddTask("inbox", "two", 0, "")

	if changed := b.Move("inbox", one.ID, one.ID); changed == nil {
		t.Fatalf("expected identity move to succeed")
	}

	got := b.Visible("inbox")
	if got[0].ID != one.ID || got[1].ID != two.ID {
		t.Fatalf("identity move reordered the bucket")
	}
}

func TestMoveRejectsCrossBucket(t *testing.T) {
	b := New()
	p := b.AddProject("inbox", "project")
	root := b.AddTask("inbox", "root", 0, "")
	sub := b.AddTask("inbox", "sub", 0, p.ID)

	if changed := b.Move("inbox", root.ID, sub.ID); changed != nil {
		t.Fatalf("expected cross-bucket move rejected, got %v", changed)
	}
	if changed := b.Move("inbox", "nope", root.ID); changed != nil {
		t.Fatalf("expected unknown source rejected, got %v", changed)
	}
}
