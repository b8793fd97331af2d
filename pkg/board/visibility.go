package board

import (
	"tableflip.dev/entropy/pkg/task"
)

// Visible projects the full task set into what a list view should render.
// Pure function; input order is preserved.
//
// The done view is virtual: it shows completed tasks from every list, except
// completed subtasks whose parent project is still active. Those only
// transfer together with their project. A concrete list shows its own active
// tasks plus completed subtasks still nested under an active parent in that
// list, so subtasks don't disappear mid-project. Archived tasks never render.
func Visible(all []*task.Task, currentListID string) []*task.Task {
	byID := make(map[string]*task.Task, len(all))
	for _, t := range all {
		byID[t.ID] = t
	}

	visible := make([]*task.Task, 0, len(all))
	for _, t := range all {
		if t.Archived() {
			continue
		}

		if currentListID == task.ListDone {
			if !t.Completed() {
				continue
			}
			if t.ParentID != "" {
				if parent := byID[t.ParentID]; parent != nil && parent.Active() {
					continue
				}
			}
			visible = append(visible, t)
			continue
		}

		if t.ListID == currentListID && t.Active() {
			visible = append(visible, t)
			continue
		}
		if t.Completed() && t.ParentID != "" {
			parent := byID[t.ParentID]
			if parent != nil && parent.Active() && parent.ListID == currentListID {
				visible = append(visible, t)
			}
		}
	}
	return visible
}

// Visible is the board-side projection for one list, sorted for rendering.
func (b *Board) Visible(currentListID string) []*task.Task {
	visible := Visible(b.tasks, currentListID)
	SortBucket(visible)
	return visible
}
