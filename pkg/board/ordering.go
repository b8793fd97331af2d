package board

import (
	"sort"

	"tableflip.dev/entropy/pkg/task"
)

// Reassign rewrites the sort keys of an already visually ordered sibling
// bucket as index*100. The bucket rewrite is O(n) per drag, which is fine:
// buckets are a list's root tasks or one project's subtasks.
func Reassign(siblings []*task.Task) []*task.Task {
	for i, t := range siblings {
		t.SortOrder = i * 100
	}
	return siblings
}

// SortBucket orders tasks by sort key, breaking ties by creation time. This
// matches the durable read order (sortOrder ASC, createdAt ASC).
func SortBucket(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].SortOrder != tasks[j].SortOrder {
			return tasks[i].SortOrder < tasks[j].SortOrder
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt.Time)
	})
}

// Move reorders srcID to dstID's position within their shared sibling bucket
// and returns the rewritten bucket. The bucket is always recomputed from the
// board's canonical state and re-sorted before indices are resolved;
// computing indices against a stale or unsorted slice yields an order that
// looks right on screen and persists wrong. If the two ids do not share a
// bucket (a cross-bucket drag) the move is rejected as a no-op.
func (b *Board) Move(listID, srcID, dstID string) []*task.Task {
	src := b.index[srcID]
	if src == nil {
		return nil
	}

	bucket := b.bucket(listID, src.ParentID)
	SortBucket(bucket)

	oldIndex := indexOf(bucket, srcID)
	newIndex := indexOf(bucket, dstID)
	if oldIndex < 0 || newIndex < 0 {
		return nil
	}

	moved := bucket[oldIndex]
	bucket = append(bucket[:oldIndex], bucket[oldIndex+1:]...)
	rest := make([]*task.Task, 0, len(bucket)+1)
	rest = append(rest, bucket[:newIndex]...)
	rest = append(rest, moved)
	rest = append(rest, bucket[newIndex:]...)

	return Reassign(rest)
}

// bucket gathers the non-archived siblings sharing (listID, parentID).
func (b *Board) bucket(listID, parentID string) []*task.Task {
	siblings := make([]*task.Task, 0)
	for _, t := range b.tasks {
		if t.ListID != listID || t.ParentID != parentID || t.Archived() {
			continue
		}
		siblings = append(siblings, t)
	}
	return siblings
}

func indexOf(tasks []*task.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
