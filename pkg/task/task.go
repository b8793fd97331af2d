package task

import (
	"time"

	"github.com/google/uuid"
)

// Status tracks where a task is in its lifecycle. Tasks are never hard
// deleted; archiving is the terminal state so log entries keep resolving.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Task is a unit of work, or a container for subtasks when IsProject is set.
// A project's estimate and pomodoro counters are inert; its completion is
// derived from its subtasks.
type Task struct {
	ID                 string    `json:"id"`
	ListID             string    `json:"listId"`
	Title              string    `json:"title"`
	Estimate           int       `json:"estimate"`
	CompletedPomodoros int       `json:"completedPomodoros"`
	FailedPomodoros    int       `json:"failedPomodoros"`
	ParentID           string    `json:"parentId,omitempty"`
	CreatedAt          Timestamp `json:"createdAt"`
	Status             Status    `json:"status"`
	IsProject          bool      `json:"isProject,omitempty"`
	SortOrder          int       `json:"sortOrder"`
}

func New(listID, title string, estimate int) *Task {
	return &Task{
		ID:        uuid.NewString(),
		ListID:    listID,
		Title:     title,
		Estimate:  estimate,
		CreatedAt: Timestamp{Time: time.Now()},
		Status:    StatusActive,
	}
}

func NewProject(listID, title string) *Task {
	t := New(listID, title, 0)
	t.IsProject = true
	return t
}

// IsSubtask reports whether the task lives under a project.
func (t *Task) IsSubtask() bool {
	return t.ParentID != ""
}

func (t *Task) Active() bool {
	return t.Status == StatusActive
}

func (t *Task) Completed() bool {
	return t.Status == StatusCompleted
}

func (t *Task) Archived() bool {
	return t.Status == StatusArchived
}

// Clone returns a shallow copy so callers can hand tasks to observers
// without sharing the store's instance.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}
