// Package journal is the append-only event log. Entries are never mutated or
// deleted; they are the sole source for retrospective analytics.
package journal

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/entropy/pkg/task"
)

// EventType is the fixed event taxonomy. Crystallization is a successfully
// completed focus session; entropy is a failed one.
type EventType string

const (
	EventCreation        EventType = "creation"
	EventStart           EventType = "start"
	EventCrystallization EventType = "crystallization"
	EventEntropy         EventType = "entropy"
)

// EntropyReason categorizes why a focus session failed.
type EntropyReason string

const (
	ReasonInternal  EntropyReason = "internal"
	ReasonExternal  EntropyReason = "external"
	ReasonCognitive EntropyReason = "cognitive"
)

// ParseReason validates a reason string, returning false for anything
// outside the fixed vocabulary.
func ParseReason(raw string) (EntropyReason, bool) {
	switch EntropyReason(raw) {
	case ReasonInternal, ReasonExternal, ReasonCognitive:
		return EntropyReason(raw), true
	}
	return "", false
}

// LogEntry is one immutable audit record. The task title is denormalized at
// event time so the chronicle survives later edits and archives.
type LogEntry struct {
	ID              string         `json:"id"`
	TaskID          string         `json:"taskId"`
	TaskTitle       string         `json:"taskTitle"`
	Type            EventType      `json:"type"`
	Timestamp       task.Timestamp `json:"timestamp"`
	EntropyReason   EntropyReason  `json:"entropyReason,omitempty"`
	DurationSeconds int            `json:"duration,omitempty"`
}

// Journal holds the in-memory log. Append is the only mutation.
type Journal struct {
	entries []*LogEntry
}

func New() *Journal {
	return &Journal{entries: make([]*LogEntry, 0)}
}

// Load seeds a journal from previously persisted entries.
func Load(entries []*LogEntry) *Journal {
	j := New()
	for _, e := range entries {
		if e == nil {
			continue
		}
		j.entries = append(j.entries, e)
	}
	return j
}

// Record appends a new entry with a fresh id and the current time, and
// returns it for the caller to mirror durably.
func (j *Journal) Record(t EventType, taskID, taskTitle string) *LogEntry {
	e := &LogEntry{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		TaskTitle: taskTitle,
		Type:      t,
		Timestamp: task.Timestamp{Time: time.Now()},
	}
	j.entries = append(j.entries, e)
	return e
}

// RecordEntropy appends a failure entry carrying its reason.
func (j *Journal) RecordEntropy(taskID, taskTitle string, reason EntropyReason, durationSeconds int) *LogEntry {
	e := j.Record(EventEntropy, taskID, taskTitle)
	e.EntropyReason = reason
	e.DurationSeconds = durationSeconds
	return e
}

// RecordCrystallization appends a success entry with the session duration.
func (j *Journal) RecordCrystallization(taskID, taskTitle string, durationSeconds int) *LogEntry {
	e := j.Record(EventCrystallization, taskID, taskTitle)
	e.DurationSeconds = durationSeconds
	return e
}

// Entries returns the log in append order.
func (j *Journal) Entries() []*LogEntry {
	all := make([]*LogEntry, len(j.entries))
	copy(all, j.entries)
	return all
}

func (j *Journal) Len() int {
	return len(j.entries)
}
