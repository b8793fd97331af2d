// Package task defines the task entity and the list vocabulary it lives in.
package task

// ListType identifies how a list behaves. The done list is virtual: it owns
// no tasks by listId and is populated by the visibility filter from completed
// tasks across all lists.
type ListType string

const (
	ListTypeInbox ListType = "inbox"
	ListTypeUser  ListType = "user"
	ListTypeDone  ListType = "done"
	ListTypeTrash ListType = "trash"
)

// ListDone is the id of the virtual done view.
const ListDone = "done"

// ListInbox is the id of the default inbox list.
const ListInbox = "inbox"

// List is a named bucket of root-level tasks.
type List struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type ListType `json:"type"`
	Icon string   `json:"icon,omitempty"`
}

// DefaultLists returns the lists seeded into an empty store.
func DefaultLists() []List {
	return []List{
		{ID: ListInbox, Name: "Inbox", Type: ListTypeInbox},
		{ID: "work", Name: "Work", Type: ListTypeUser},
		{ID: "life", Name: "Life", Type: ListTypeUser},
		{ID: ListDone, Name: "Done", Type: ListTypeDone},
	}
}
