// Package notify defines the notification collaborator contract. Delivery
// is external; the core only hands over a payload at interval expiry.
package notify

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

type Kind string

const (
	KindFocusComplete Kind = "focus-complete"
	KindBreakComplete Kind = "break-complete"
)

// Notification is the payload handed to the collaborator.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Kind  Kind   `json:"kind"`
}

// Notifier delivers notifications. Implementations must not block the
// caller's intent; failures are theirs to swallow.
type Notifier interface {
	Notify(n Notification)
}

// Stderr writes notifications to standard error, the delivery the CLI has.
type Stderr struct{}

func (Stderr) Notify(n Notification) {
	b := color.New(color.Bold)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", b.Sprint(n.Title), n.Body)
}

// Discard drops notifications. Used in tests.
type Discard struct{}

func (Discard) Notify(Notification) {}
