package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/entropy/pkg/glyph"
	"tableflip.dev/entropy/pkg/journal"
	"tableflip.dev/entropy/pkg/session"
	"tableflip.dev/entropy/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Tasks renders a visible projection, subtasks indented under their project.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	roots := make([]*task.Task, 0, len(tasks))
	children := make(map[string][]*task.Task)
	for _, t := range tasks {
		if t.ParentID == "" {
			roots = append(roots, t)
			continue
		}
		children[t.ParentID] = append(children[t.ParentID], t)
	}

	for _, t := range roots {
		pp.taskRow(t, "")
		for _, sub := range children[t.ID] {
			pp.taskRow(sub, "  ")
		}
		// Orphaned here just means the parent is filtered out of this view
		// (e.g. the done view showing a completed project's subtasks).
		delete(children, t.ID)
	}
	for _, subs := range children {
		for _, sub := range subs {
			pp.taskRow(sub, "  ")
		}
	}
	fmt.Println("")
}

func (pp *PrettyPrint) taskRow(t *task.Task, indent string) {
	w := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	if pp.ShowID {
		_, _ = y.Print(t.ID)
		_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(t.ID))))
	}

	title := t.Title
	if t.Completed() {
		title = glyph.Strike(title)
	}
	_, _ = w.Printf("%s%s %s", indent, bulletFor(t), title)

	if !t.IsProject && t.Estimate > 0 {
		_, _ = f.Printf("  %d/%d", t.CompletedPomodoros, t.Estimate)
	}
	if t.FailedPomodoros > 0 {
		_, _ = f.Printf("  %s%d", glyph.Entropy, t.FailedPomodoros)
	}
	_, _ = w.Println("")
}

func bulletFor(t *task.Task) glyph.Bullet {
	switch {
	case t.Archived():
		return glyph.Archived
	case t.IsProject:
		return glyph.Project
	case t.Completed():
		return glyph.Completed
	default:
		return glyph.Task
	}
}

// Session prints the active session line with the recomputed remaining time.
func (pp *PrettyPrint) Session(s session.State, remaining time.Duration, title string) {
	f := color.New(color.Faint, color.Italic)
	w := color.New()

	switch s.Mode {
	case session.ModeIdle:
		_, _ = f.Println("no session active")
	case session.ModeFocus:
		if s.Collapsed {
			_, _ = w.Printf("%s collapsed, awaiting reason · %s\n", glyph.Entropy, title)
			return
		}
		_, _ = w.Printf("%s focus %s · %s\n", glyph.Focus, clock(remaining), title)
	case session.ModeBreak:
		_, _ = w.Printf("%s break %s\n", glyph.Break, clock(remaining))
	}
}

func clock(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Chronicle renders log entries, most recent first.
func (pp *PrettyPrint) Chronicle(entries ...*journal.LogEntry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" nothing logged\n\n")
		return
	}

	w := color.New()
	f := color.New(color.Faint)

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		_, _ = f.Printf("%s  ", e.Timestamp.Local().Format("Jan 02 15:04"))
		_, _ = w.Printf("%s %s", bulletForEvent(e.Type), e.TaskTitle)
		if e.EntropyReason != "" {
			_, _ = f.Printf("  (%s)", e.EntropyReason)
		}
		_, _ = w.Println("")
	}
	fmt.Println("")
}

func bulletForEvent(t journal.EventType) glyph.Bullet {
	switch t {
	case journal.EventCrystallization:
		return glyph.Crystal
	case journal.EventEntropy:
		return glyph.Entropy
	case journal.EventStart:
		return glyph.Focus
	default:
		return glyph.Task
	}
}

// Stats renders the daily crystal/entropy table and the efficiency ratio.
func (pp *PrettyPrint) Stats(stats []journal.DayStat, efficiency int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", glyph.Crystal.String(), glyph.Entropy.String())
	for _, d := range stats {
		tbl.AddRow(d.Day.Format("Jan 02"), d.Crystals, d.Entropy)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	f := color.New(color.Faint)
	_, _ = f.Printf("efficiency %d%%\n\n", efficiency)
}
