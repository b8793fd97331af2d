package journal

import (
	"time"
)

// DayStat is one day of terminal session outcomes.
type DayStat struct {
	Day      time.Time
	Crystals int
	Entropy  int
}

// DailyStats aggregates terminal events per day for the trailing window,
// oldest day first. Days without events still appear so the retrospective
// view renders a contiguous strip.
func DailyStats(entries []*LogEntry, days int, now time.Time) []DayStat {
	if days <= 0 {
		return nil
	}

	stats := make([]DayStat, days)
	for i := range stats {
		day := now.AddDate(0, 0, -(days - 1 - i))
		stats[i].Day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	}

	for _, e := range entries {
		for i := range stats {
			if !e.Timestamp.SameDay(stats[i].Day) {
				continue
			}
			switch e.Type {
			case EventCrystallization:
				stats[i].Crystals++
			case EventEntropy:
				stats[i].Entropy++
			}
			break
		}
	}
	return stats
}

// Efficiency is the percentage of terminal sessions that crystallized.
// Zero when nothing terminal has happened yet.
func Efficiency(entries []*LogEntry) int {
	crystals := 0
	entropy := 0
	for _, e := range entries {
		switch e.Type {
		case EventCrystallization:
			crystals++
		case EventEntropy:
			entropy++
		}
	}
	if crystals+entropy == 0 {
		return 0
	}
	return crystals * 100 / (crystals + entropy)
}
