// Package settings holds user preferences. The durable form is a string
// key/value map, so the codec here is the migration contract.
package settings

import (
	"strconv"
	"time"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageChinese Language = "zh"
)

type TimerDisplayMode string

const (
	DisplayCountdown TimerDisplayMode = "countdown"
	DisplayRing      TimerDisplayMode = "ring"
)

type Settings struct {
	PomodoroDuration int              `json:"pomodoroDuration"` // minutes
	BreakDuration    int              `json:"breakDuration"`    // minutes
	ShowCategories   bool             `json:"showCategories"`
	Language         Language         `json:"language"`
	AutoStart        bool             `json:"autoStart"`
	TimerDisplayMode TimerDisplayMode `json:"timerDisplayMode"`
}

func Default() Settings {
	return Settings{
		PomodoroDuration: 25,
		BreakDuration:    5,
		ShowCategories:   true,
		Language:         LanguageEnglish,
		TimerDisplayMode: DisplayCountdown,
	}
}

func (s Settings) Focus() time.Duration {
	return time.Duration(s.PomodoroDuration) * time.Minute
}

func (s Settings) Break() time.Duration {
	return time.Duration(s.BreakDuration) * time.Minute
}

// FromMap decodes the persisted key/value rows, falling back to defaults for
// missing or malformed values.
func FromMap(m map[string]string) Settings {
	s := Default()
	if v, err := strconv.Atoi(m["pomodoroDuration"]); err == nil && v > 0 {
		s.PomodoroDuration = v
	}
	if v, err := strconv.Atoi(m["breakDuration"]); err == nil && v > 0 {
		s.BreakDuration = v
	}
	if m["showCategories"] == "false" {
		s.ShowCategories = false
	}
	if m["language"] == string(LanguageChinese) {
		s.Language = LanguageChinese
	}
	if m["autoStart"] == "true" {
		s.AutoStart = true
	}
	if m["timerDisplayMode"] == string(DisplayRing) {
		s.TimerDisplayMode = DisplayRing
	}
	return s
}

// ToMap encodes settings into the persisted key/value rows.
func (s Settings) ToMap() map[string]string {
	return map[string]string{
		"pomodoroDuration": strconv.Itoa(s.PomodoroDuration),
		"breakDuration":    strconv.Itoa(s.BreakDuration),
		"showCategories":   strconv.FormatBool(s.ShowCategories),
		"language":         string(s.Language),
		"autoStart":        strconv.FormatBool(s.AutoStart),
		"timerDisplayMode": string(s.TimerDisplayMode),
	}
}
