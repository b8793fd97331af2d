package glyph

import "fmt"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 8)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "task",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	}, Glyph{
		Key:     "#",
		Symbol:  "◆",
		Meaning: "project",
	}, Glyph{
		Key:     "~",
		Symbol:  "⦵",
		Meaning: "archived",
	}, Glyph{
		Key:     "o",
		Symbol:  "◉",
		Meaning: "focus session",
	}, Glyph{
		Key:     "b",
		Symbol:  "○",
		Meaning: "break",
	}, Glyph{
		Key:     "*",
		Symbol:  "✦",
		Meaning: "crystallization",
	}, Glyph{
		Key:     "v",
		Symbol:  "▾",
		Meaning: "entropy",
	})

	return g
}

type Bullet int

const (
	Task Bullet = iota
	Completed
	Project
	Archived
	Focus
	Break
	Crystal
	Entropy
)

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}

func (g Glyph) String() string {
	return g.Symbol
}
