package game

import (
	"regexp"
	"strings"
)

const (
	AnsiReset     = "\x1b[0m"
	AnsiBold      = "\x1b[1m"
	AnsiDim       = "\x1b[2m"
	AnsiItalic    = "\x1b[3m"
	AnsiUnderline = "\x1b[4m"
	AnsiRed       = "\x1b[31m"
	AnsiGreen     = "\x1b[32m"
	AnsiYellow    = "\x1b[33m"
	AnsiMagenta   = "\x1b[35m"
	AnsiCyan      = "\x1b[36m"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Style wraps text with the provided ANSI attributes.
func Style(text string, attrs ...string) string {
	if len(attrs) == 0 {
		return text
	}
	return strings.Join(attrs, "") + text + AnsiReset
}

// HighlightRoomName formats room names consistently.
func HighlightRoomName(name RoomName) string {
	return Style(string(name), AnsiBold, AnsiCyan)
}

// HighlightItemName formats item names consistently.
func HighlightItemName(name string) string {
	return Style(name, AnsiBold, AnsiYellow)
}

// HighlightMonsterName formats monster names consistently.
func HighlightMonsterName(name string) string {
	return Style(name, AnsiBold, AnsiRed)
}

// Ansi ensures output strings end with a reset sequence.
func Ansi(c string) string {
	if strings.Contains(c, "\x1b[") && !strings.HasSuffix(c, AnsiReset) {
		return c + AnsiReset
	}
	return c
}

// StripAnsi removes every escape sequence from s.
func StripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Prompt renders the standard command prompt.
func Prompt() string {
	return Ansi(Style("\n> ", AnsiBold, AnsiYellow))
}
