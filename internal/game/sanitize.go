package game

import (
	"strings"
	"unicode"
)

// cleanLine drops runes a terminal cannot display from a line typed by a
// player. Tabs, non-breaking spaces and other blanks become a plain space.
func cleanLine(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsGraphic(r):
			return r
		default:
			return -1
		}
	}, s)
}

// normalizeCommand reduces a raw line to the form commands are registered
// under: printable runes only, lower case, words separated by one space.
func normalizeCommand(line string) string {
	return strings.ToLower(strings.Join(strings.Fields(cleanLine(line)), " "))
}
