package game

import "strings"

const minWrapWidth = 20

// WrapText inserts line breaks so that each line of text fits within width
// columns. Blank lines are kept as paragraph breaks. A width of zero or less
// disables wrapping.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	if width < minWrapWidth {
		width = minWrapWidth
	}
	paragraphs := strings.Split(text, "\n")
	wrapped := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		trimmed := strings.TrimSpace(paragraph)
		if trimmed == "" {
			wrapped = append(wrapped, "")
			continue
		}
		wrapped = append(wrapped, wrapLine(trimmed, width))
	}
	return strings.Join(wrapped, "\n")
}

func wrapLine(line string, width int) string {
	var builder strings.Builder
	column := 0
	for _, word := range strings.Fields(line) {
		runes := []rune(word)
		for len(runes) > width {
			if column != 0 {
				builder.WriteByte('\n')
			}
			builder.WriteString(string(runes[:width]))
			runes = runes[width:]
			column = width
		}
		if len(runes) == 0 {
			continue
		}
		switch {
		case column == 0:
		case column+1+len(runes) > width:
			builder.WriteByte('\n')
			column = 0
		default:
			builder.WriteByte(' ')
			column++
		}
		builder.WriteString(string(runes))
		column += len(runes)
	}
	return builder.String()
}
