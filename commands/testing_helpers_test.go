package commands

import (
	"strings"
	"testing"

	"DungeonEscape/internal/game"
)

// newTestGame returns a game whose output is collected uncoloured.
func newTestGame(t *testing.T, input string, opts ...game.Option) (*game.Game, *strings.Builder) {
	t.Helper()
	var out strings.Builder
	opts = append([]game.Option{game.WithColor(false), game.WithMapPreview(false)}, opts...)
	g := game.NewGame(game.NewConsoleSession(strings.NewReader(input), &out), opts...)
	return g, &out
}

// drainOutput returns what was written since the last call.
func drainOutput(out *strings.Builder) string {
	text := out.String()
	out.Reset()
	return text
}

func step(t *testing.T, g *game.Game, out *strings.Builder, line string) string {
	t.Helper()
	drainOutput(out)
	g.Step(Dispatch, line)
	return drainOutput(out)
}
