package commands

import (
	"fmt"
	"strings"

	"DungeonEscape/internal/game"
)

var Help = Define(Definition{
	Name:        "help",
	Usage:       "help",
	Description: "show this help message",
	Rank:        50,
}, func(ctx *Context) bool {
	ctx.Game.Send(helpMessage("Commands:", All()))
	return false
})

func helpMessage(title string, commands []*Command) string {
	var builder strings.Builder
	builder.WriteString(game.Style(title, game.AnsiBold, game.AnsiUnderline))
	for _, cmd := range commands {
		usage := cmd.Usage
		if strings.TrimSpace(usage) == "" {
			usage = cmd.Name
		}
		builder.WriteString(fmt.Sprintf("\n  %-22s - %s", usage, cmd.Description))
	}
	return builder.String()
}
