package commands

import (
	"strings"

	"DungeonEscape/internal/game"
)

var Inventory = Define(Definition{
	Name:        "inventory",
	Usage:       "inventory",
	Description: "check your inventory",
	Rank:        40,
}, func(ctx *Context) bool {
	items := ctx.Player.Inventory
	if len(items) == 0 {
		ctx.Game.Send("Inventory: empty")
		return false
	}
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = game.HighlightItemName(item)
	}
	ctx.Game.Send("Inventory: " + strings.Join(names, ", "))
	return false
})
