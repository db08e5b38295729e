package commands

import (
	"errors"
	"fmt"

	"DungeonEscape/internal/game"
)

var Get = Define(Definition{
	Name:        "get",
	Usage:       "get",
	Description: "pick up the item in the room",
	Rank:        20,
}, func(ctx *Context) bool {
	item, err := ctx.Dungeon.TakeItem(ctx.Player)
	switch {
	case err == nil:
		ctx.Game.Send(fmt.Sprintf("You picked up the %s.", game.HighlightItemName(item)))
	case errors.Is(err, game.ErrNoItem):
		ctx.Game.Send(err.Error())
	default:
		ctx.Game.Send(game.Style(err.Error(), game.AnsiYellow))
	}
	return false
})
