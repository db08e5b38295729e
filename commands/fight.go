package commands

import (
	"errors"
	"fmt"

	"DungeonEscape/internal/game"
)

var Fight = Define(Definition{
	Name:        "fight",
	Usage:       "fight",
	Description: "fight the monster if present",
	Rank:        30,
}, func(ctx *Context) bool {
	room := ctx.Player.Room
	result, err := ctx.Dungeon.Fight(ctx.Player)
	if err != nil {
		if errors.Is(err, game.ErrNoMonster) {
			ctx.Game.Send(err.Error())
			return false
		}
		ctx.Game.Send(game.Style(err.Error(), game.AnsiYellow))
		return false
	}

	monster := game.HighlightMonsterName(result.Monster)
	if result.Won {
		ctx.Game.Send(fmt.Sprintf("You slayed the %s!", monster))
		ctx.Game.TriggerMonster(game.HookSlain, result.Monster, room)
		return false
	}
	ctx.Game.Send(fmt.Sprintf("The %s killed you...", monster))
	ctx.Game.TriggerMonster(game.HookTriumph, result.Monster, room)
	return false
})
