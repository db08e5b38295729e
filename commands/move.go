package commands

import (
	"errors"

	"DungeonEscape/internal/game"
)

var Move = Define(Definition{
	Name:        "north",
	Aliases:     []string{"south", "east", "west"},
	Usage:       "north/south/east/west",
	Description: "move in a direction",
	Rank:        10,
}, func(ctx *Context) bool {
	dir, ok := game.ParseDirection(ctx.Input)
	if !ok {
		ctx.Game.Send(unknownCommand)
		return false
	}

	from := ctx.Player.Room
	_, err := ctx.Dungeon.Move(ctx.Player, dir)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrGuarded):
		ctx.Game.Send(game.Style(err.Error(), game.AnsiYellow))
		if room, ok := ctx.Dungeon.Room(from); ok {
			ctx.Game.TriggerMonster(game.HookBlock, room.Monster, room.Name)
		}
	default:
		ctx.Game.Send(game.Style(err.Error(), game.AnsiYellow))
	}
	return false
})
