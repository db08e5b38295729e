package commands

var Quit = Define(Definition{
	Name:        "quit",
	Usage:       "quit",
	Description: "exit the game",
	Rank:        70,
}, func(ctx *Context) bool {
	ctx.Game.Send("Goodbye!")
	return true
})
