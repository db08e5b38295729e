package commands

import (
	"fmt"
	"sort"
	"strings"

	"DungeonEscape/internal/game"
)

// Definition describes a single command's metadata.
type Definition struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	// Rank orders the help listing; ties fall back to the name.
	Rank int
}

// Handler executes a command.
// Returning true indicates the session should end.
type Handler func(*Context) bool

// Command couples metadata with the executable handler.
type Command struct {
	Definition
	Handler Handler
}

// Context provides the runtime data available to a command handler.
type Context struct {
	Game    *game.Game
	Dungeon *game.Dungeon
	Player  *game.Player
	// Input is the matched command word; movement reads its direction from it.
	Input   string
}

var (
	registry = make(map[string]*Command)
	ordered  []*Command
)

// Define registers a new command using the provided definition and handler.
// It panics when metadata is incomplete or duplicates an existing command.
func Define(def Definition, handler Handler) *Command {
	if handler == nil {
		panic("commands: handler must not be nil")
	}
	if strings.TrimSpace(def.Name) == "" {
		panic("commands: command must have a name")
	}

	cmd := &Command{Definition: def, Handler: handler}

	registerName := func(name string) {
		key := strings.ToLower(name)
		if _, exists := registry[key]; exists {
			panic(fmt.Sprintf("commands: duplicate registration for %q", name))
		}
		registry[key] = cmd
	}

	registerName(def.Name)
	for _, alias := range def.Aliases {
		if strings.TrimSpace(alias) == "" {
			continue
		}
		registerName(alias)
	}

	ordered = append(ordered, cmd)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Rank != ordered[j].Rank {
			return ordered[i].Rank < ordered[j].Rank
		}
		return ordered[i].Name < ordered[j].Name
	})

	return cmd
}

// All returns the registered commands in help order.
func All() []*Command {
	out := make([]*Command, len(ordered))
	copy(out, ordered)
	return out
}

// Find looks up a command by name or alias.
func Find(name string) (*Command, bool) {
	cmd, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return cmd, ok
}

// Dispatch looks up the whole normalised line as a command and executes it.
// Lines carrying anything beyond a single command word are unknown.
// It satisfies game.Dispatcher.
func Dispatch(g *game.Game, line string) bool {
	cmd, ok := Find(line)
	if !ok {
		g.Send(unknownCommand)
		return false
	}

	ctx := &Context{
		Game:    g,
		Dungeon: g.Dungeon(),
		Player:  g.Player(),
		Input:   strings.ToLower(strings.TrimSpace(line)),
	}
	return cmd.Handler(ctx)
}

const unknownCommand = "Unknown command. Type 'help'."
