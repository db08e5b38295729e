package game

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// State is the phase of a game session.
type State int

const (
	Playing State = iota
	Dead
	Won
	Quit
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Dead:
		return "dead"
	case Won:
		return "won"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal is the line-oriented connection a game is played over.
type Terminal interface {
	ReadLine() (string, error)
	WriteString(string) error
}

// sizer is implemented by terminals that know their column width.
type sizer interface {
	Size() (int, int)
}

// Dispatcher executes one command line for the game.
// Returning true indicates the player asked to quit.
type Dispatcher func(*Game, string) bool

const defaultWidth = 80

type options struct {
	color   bool
	width   int
	showMap bool
	scripts map[string]string
}

// Option customises a Game created by NewGame.
type Option func(*options)

// WithColor toggles ANSI styling in the output.
func WithColor(enabled bool) Option {
	return func(opts *options) {
		opts.color = enabled
	}
}

// WithWidth sets the column width used to wrap narration.
func WithWidth(width int) Option {
	return func(opts *options) {
		opts.width = width
	}
}

// WithMapPreview toggles the room map and rumor printed before the first turn.
func WithMapPreview(enabled bool) Option {
	return func(opts *options) {
		opts.showMap = enabled
	}
}

// WithMonsterScript replaces the script for monster. An empty source
// disables scripting for that monster.
func WithMonsterScript(monster, source string) Option {
	return func(opts *options) {
		opts.scripts[monster] = source
	}
}

// Game owns one session: the dungeon, its player and the terminal.
type Game struct {
	dungeon *Dungeon
	player  *Player
	state   State
	term    Terminal
	scripts *scriptEngine
	color   bool
	width   int
	showMap bool
}

// NewGame builds the fixed dungeon and places a fresh player at its entrance.
func NewGame(term Terminal, opts ...Option) *Game {
	return NewGameWithDungeon(term, NewDungeon(), opts...)
}

// NewGameWithDungeon starts a session in a prepared dungeon.
func NewGameWithDungeon(term Terminal, dungeon *Dungeon, opts ...Option) *Game {
	cfg := options{
		color:   true,
		width:   defaultWidth,
		showMap: true,
		scripts: map[string]string{MonsterGoblin: GoblinScript},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Game{
		dungeon: dungeon,
		player:  NewPlayer(dungeon.Entrance()),
		state:   Playing,
		term:    term,
		scripts: newScriptEngine(cfg.scripts),
		color:   cfg.color,
		width:   cfg.width,
		showMap: cfg.showMap,
	}
}

// Dungeon returns the session's room registry.
func (g *Game) Dungeon() *Dungeon {
	return g.dungeon
}

// Player returns the session's player.
func (g *Game) Player() *Player {
	return g.player
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Write implements io.Writer over the terminal, dropping styling when
// colour is disabled.
func (g *Game) Write(p []byte) (int, error) {
	msg := string(p)
	if !g.color {
		msg = StripAnsi(msg)
	}
	if err := g.term.WriteString(msg); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Send writes one message line to the player.
func (g *Game) Send(msg string) {
	_, _ = io.WriteString(g, Ansi(msg)+"\n")
}

// Narrate sends flavour text wrapped to the terminal width.
func (g *Game) Narrate(text string) {
	g.Send(Style(WrapText(text, g.wrapWidth()), AnsiItalic, AnsiDim))
}

func (g *Game) wrapWidth() int {
	if s, ok := g.term.(sizer); ok {
		if width, _ := s.Size(); width > 0 {
			return width
		}
	}
	return g.width
}

// TriggerMonster fires a monster script hook for monster in room.
func (g *Game) TriggerMonster(hook MonsterHook, monster string, room RoomName) {
	g.scripts.trigger(hook, MonsterEvent{
		Monster:   monster,
		Room:      room,
		Inventory: g.player.Inventory,
		Narrate:   g.Narrate,
	})
}

// Describe shows the player's room and the rooms visited so far.
func (g *Game) Describe() {
	room, ok := g.dungeon.Room(g.player.Room)
	if !ok {
		g.Send(Style("\nYou seem to be nowhere.", AnsiYellow))
		return
	}
	room.Describe(g)
	if room.Monster != "" {
		g.TriggerMonster(HookAppear, room.Monster, room.Name)
	}
	visited := g.player.Visited()
	names := make([]string, len(visited))
	for i, name := range visited {
		names[i] = string(name)
	}
	g.Send(fmt.Sprintf("Visited Rooms: %s", strings.Join(names, ", ")))
}

// ShowMap prints every room with its contents followed by the rumor.
func (g *Game) ShowMap() {
	g.Send(Style("Room Map (Name, Item, Monster):", AnsiBold))
	for _, line := range g.dungeon.Map() {
		g.Send(" - " + line)
	}
	g.Send(Style(Rumor, AnsiMagenta))
}

func (g *Game) welcome(dispatch Dispatcher) {
	if g.showMap {
		g.ShowMap()
	}
	g.Send(Style("\nWelcome to Dungeon Escape!", AnsiMagenta, AnsiBold))
	g.Send("Find the Gold and return to the Entrance to win!")
	g.Send("Type 'help' to view available commands.")
	dispatch(g, "help")
}

// Run plays the session until the player dies, wins, quits or the
// terminal runs out of input.
func (g *Game) Run(dispatch Dispatcher) (State, error) {
	g.welcome(dispatch)
	for g.state == Playing {
		g.Describe()
		g.player.MustFight = false
		if _, err := io.WriteString(g, Prompt()); err != nil {
			return g.state, fmt.Errorf("write prompt: %w", err)
		}
		line, err := g.term.ReadLine()
		if err != nil {
			g.state = Quit
			if errors.Is(err, io.EOF) {
				return g.state, nil
			}
			return g.state, fmt.Errorf("read command: %w", err)
		}
		g.Step(dispatch, line)
	}
	return g.state, nil
}

// Step dispatches a single command line and then applies the terminal
// checks: death first, then escape with the Gold.
func (g *Game) Step(dispatch Dispatcher, line string) State {
	if g.state != Playing {
		return g.state
	}
	command := normalizeCommand(line)
	if dispatch(g, command) {
		g.state = Quit
		return g.state
	}
	switch {
	case !g.player.Alive:
		g.state = Dead
		g.Send(Style("You died. Game Over.", AnsiRed, AnsiBold))
	case g.dungeon.Escaped(g.player):
		g.state = Won
		g.Send(Style("You escaped the dungeon with the treasure! YOU WIN!", AnsiGreen, AnsiBold))
	}
	return g.state
}

// Play runs a console session over r and w.
func Play(r io.Reader, w io.Writer, dispatch Dispatcher, opts ...Option) (State, error) {
	return NewGame(NewConsoleSession(r, w), opts...).Run(dispatch)
}
