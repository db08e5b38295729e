package game

import (
	"errors"
	"strings"
	"testing"
)

// basicDispatch covers just enough commands to drive the loop without the
// commands package.
func basicDispatch(g *Game, line string) bool {
	switch line {
	case "quit":
		g.Send("Goodbye!")
		return true
	case "help":
		g.Send("Commands: north south east west get fight quit")
	case "get":
		item, err := g.Dungeon().TakeItem(g.Player())
		if err != nil {
			g.Send(err.Error())
			return false
		}
		g.Send("You picked up the " + item + ".")
	case "fight":
		if _, err := g.Dungeon().Fight(g.Player()); err != nil {
			g.Send(err.Error())
		}
	default:
		dir, ok := ParseDirection(line)
		if !ok {
			g.Send("Unknown command.")
			return false
		}
		if _, err := g.Dungeon().Move(g.Player(), dir); err != nil {
			g.Send(err.Error())
		}
	}
	return false
}

func playScript(t *testing.T, lines []string, opts ...Option) (*Game, State, string) {
	t.Helper()
	var out strings.Builder
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	g := NewGame(NewConsoleSession(input, &out), opts...)
	state, err := g.Run(basicDispatch)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return g, state, StripAnsi(out.String())
}

func TestRunDeathScenario(t *testing.T) {
	g, state, out := playScript(t, []string{"north", "get", "west", "fight", "look"})
	if state != Dead {
		t.Fatalf("state = %s, want dead", state)
	}
	if g.Player().Alive {
		t.Fatalf("player still alive")
	}
	if !strings.Contains(out, "You died. Game Over.") {
		t.Fatalf("missing game over message in %q", out)
	}
	if strings.Count(out, "> ") != 4 {
		t.Fatalf("loop kept prompting after death: %q", out)
	}
}

func TestRunWinScenario(t *testing.T) {
	commands := []string{
		"north", "get", "east", "get", "west", "west", "fight",
		"north", "get", "south", "east", "south",
	}
	g, state, out := playScript(t, commands)
	if state != Won {
		t.Fatalf("state = %s, want won\n%s", state, out)
	}
	if g.Player().Room != Entrance {
		t.Fatalf("player in %q", g.Player().Room)
	}
	if !strings.Contains(out, "You escaped the dungeon with the treasure! YOU WIN!") {
		t.Fatalf("missing victory message in %q", out)
	}
	if !strings.Contains(out, "Visited Rooms: Armory, Entrance, Hallway, Library, Treasure Room") {
		t.Fatalf("visited rooms not listed: %q", out)
	}
}

func TestRunQuit(t *testing.T) {
	_, state, out := playScript(t, []string{"quit", "north"})
	if state != Quit {
		t.Fatalf("state = %s, want quit", state)
	}
	if !strings.Contains(out, "Goodbye!") {
		t.Fatalf("missing farewell in %q", out)
	}
}

func TestRunEndsQuietlyOnEOF(t *testing.T) {
	var out strings.Builder
	g := NewGame(NewConsoleSession(strings.NewReader(""), &out))
	state, err := g.Run(basicDispatch)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if state != Quit {
		t.Fatalf("state = %s, want quit", state)
	}
	if strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("farewell printed on EOF")
	}
}

type failingTerminal struct{}

func (failingTerminal) ReadLine() (string, error) { return "", errors.New("connection reset") }
func (failingTerminal) WriteString(string) error { return nil }

func TestRunReportsReadErrors(t *testing.T) {
	state, err := NewGame(failingTerminal{}).Run(basicDispatch)
	if err == nil || !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("Run() error = %v", err)
	}
	if state != Quit {
		t.Fatalf("state = %s, want quit", state)
	}
}

func TestMustFightResetsEachTurn(t *testing.T) {
	var out strings.Builder
	g := NewGame(NewConsoleSession(strings.NewReader(""), &out))
	for _, line := range []string{"north", "get", "west", "north"} {
		g.Step(basicDispatch, line)
	}
	if g.Player().Room != Library {
		t.Fatalf("player slipped past the Goblin into %q", g.Player().Room)
	}
	if !g.Player().MustFight {
		t.Fatalf("MustFight = false after being blocked")
	}

	state, err := g.Run(basicDispatch)
	if err != nil || state != Quit {
		t.Fatalf("Run() = %s, %v", state, err)
	}
	if g.Player().MustFight {
		t.Fatalf("MustFight not reset at the start of the turn")
	}
}

func TestStepNormalisesInput(t *testing.T) {
	var out strings.Builder
	g := NewGame(NewConsoleSession(strings.NewReader(""), &out))
	g.Step(basicDispatch, "  NoRtH\r")
	if g.Player().Room != Hallway {
		t.Fatalf("player in %q, want Hallway", g.Player().Room)
	}
}

func TestStepAfterGameOverIsIgnored(t *testing.T) {
	var out strings.Builder
	g := NewGame(NewConsoleSession(strings.NewReader(""), &out))
	g.Step(basicDispatch, "quit")
	if got := g.Step(basicDispatch, "north"); got != Quit {
		t.Fatalf("Step() = %s, want quit", got)
	}
	if g.Player().Room != Entrance {
		t.Fatalf("player moved after quitting")
	}
}

func TestWelcomeShowsMapAndRumor(t *testing.T) {
	_, _, out := playScript(t, []string{"quit"})
	for _, want := range []string{
		"Room Map (Name, Item, Monster):",
		" - Library (Item: None, Monster: Goblin)",
		Rumor,
		"Welcome to Dungeon Escape!",
		"Commands:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("welcome missing %q in %q", want, out)
		}
	}

	_, _, out = playScript(t, []string{"quit"}, WithMapPreview(false))
	if strings.Contains(out, "Room Map") || strings.Contains(out, Rumor) {
		t.Fatalf("map printed with preview disabled: %q", out)
	}
}

func TestColorDisabledStripsEscapes(t *testing.T) {
	var out strings.Builder
	g := NewGame(NewConsoleSession(strings.NewReader("quit\n"), &out), WithColor(false))
	if _, err := g.Run(basicDispatch); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("escape sequences written with colour disabled")
	}
}

func TestGoblinNarratesInLibrary(t *testing.T) {
	_, _, out := playScript(t, []string{"north", "west", "quit"})
	if !strings.Contains(out, "picking its teeth") {
		t.Fatalf("missing Goblin narration in %q", out)
	}

	_, _, out = playScript(t, []string{"north", "west", "quit"}, WithMonsterScript(MonsterGoblin, ""))
	if strings.Contains(out, "picking its teeth") {
		t.Fatalf("Goblin narrated with its script disabled")
	}
}

func TestStateString(t *testing.T) {
	for state, want := range map[State]string{Playing: "playing", Dead: "dead", Won: "won", Quit: "quit"} {
		if got := state.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", int(state), got, want)
		}
	}
}
