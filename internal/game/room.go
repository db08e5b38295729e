package game

import (
	"fmt"
	"io"
	"strings"
)

// RoomName identifies a room inside a Dungeon.
type RoomName string

// Direction is one of the four cardinal exits a room may have.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// Directions lists the cardinal directions in display order.
var Directions = []Direction{North, South, East, West}

var opposites = map[Direction]Direction{
	North: South,
	South: North,
	East:  West,
	West:  East,
}

// ParseDirection resolves user input to a cardinal direction.
func ParseDirection(input string) (Direction, bool) {
	dir := Direction(strings.ToLower(strings.TrimSpace(input)))
	_, ok := opposites[dir]
	return dir, ok
}

// Opposite returns the direction leading back, or "" for unknown values.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Room is a node in the dungeon graph. Exits hold the names of neighbouring
// rooms which the owning Dungeon resolves.
type Room struct {
	Name    RoomName
	Exits   map[Direction]RoomName
	Item    string
	Monster string
}

// NewRoom returns an empty room with no exits.
func NewRoom(name RoomName) *Room {
	return &Room{Name: name, Exits: make(map[Direction]RoomName)}
}

// Connect links r to other in direction dir and other back to r in the
// opposite direction. Anything but a cardinal direction is ignored.
func (r *Room) Connect(other *Room, dir Direction) bool {
	back, ok := opposites[dir]
	if !ok || other == nil {
		return false
	}
	if r.Exits == nil {
		r.Exits = make(map[Direction]RoomName)
	}
	if other.Exits == nil {
		other.Exits = make(map[Direction]RoomName)
	}
	r.Exits[dir] = other.Name
	other.Exits[back] = r.Name
	return true
}

// Exit reports the room reached by leaving in dir.
func (r *Room) Exit(dir Direction) (RoomName, bool) {
	name, ok := r.Exits[dir]
	return name, ok
}

// Describe writes what the player sees on entering the room.
func (r *Room) Describe(w io.Writer) {
	fmt.Fprintf(w, "\nYou are in the %s.\n", HighlightRoomName(r.Name))
	if r.Item != "" {
		fmt.Fprintf(w, "You see a %s here.\n", HighlightItemName(r.Item))
	}
	if r.Monster != "" {
		fmt.Fprintf(w, "A wild %s appears!\n", HighlightMonsterName(r.Monster))
	}
	if len(r.Exits) > 0 {
		fmt.Fprintf(w, "Exits: %s\n", Style(ExitList(r), AnsiGreen))
	}
}

// Preview summarises the room's contents on a single line.
func (r *Room) Preview() string {
	return fmt.Sprintf("%s (Item: %s, Monster: %s)", r.Name, orNone(r.Item), orNone(r.Monster))
}

// ExitList renders the exits for a room in cardinal order.
func ExitList(r *Room) string {
	if len(r.Exits) == 0 {
		return "none"
	}
	names := make([]string, 0, len(r.Exits))
	for _, dir := range Directions {
		if _, ok := r.Exits[dir]; ok {
			names = append(names, string(dir))
		}
	}
	return strings.Join(names, ", ")
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
