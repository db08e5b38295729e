package game

import (
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Player is the single adventurer exploring the dungeon.
type Player struct {
	Room      RoomName
	Inventory []string
	Alive     bool
	// MustFight is raised when a guarding monster blocks the way. The game
	// loop clears it at the start of every turn.
	MustFight bool

	visited *mapset.Set[RoomName]
}

// NewPlayer places a living player in start and records it as visited.
func NewPlayer(start RoomName) *Player {
	p := &Player{Room: start, Alive: true}
	p.Visit(start)
	return p
}

// Has reports whether the player carries item.
func (p *Player) Has(item string) bool {
	return slices.Contains(p.Inventory, item)
}

// Visit records room in the visited set.
func (p *Player) Visit(room RoomName) {
	if p.visited == nil {
		set := mapset.New[RoomName]()
		p.visited = &set
	}
	p.visited.Put(room)
}

// Visited returns the visited room names in sorted order.
func (p *Player) Visited() []RoomName {
	if p.visited == nil {
		return nil
	}
	names := make([]RoomName, 0, p.visited.Size())
	p.visited.Each(func(name RoomName) {
		names = append(names, name)
	})
	slices.Sort(names)
	return names
}
