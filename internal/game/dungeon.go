package game

import (
	"errors"
	"fmt"
)

const (
	Entrance     RoomName = "Entrance"
	Hallway      RoomName = "Hallway"
	Armory       RoomName = "Armory"
	Library      RoomName = "Library"
	TreasureRoom RoomName = "Treasure Room"
)

const (
	ItemTorch     = "Torch"
	ItemSword     = "Sword"
	ItemGold      = "Gold"
	MonsterGoblin = "Goblin"
)

// Rumor hints at the Goblin before the first turn.
const Rumor = "Rumor: The Treasure Room lies beyond the Goblin guarding the Library..."

var (
	// ErrNoItem indicates there is nothing to pick up.
	ErrNoItem = errors.New("No item here.")
	// ErrNoMonster indicates there is nothing to fight.
	ErrNoMonster = errors.New("No monster here.")
)

// Dungeon is the registry of rooms. Rooms refer to each other by name and
// every lookup goes through the registry.
type Dungeon struct {
	rooms    map[RoomName]*Room
	order    []RoomName
	entrance RoomName
}

// NewDungeon builds the fixed five-room layout.
func NewDungeon() *Dungeon {
	entrance := NewRoom(Entrance)
	hallway := NewRoom(Hallway)
	armory := NewRoom(Armory)
	library := NewRoom(Library)
	treasure := NewRoom(TreasureRoom)

	entrance.Connect(hallway, North)
	hallway.Connect(armory, East)
	hallway.Connect(library, West)
	library.Connect(treasure, North)

	hallway.Item = ItemTorch
	armory.Item = ItemSword
	treasure.Item = ItemGold
	library.Monster = MonsterGoblin

	return NewDungeonWithRooms(Entrance, entrance, hallway, armory, library, treasure)
}

// NewDungeonWithRooms registers rooms in the given order. entrance is both
// the starting room and the room the treasure must be returned to.
func NewDungeonWithRooms(entrance RoomName, rooms ...*Room) *Dungeon {
	d := &Dungeon{
		rooms:    make(map[RoomName]*Room, len(rooms)),
		entrance: entrance,
	}
	for _, room := range rooms {
		if _, exists := d.rooms[room.Name]; !exists {
			d.order = append(d.order, room.Name)
		}
		d.rooms[room.Name] = room
	}
	return d
}

// Entrance returns the starting room's name.
func (d *Dungeon) Entrance() RoomName {
	return d.entrance
}

// Room looks up a room by name.
func (d *Dungeon) Room(name RoomName) (*Room, bool) {
	room, ok := d.rooms[name]
	return room, ok
}

// Rooms returns the rooms in registration order.
func (d *Dungeon) Rooms() []*Room {
	out := make([]*Room, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.rooms[name])
	}
	return out
}

// Map returns one preview line per room.
func (d *Dungeon) Map() []string {
	lines := make([]string, 0, len(d.order))
	for _, room := range d.Rooms() {
		lines = append(lines, room.Preview())
	}
	return lines
}

func (d *Dungeon) currentRoom(p *Player) (*Room, error) {
	room, ok := d.rooms[p.Room]
	if !ok {
		return nil, fmt.Errorf("unknown room: %s", p.Room)
	}
	return room, nil
}

// Move walks the player through the exit in dir once every move guard
// agrees. The room the player ends up in is returned.
func (d *Dungeon) Move(p *Player, dir Direction) (*Room, error) {
	from, err := d.currentRoom(p)
	if err != nil {
		return nil, err
	}
	name, ok := from.Exit(dir)
	if !ok {
		return from, ErrNoExit
	}
	to, ok := d.rooms[name]
	if !ok {
		return from, fmt.Errorf("unknown room: %s", name)
	}
	if err := checkMove(p, from, to); err != nil {
		return from, err
	}
	p.Room = to.Name
	p.Visit(to.Name)
	return to, nil
}

// TakeItem moves the item lying in the player's room into their inventory.
func (d *Dungeon) TakeItem(p *Player) (string, error) {
	room, err := d.currentRoom(p)
	if err != nil {
		return "", err
	}
	if room.Item == "" {
		return "", ErrNoItem
	}
	item := room.Item
	p.Inventory = append(p.Inventory, item)
	room.Item = ""
	return item, nil
}

// FightResult describes how a fight ended.
type FightResult struct {
	Monster string
	Won     bool
}

// Fight resolves a fight against the monster in the player's room. Holding
// the Sword wins and removes the monster; otherwise the player dies and the
// monster stays.
func (d *Dungeon) Fight(p *Player) (FightResult, error) {
	room, err := d.currentRoom(p)
	if err != nil {
		return FightResult{}, err
	}
	if room.Monster == "" {
		return FightResult{}, ErrNoMonster
	}
	result := FightResult{Monster: room.Monster}
	if p.Has(ItemSword) {
		room.Monster = ""
		p.MustFight = false
		result.Won = true
		return result, nil
	}
	p.Alive = false
	return result, nil
}

// Escaped reports whether the player stands in the entrance holding the Gold.
func (d *Dungeon) Escaped(p *Player) bool {
	return p.Room == d.entrance && p.Has(ItemGold)
}
