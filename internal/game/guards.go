package game

import "errors"

var (
	// ErrNoExit indicates the current room has no exit in that direction.
	ErrNoExit = errors.New("You can't go that way!")
	// ErrTooDark indicates the Treasure Room cannot be entered without light.
	ErrTooDark = errors.New("It's too dark to enter the Treasure Room without a Torch!")
	// ErrGuarded indicates a monster bars the way until it is defeated.
	ErrGuarded = errors.New("The Goblin blocks your path to the Treasure Room! You must defeat it to proceed.")
)

// moveGuard vets a move before it is committed. A non-nil error refuses the
// move and leaves the player where they are.
type moveGuard func(p *Player, from, to *Room) error

// moveGuards run in order; the first refusal wins.
var moveGuards = []moveGuard{
	requireTorch,
	blockWhileGuarded,
}

func requireTorch(p *Player, _, to *Room) error {
	if to.Name == TreasureRoom && !p.Has(ItemTorch) {
		return ErrTooDark
	}
	return nil
}

func blockWhileGuarded(p *Player, from, to *Room) error {
	if from.Name == Library && to.Name == TreasureRoom && from.Monster != "" {
		p.MustFight = true
		return ErrGuarded
	}
	return nil
}

func checkMove(p *Player, from, to *Room) error {
	for _, guard := range moveGuards {
		if err := guard(p, from, to); err != nil {
			return err
		}
	}
	return nil
}
