package combat

import (
	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Table holds the encounter's fixed player and creature slots.
//
// Invariant: the slot arrays never resize. A player slot is nil when the
// member was not placed or fled; a creature slot is nil when empty or once
// its creature died or fled.
type Table struct {
	players   [arena.MaxParty]*Combatant
	creatures [arena.MaxCreatures]*Combatant
}

// Player returns player slot i, which may be nil.
func (t *Table) Player(i int) *Combatant { return t.players[i] }

// Creature returns creature slot i, which may be nil.
func (t *Table) Creature(i int) *Combatant { return t.creatures[i] }

// onMap reports whether a player slot holds a member still on the map.
func onMap(p *Combatant) bool { return p != nil && !p.removed }

// LivePlayers returns the players still on the map in slot order. Sleeping
// members are included; dead and fled members are not.
func (t *Table) LivePlayers() []*Combatant {
	var out []*Combatant
	for _, p := range t.players {
		if onMap(p) {
			out = append(out, p)
		}
	}
	return out
}

// LiveCreatures returns the creatures on the map in slot order.
func (t *Table) LiveCreatures() []*Combatant {
	var out []*Combatant
	for _, c := range t.creatures {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// PlayerAt returns the player on the map at c, or nil.
func (t *Table) PlayerAt(c grid.Coords) *Combatant {
	for _, p := range t.players {
		if onMap(p) && p.Coords() == c {
			return p
		}
	}
	return nil
}

// CreatureAt returns the creature at c, or nil.
func (t *Table) CreatureAt(c grid.Coords) *Combatant {
	for _, m := range t.creatures {
		if m != nil && m.Coords() == c {
			return m
		}
	}
	return nil
}

// occupied reports whether any combatant stands at c.
func (t *Table) occupied(c grid.Coords) bool {
	return t.PlayerAt(c) != nil || t.CreatureAt(c) != nil
}

// remove takes a combatant out of the encounter. Dead players keep their
// slot; fled players and all creatures vacate theirs.
func (t *Table) remove(c *Combatant) {
	switch {
	case c.Kind == KindCreature:
		if t.creatures[c.Slot] == c {
			t.creatures[c.Slot] = nil
		}
	case c.IsDead():
		c.removed = true
	default:
		if t.players[c.Slot] == c {
			t.players[c.Slot] = nil
		}
	}
}

// reset clears every slot.
func (t *Table) reset() {
	clear(t.players[:])
	clear(t.creatures[:])
}
