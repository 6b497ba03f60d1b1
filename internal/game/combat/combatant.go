package combat

import (
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// Kind distinguishes player combatants from creatures.
type Kind int

const (
	KindPlayer Kind = iota
	KindCreature
)

// String returns "player" or "creature".
func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "creature"
}

// Combatant is one occupant of an encounter slot.
//
// Invariant: Kind == KindPlayer iff Member != nil; Kind == KindCreature iff
// Creature != nil.
type Combatant struct {
	Kind Kind
	// Slot is the index in the player or creature slot array.
	Slot     int
	Member   *party.Member
	Creature *creature.Instance

	// removed is set once a dead player has been taken off the map. Its slot
	// keeps the back-reference into the roster.
	removed bool
}

func newPlayer(slot int, m *party.Member) *Combatant {
	return &Combatant{Kind: KindPlayer, Slot: slot, Member: m}
}

func newCreature(slot int, inst *creature.Instance) *Combatant {
	return &Combatant{Kind: KindCreature, Slot: slot, Creature: inst}
}

// Name returns the display name.
func (c *Combatant) Name() string {
	if c.Kind == KindPlayer {
		return c.Member.Name
	}
	return c.Creature.Name()
}

// Coords returns the combatant's position.
func (c *Combatant) Coords() grid.Coords {
	if c.Kind == KindPlayer {
		return c.Member.Coords
	}
	return c.Creature.Coords
}

// SetCoords moves the combatant.
func (c *Combatant) SetCoords(to grid.Coords) {
	if c.Kind == KindPlayer {
		c.Member.Coords = to
		return
	}
	c.Creature.Coords = to
}

// Status returns the current status.
func (c *Combatant) Status() condition.Status {
	if c.Kind == KindPlayer {
		return c.Member.Status
	}
	return c.Creature.Status
}

// IsDead reports whether the combatant has died.
func (c *Combatant) IsDead() bool { return c.Status() == condition.Dead }

// IsDisabled reports whether the combatant is dead or asleep.
func (c *Combatant) IsDisabled() bool { return c.Status().Disabled() }

// AttackBonus returns the bonus added to the attacker's hit roll.
func (c *Combatant) AttackBonus() int {
	if c.Kind == KindPlayer {
		return c.Member.AttackBonus()
	}
	return c.Creature.Template.AttackBonus
}

// Defense returns the value a hit roll must exceed.
func (c *Combatant) Defense() int {
	if c.Kind == KindPlayer {
		return c.Member.Defense
	}
	return c.Creature.Template.Defense
}

// RollDamage rolls the damage this combatant deals on a hit.
func (c *Combatant) RollDamage(src dice.Source) int {
	if c.Kind == KindPlayer {
		return c.Member.RollDamage(src)
	}
	return dice.Roll(c.Creature.Template.DamageDice(), src).Total()
}

// PutToSleep puts the combatant to sleep. Returns false if it was already
// asleep or dead.
func (c *Combatant) PutToSleep() bool {
	if c.Kind == KindPlayer {
		return c.Member.PutToSleep()
	}
	return c.Creature.PutToSleep()
}

// WakeUp wakes a sleeping combatant.
func (c *Combatant) WakeUp() {
	if c.Kind == KindPlayer {
		c.Member.WakeUp()
		return
	}
	c.Creature.WakeUp()
}

// Poison poisons the combatant. Returns false if it could not be poisoned.
func (c *Combatant) Poison() bool {
	if c.Kind == KindPlayer {
		return c.Member.Poison()
	}
	return c.Creature.Poison()
}

// applyDamage removes hit points and reports whether the combatant survived.
func (c *Combatant) applyDamage(amount int) bool {
	if c.Kind == KindPlayer {
		return c.Member.ApplyDamage(amount)
	}
	return c.Creature.ApplyDamage(amount)
}

// opposes reports whether o is on the other side.
func (c *Combatant) opposes(o *Combatant) bool { return c.Kind != o.Kind }
