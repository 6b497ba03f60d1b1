// Package party defines the persistent party roster that combat borrows its
// player combatants from.
package party

import (
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/weapon"
)

// AlwaysHitBonus is the attack bonus that makes every roll exceed any defense.
const AlwaysHitBonus = 255

// Member is one adventurer in the party.
type Member struct {
	Name   string
	Status condition.Status
	HP     int
	MaxHP  int
	// Dex doubles as the attack bonus.
	Dex     int
	Defense int
	Weapon  *weapon.Weapon
	XP      int
	// Coords is the member's position while in combat.
	Coords grid.Coords
}

// IsDead reports whether the member is dead.
func (m *Member) IsDead() bool { return m.Status == condition.Dead }

// IsDisabled reports whether the member cannot act (dead or asleep).
func (m *Member) IsDisabled() bool { return m.Status.Disabled() }

// AttackBonus returns the bonus added to hit rolls.
//
// Postcondition: Returns AlwaysHitBonus for always-hit weapons or Dex >= 40, else Dex.
func (m *Member) AttackBonus() int {
	if (m.Weapon != nil && m.Weapon.AlwaysHits) || m.Dex >= 40 {
		return AlwaysHitBonus
	}
	return m.Dex
}

// RollDamage rolls the member's weapon damage.
//
// Precondition: m.Weapon is non-nil and validated.
func (m *Member) RollDamage(src dice.Source) int {
	return dice.Roll(m.Weapon.DamageDice(), src).Total()
}

// ApplyDamage removes amount hit points.
//
// Precondition: amount >= 0.
// Postcondition: Returns false, with Status Dead and HP 0, when the member was killed.
// Damage to a dead member is ignored and returns false.
func (m *Member) ApplyDamage(amount int) bool {
	if m.IsDead() {
		return false
	}
	m.HP -= amount
	if m.HP <= 0 {
		m.HP = 0
		m.Status = condition.Dead
		return false
	}
	return true
}

// PutToSleep puts a living member to sleep. Returns false if already asleep or dead.
func (m *Member) PutToSleep() bool {
	if m.Status.Disabled() {
		return false
	}
	m.Status = condition.Sleeping
	return true
}

// WakeUp wakes a sleeping member.
func (m *Member) WakeUp() {
	if m.Status == condition.Sleeping {
		m.Status = condition.Good
	}
}

// Poison poisons a living member that is not already poisoned.
func (m *Member) Poison() bool {
	if m.Status == condition.Poisoned || m.IsDead() {
		return false
	}
	m.Status = condition.Poisoned
	return true
}

// AwardXP adds experience for a kill.
func (m *Member) AwardXP(xp int) {
	m.XP += xp
}

// ApplyEffect applies the effect of the tile the member stands on. Fire and
// lava burn for 16 to 47 points, sleep fields put the member to sleep, and
// poison poisons. Electricity has no standing effect.
//
// Postcondition: Returns false when the effect killed the member.
func (m *Member) ApplyEffect(e grid.Effect, src dice.Source) bool {
	switch e {
	case grid.EffectFire, grid.EffectLava:
		return m.ApplyDamage(16 + src.Intn(32))
	case grid.EffectSleep:
		m.PutToSleep()
	case grid.EffectPoison, grid.EffectPoisonField:
		m.Poison()
	}
	return !m.IsDead()
}
