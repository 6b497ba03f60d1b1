package party

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/weapon"
)

// MaxMembers is the largest party that fits an encounter.
const MaxMembers = 8

// KarmaAction names a deed that shifts the party's karma.
type KarmaAction int

const (
	KarmaKilledEvil KarmaAction = iota
	KarmaFledEvil
	KarmaFledGood
	KarmaSparedGood
)

// String returns the action name.
func (a KarmaAction) String() string {
	switch a {
	case KarmaKilledEvil:
		return "killed_evil"
	case KarmaFledEvil:
		return "fled_evil"
	case KarmaFledGood:
		return "fled_good"
	case KarmaSparedGood:
		return "spared_good"
	default:
		return fmt.Sprintf("karma(%d)", int(a))
	}
}

var karmaDelta = map[KarmaAction]int{
	KarmaKilledEvil: 5,
	KarmaFledEvil:   -2,
	KarmaFledGood:   2,
	KarmaSparedGood: 1,
}

// Poisoned members lose this many hit points each round.
const poisonDamage = 2

// Party is the persistent roster. It is not safe for concurrent use; each
// simulated adventure owns its own Party.
type Party struct {
	members      []*Member
	hands        *weapon.Weapon
	armory       map[string]int
	karma        int
	karmaLog     []KarmaAction
	food         int
	activePlayer int
	rounds       int
}

// New creates a party.
//
// Precondition: hands is non-nil; 0 < len(members) <= MaxMembers.
// Postcondition: ActivePlayer() == -1; members without a weapon wield hands.
func New(hands *weapon.Weapon, food int, members ...*Member) *Party {
	if len(members) == 0 || len(members) > MaxMembers {
		panic(fmt.Sprintf("party: New precondition violated: %d members", len(members)))
	}
	for _, m := range members {
		if m.Weapon == nil {
			m.Weapon = hands
		}
	}
	return &Party{
		members:      members,
		hands:        hands,
		armory:       make(map[string]int),
		food:         food,
		activePlayer: -1,
	}
}

// Size returns the number of members.
func (p *Party) Size() int { return len(p.members) }

// Member returns member i.
//
// Precondition: 0 <= i < Size().
func (p *Party) Member(i int) *Member { return p.members[i] }

// Members returns the roster in order.
func (p *Party) Members() []*Member { return p.members }

// AdjustKarma records a deed.
func (p *Party) AdjustKarma(a KarmaAction) {
	p.karma += karmaDelta[a]
	p.karmaLog = append(p.karmaLog, a)
}

// Karma returns the accumulated karma.
func (p *Party) Karma() int { return p.karma }

// KarmaLog returns every deed recorded, oldest first.
func (p *Party) KarmaLog() []KarmaAction { return p.karmaLog }

// AdjustFood changes the food supply, flooring at zero.
func (p *Party) AdjustFood(delta int) {
	p.food = max(0, p.food+delta)
}

// Food returns the remaining food.
func (p *Party) Food() int { return p.food }

// EndTurn runs end-of-round upkeep: poisoned members take damage.
//
// Postcondition: Rounds() increases by one.
func (p *Party) EndTurn() {
	p.rounds++
	for _, m := range p.members {
		if m.Status == condition.Poisoned {
			m.ApplyDamage(poisonDamage)
		}
	}
}

// Rounds returns how many times EndTurn ran.
func (p *Party) Rounds() int { return p.rounds }

// IsDead reports whether every member is dead.
func (p *Party) IsDead() bool {
	for _, m := range p.members {
		if !m.IsDead() {
			return false
		}
	}
	return true
}

// ActivePlayer returns the member the player has locked as active, or -1.
func (p *Party) ActivePlayer() int { return p.activePlayer }

// SetActivePlayer locks member i as active; -1 clears the lock.
//
// Postcondition: Returns false, leaving the lock unchanged, for i outside [-1, Size()).
func (p *Party) SetActivePlayer(i int) bool {
	if i < -1 || i >= len(p.members) {
		return false
	}
	p.activePlayer = i
	return true
}

// Stock adds n spare copies of weaponID to the armory.
func (p *Party) Stock(weaponID string, n int) {
	p.armory[weaponID] += n
}

// Spares returns the number of spare copies of weaponID.
func (p *Party) Spares(weaponID string) int { return p.armory[weaponID] }

// LoseWeapon consumes member i's readied weapon. A spare from the armory
// replaces it if one exists; otherwise the member falls back to bare hands.
//
// Precondition: 0 <= i < Size().
// Postcondition: Returns false when no spare was left.
func (p *Party) LoseWeapon(i int) bool {
	m := p.members[i]
	if n := p.armory[m.Weapon.ID]; n > 0 {
		p.armory[m.Weapon.ID] = n - 1
		return true
	}
	m.Weapon = p.hands
	return false
}
