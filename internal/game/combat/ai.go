package combat

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/condition"
)

// Action is what a creature does with its turn.
type Action int

const (
	ActWait Action = iota
	ActAttack
	ActAdvance
	ActFlee
	ActRanged
	ActCastSleep
	ActTeleport
)

var actionNames = [...]string{"wait", "attack", "advance", "flee", "ranged", "cast_sleep", "teleport"}

// String returns the action name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction converts an action name to an Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return ActWait, fmt.Errorf("combat: unknown action %q", name)
}

// Situation is what a creature knows when it picks an action.
type Situation struct {
	Self *Combatant
	// Target is the nearest opponent. Never nil when Decide is called.
	Target *Combatant
	// Distance is the Chebyshev distance to Target.
	Distance int
	Aura     condition.AuraKind
}

// CreatureAI picks creature actions.
type CreatureAI interface {
	Decide(s Situation, src Source) Action
}

// Odds, as 1-in-n, of the special creature actions.
const (
	teleportOdds  = 8
	rangedOdds    = 4
	castSleepOdds = 4
)

// creatureReach is the distance at which a creature can strike in melee.
const creatureReach = 1

// BasicAI is the built-in creature behaviour. Teleporters blink away one
// turn in eight; ranged creatures shoot one turn in four; sleep casters
// cast one turn in four unless magic is negated; badly wounded creatures
// flee unless they never do. Everything else closes in and attacks.
type BasicAI struct{}

// Decide implements CreatureAI.
func (BasicAI) Decide(s Situation, src Source) Action {
	tmpl := s.Self.Creature.Template
	switch {
	case tmpl.Teleports && src.Intn(teleportOdds) == 0:
		return ActTeleport
	case tmpl.Ranged && src.Intn(rangedOdds) == 0:
		return ActRanged
	case tmpl.CastsSleep && s.Aura != condition.AuraNegate && src.Intn(castSleepOdds) == 0:
		return ActCastSleep
	case s.Self.Creature.Wounded() && !tmpl.NoFlee:
		return ActFlee
	case s.Distance > creatureReach:
		return ActAdvance
	default:
		return ActAttack
	}
}
