package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Odds, as 1-in-n, used by the scheduler.
const (
	quicknessOdds = 2
	wakeOdds      = 8
)

// Rolls for the tiles creatures stand on: fields burn for up to
// fieldDamageRoll points and put a creature to sleep when a sleepRoll draw
// reaches its hit points.
const (
	fieldDamageRoll = 127
	sleepRoll       = 255
)

// FinishTurn ends the focused player's turn and advances the focus to the
// next player able to act, resolving a round of creature actions each time
// the focus wraps. The encounter ends here when the party is gone, or, for
// self-resolving encounters, when the creatures are.
//
// Postcondition: Phase() is PhaseClosed, or TurnState() is AwaitingPlayer
// with the focus on a player that is on the map and not disabled.
func (e *Encounter) FinishTurn() {
	if e.phase != PhaseActive {
		return
	}
	if e.isLost() {
		e.End(true)
		return
	}
	if e.winOrLose && e.isWon() {
		e.End(true)
		return
	}

	player := e.focusedOnMap()
	if player != nil {
		e.applyMemberEffect(player)
	}

	quick := e.aura.Is(condition.AuraQuickness) && player != nil && e.src.Intn(quicknessOdds) == 0
	if quick && !player.IsDisabled() {
		e.m.PassTurn()
		e.setActivePlayer(e.focus)
		return
	}

	e.turn = AdvancingFocus
	for {
		e.m.PassTurn()
		if player != nil {
			if player.Status() == condition.Sleeping && e.src.Intn(wakeOdds) == 0 {
				player.WakeUp()
			}
			// a member killed by its standing tile eats nothing
			if !player.IsDead() {
				e.roster.AdjustFood(-1)
			}
		}

		e.focus++
		if e.focus >= e.roster.Size() {
			e.focus = 0
			if e.resolveRound() {
				return
			}
		}

		player = e.focusedOnMap()
		if !e.skipFocus(player) {
			break
		}
	}
	e.setActivePlayer(e.focus)
}

// focusedOnMap returns the focused player if it is still on the map.
func (e *Encounter) focusedOnMap() *Combatant {
	if p := e.table.players[e.focus]; onMap(p) {
		return p
	}
	return nil
}

// skipFocus reports whether the focus should move past p. A locked active
// player that can act takes every turn.
func (e *Encounter) skipFocus(p *Combatant) bool {
	if p == nil || p.IsDisabled() {
		return true
	}
	ap := e.roster.ActivePlayer()
	if ap < 0 || ap >= len(e.table.players) || ap == e.focus {
		return false
	}
	locked := e.table.players[ap]
	return onMap(locked) && !locked.IsDisabled()
}

// resolveRound runs the end-of-round upkeep and the creature pass. It
// reports whether the encounter ended.
func (e *Encounter) resolveRound() bool {
	e.turn = RoundResolution
	e.rounds++

	e.roster.EndTurn()
	e.reapPlayers()
	e.aura.PassTurn()

	e.moveCreatures()
	if e.phase != PhaseActive {
		return true
	}
	e.applyCreatureTileEffects()

	e.logger.Debug("round resolved",
		zap.Int("round", e.rounds),
		zap.Int("players", len(e.table.LivePlayers())),
		zap.Int("creatures", len(e.table.LiveCreatures())),
		zap.Stringer("aura", e.aura.Kind()),
	)

	if e.isLost() {
		e.End(true)
		return true
	}
	if e.winOrLose && e.isWon() {
		e.End(true)
		return true
	}
	e.turn = AdvancingFocus
	return false
}

// moveCreatures gives every creature one action in slot order. An action can
// remove creatures, including the actor; the index is held back whenever the
// creature at it changed so the next creature is not skipped.
func (e *Encounter) moveCreatures() {
	live := e.table.LiveCreatures()
	for i := 0; i < len(live); i++ {
		m := live[i]
		e.creatureAct(m)
		if e.phase != PhaseActive {
			return
		}
		live = e.table.LiveCreatures()
		if i < len(live) && live[i] != m {
			i--
		}
	}
}

// applyCreatureTileEffects applies the tile under each creature.
func (e *Encounter) applyCreatureTileEffects() {
	for _, m := range e.table.LiveCreatures() {
		inst := m.Creature
		effect := e.m.EffectAt(m.Coords())
		if inst.Resists(effect) {
			continue
		}
		switch effect {
		case grid.EffectSleep:
			if e.src.Intn(sleepRoll) >= inst.HP {
				inst.PutToSleep()
			}
		case grid.EffectFire, grid.EffectLava, grid.EffectPoisonField:
			e.dealDamage(nil, m, e.src.Intn(fieldDamageRoll))
		}
	}
}

// applyMemberEffect applies the tile under a player.
func (e *Encounter) applyMemberEffect(p *Combatant) {
	effect := e.m.EffectAt(p.Coords())
	if effect == grid.EffectNone {
		return
	}
	if !p.Member.ApplyEffect(effect, e.src) {
		e.playerKilled(p)
	}
}

// reapPlayers takes members killed outside an attack, such as by poison,
// off the map.
func (e *Encounter) reapPlayers() {
	for _, p := range e.table.players {
		if onMap(p) && p.IsDead() {
			e.playerKilled(p)
		}
	}
}
