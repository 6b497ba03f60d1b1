package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// deathDelay is the pause, in outer turns, before the death sequence starts.
const deathDelay = 5

// Begin places the combatants and hands the first turn to the first player
// able to act. When nobody can act, outside camping, the turn is finished at
// once so creatures move and a lost encounter ends without input.
//
// Precondition: Phase() == PhaseCreated.
// Postcondition: Phase() is PhaseActive, or PhaseClosed if the encounter
// ended during the fast-forward.
func (e *Encounter) Begin() {
	if e.phase != PhaseCreated {
		panic(fmt.Sprintf("combat: Begin precondition violated: phase %v", e.phase))
	}
	e.phase = PhaseActive
	e.turn = AwaitingPlayer

	if e.placeParty {
		e.placePartyMembers()
	}
	if e.placeCreatures {
		e.placeCreaturesOnMap()
	}

	if v := e.m.AltarRoom(); v != arena.VirtueNone {
		e.out.Message(fmt.Sprintf("The Altar Room of %s", v.Title()))
		e.world.EnterAltarRoom(v)
	}
	if e.showMessage && e.placeCreatures && e.winOrLose {
		e.out.Message("**** COMBAT ****")
	}
	if !e.camping {
		e.out.Sound(SoundMusic)
	}

	fields := []zap.Field{
		zap.Int("players", len(e.table.LivePlayers())),
		zap.Int("creatures", len(e.table.LiveCreatures())),
		zap.Bool("win_or_lose", e.winOrLose),
		zap.Bool("dungeon_room", e.m.IsDungeonRoom()),
	}
	if e.trigger != nil {
		fields = append(fields, zap.String("trigger", e.trigger.Template.ID))
	}
	e.logger.Info("encounter begins", fields...)

	ready := false
	for i := range arena.MaxParty {
		if e.setActivePlayer(i) {
			ready = true
			break
		}
	}
	if !e.camping && !ready {
		e.FinishTurn()
	}
}

// placePartyMembers puts every living member on its start coordinates.
func (e *Encounter) placePartyMembers() {
	for i := 0; i < e.roster.Size() && i < arena.MaxParty; i++ {
		m := e.roster.Member(i)
		if m.IsDead() {
			continue
		}
		m.Coords = e.m.PlayerStart[i]
		e.table.players[i] = newPlayer(i, m)
	}
}

// placeCreaturesOnMap instantiates the spawn table on the creature starts.
func (e *Encounter) placeCreaturesOnMap() {
	for i, tmpl := range e.spawns {
		if tmpl == nil {
			continue
		}
		inst := creature.NewInstance(tmpl)
		inst.Coords = e.m.CreatureStart[i]
		e.table.creatures[i] = newCreature(i, inst)
	}
}

// setActivePlayer moves the focus to slot i if that player can act.
func (e *Encounter) setActivePlayer(i int) bool {
	p := e.table.players[i]
	if p == nil || p.removed || p.IsDisabled() {
		return false
	}
	e.focus = i
	e.turn = AwaitingPlayer
	e.out.Message(fmt.Sprintf("%s with %s", p.Name(), p.Member.Weapon.Name))
	return true
}

// End closes the encounter and returns control to the parent map.
//
// A wiped party removes the triggering creature and starts the death
// sequence. Otherwise the party leaves combat; when the encounter resolves
// itself, a win awards karma and loot and a retreat costs karma if
// adjustKarma is set. Leaving a dungeon room steps the party out through the
// recorded exit, and leaving an altar room uses the portal in that direction.
//
// Postcondition: Phase() == PhaseClosed. Calling End on a closed encounter
// does nothing.
func (e *Encounter) End(adjustKarma bool) {
	if e.phase != PhaseActive {
		return
	}
	e.phase = PhaseEnding
	e.turn = Terminal

	if e.roster.IsDead() {
		if e.trigger != nil {
			e.world.RemoveObject(e.trigger.ObjectID)
		}
		e.world.StartDeath(deathDelay)
		e.close(ResultDied)
		return
	}

	// The parent map drops the combat state on exit, so read it first.
	won := e.isWon()

	e.world.ExitToParentMap()
	e.out.Sound(SoundMusic)

	if e.winOrLose {
		if won {
			if e.trigger != nil {
				if e.trigger.Template.IsEvil() {
					e.roster.AdjustKarma(party.KarmaKilledEvil)
				}
				e.awardLoot()
			}
			e.out.Message("Victory!")
		} else if !e.roster.IsDead() {
			switch {
			case adjustKarma && e.trigger != nil && e.trigger.Template.IsEvil():
				e.out.Message("Battle is lost!")
				e.roster.AdjustKarma(party.KarmaFledEvil)
			case adjustKarma && e.trigger != nil && e.trigger.Template.IsGood():
				e.roster.AdjustKarma(party.KarmaFledGood)
			}
		}
	}

	if e.m.IsDungeonRoom() {
		e.out.Message("Leave Room!")
		if e.m.AltarRoom() != arena.VirtueNone {
			switch e.exitDir {
			case grid.DirNorth, grid.DirEast, grid.DirSouth, grid.DirWest:
				e.world.UsePortal(e.exitDir)
			case grid.DirNone:
			default:
				panic(fmt.Sprintf("combat: invalid exit direction %v leaving altar room", e.exitDir))
			}
		}
		if e.exitDir != grid.DirNone {
			e.world.Face(e.exitDir)
			e.world.Advance()
		}
	}

	if e.trigger != nil {
		e.world.RemoveObject(e.trigger.ObjectID)
	}

	switch {
	case e.camping && !e.placeCreatures:
		e.close(ResultRested)
	case won && (e.placeCreatures || e.winOrLose):
		e.close(ResultWon)
	case !adjustKarma:
		e.close(ResultAborted)
	default:
		e.close(ResultFled)
	}

	if !e.world.InCombat() {
		e.world.FinishTurn()
	}
}

// close records the result and clears the participation records.
func (e *Encounter) close(r Result) {
	e.result = r
	e.phase = PhaseClosed
	e.logger.Info("encounter ends",
		zap.Stringer("result", r),
		zap.Int("rounds", e.rounds),
	)
	e.table.reset()
}

// awardLoot leaves a chest where the defeated creature stood, or a ship in
// place of a defeated pirate ship.
func (e *Encounter) awardLoot() {
	tmpl := e.trigger.Template
	at := e.trigger.Coords
	ground := e.world.GroundAt(at)
	switch {
	case tmpl.LeavesChest && ground != nil && ground.Walkable &&
		(e.loc.Parent != ContextDungeon || ground.DungeonFloor):
		id := e.world.PlaceObject(arena.TileChest, at, grid.DirNone)
		e.logger.Debug("chest awarded", zap.String("object", id), zap.Stringer("at", at))
	case tmpl.PirateShip || tmpl.Tile == arena.TilePirateShip:
		id := e.world.PlaceObject(arena.TileShip, at, e.trigger.Facing)
		e.logger.Debug("ship awarded", zap.String("object", id), zap.Stringer("at", at))
	}
}
