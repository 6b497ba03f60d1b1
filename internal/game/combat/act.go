package combat

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
	"github.com/cory-johannsen/skirmish/internal/game/party"
)

// negateDuration is how many rounds a negating creature suppresses magic.
const negateDuration = 2

// teleportTries bounds the search for a free cell to teleport into.
const teleportTries = 32

// creatureAct runs one creature's turn.
func (e *Encounter) creatureAct(m *Combatant) {
	inst := m.Creature
	if inst.Status == condition.Sleeping && e.src.Intn(wakeOdds) == 0 {
		inst.WakeUp()
	}
	if inst.Status == condition.Sleeping {
		return
	}
	if inst.Template.Negates {
		e.aura.Set(condition.AuraNegate, negateDuration)
	}

	target, dist := e.nearestOpponent(m, e.aura.Is(condition.AuraJinx))
	if target == nil {
		return
	}
	act := e.ai.Decide(Situation{Self: m, Target: target, Distance: dist, Aura: e.aura.Kind()}, e.src)
	e.logger.Debug("creature acts",
		zap.String("creature", inst.ID),
		zap.String("name", m.Name()),
		zap.Stringer("action", act),
		zap.String("target", target.Name()),
		zap.Int("distance", dist),
	)

	switch act {
	case ActAttack:
		if dist > creatureReach {
			e.advance(m, target)
			return
		}
		e.creatureMelee(m, target)
	case ActAdvance:
		e.advance(m, target)
	case ActFlee:
		e.flee(m, target)
	case ActRanged:
		e.creatureRanged(m, target)
	case ActCastSleep:
		e.castSleep()
	case ActTeleport:
		e.teleport(m)
	}
}

// nearestOpponent returns the closest combatant m would attack. A jinxed
// creature attacks anyone but itself.
func (e *Encounter) nearestOpponent(m *Combatant, jinxed bool) (*Combatant, int) {
	var best *Combatant
	bestDist := 0
	consider := func(o *Combatant) {
		if o == m {
			return
		}
		if d := m.Coords().DistanceTo(o.Coords()); best == nil || d < bestDist {
			best, bestDist = o, d
		}
	}
	for _, p := range e.table.LivePlayers() {
		consider(p)
	}
	if jinxed {
		for _, c := range e.table.LiveCreatures() {
			consider(c)
		}
	}
	return best, bestDist
}

// creatureMelee resolves a creature's melee attack on an adjacent target.
func (e *Encounter) creatureMelee(m, target *Combatant) {
	at := target.Coords()
	if !AttackHit(e.src, m.AttackBonus(), target.Defense()) {
		e.out.Flash(at, arena.TileMissFlash, 1)
		return
	}
	e.out.Sound(SoundPCStruck)
	e.out.Flash(at, arena.TileHitFlash, 4)
	e.dealDamage(m, target, m.RollDamage(e.src))
}

// creatureRanged fires along the line toward target.
func (e *Encounter) creatureRanged(m, target *Combatant) {
	dir := grid.Toward(m.Coords(), target.Coords())
	if dir == grid.DirNone {
		return
	}
	e.out.Sound(SoundNPCAttack)
	rng := max(m.Creature.Template.Range, 1)
	path := grid.TracePath(m.Coords(), dir, 1, rng, e.m.Bounds(), e.m.AttackOver, false)
	for _, c := range path {
		if e.rangedAttack(c, m) {
			return
		}
	}
	if len(path) > 0 {
		e.rangedMiss(path[len(path)-1], m)
	}
}

// castSleep puts each player on the map to sleep with even odds.
func (e *Encounter) castSleep() {
	e.out.Message("Sleep!")
	e.out.Sound(SoundMagic)
	for _, p := range e.table.LivePlayers() {
		if e.src.Intn(2) == 0 {
			p.PutToSleep()
		}
	}
}

// teleport moves m to a random free cell.
func (e *Encounter) teleport(m *Combatant) {
	b := e.m.Bounds()
	for range teleportTries {
		c := grid.Coords{X: e.src.Intn(b.Width), Y: e.src.Intn(b.Height), Z: m.Coords().Z}
		if e.m.Walkable(c) && !e.table.occupied(c) {
			m.SetCoords(c)
			return
		}
	}
}

// advance steps m toward target along the longer axis, falling back to the
// other axis when blocked.
func (e *Encounter) advance(m, target *Combatant) {
	for _, d := range approach(m.Coords(), target.Coords()) {
		if e.stepCreature(m, d) {
			return
		}
	}
}

// flee steps m away from target. A creature that steps off the map has fled.
func (e *Encounter) flee(m, target *Combatant) {
	for _, d := range approach(m.Coords(), target.Coords()) {
		away := d.Reverse()
		if !e.m.Bounds().Contains(m.Coords().Move(away)) {
			e.out.Message(m.Name() + " Flees!")
			if m.Creature.Template.IsGood() {
				e.roster.AdjustKarma(party.KarmaSparedGood)
			}
			e.table.remove(m)
			e.logger.Debug("creature fled", zap.String("creature", m.Creature.ID))
			return
		}
		if e.stepCreature(m, away) {
			return
		}
	}
}

// stepCreature moves m one cell in d if the cell is free. It reports whether m moved.
func (e *Encounter) stepCreature(m *Combatant, d grid.Direction) bool {
	to := m.Coords().Move(d)
	if !e.m.Walkable(to) || e.table.occupied(to) {
		return false
	}
	m.SetCoords(to)
	return true
}

// approach returns the directions that close the distance from c to target,
// best first.
func approach(c, target grid.Coords) []grid.Direction {
	primary := grid.Toward(c, target)
	if primary == grid.DirNone {
		return nil
	}
	dirs := []grid.Direction{primary}
	dx, dy := target.X-c.X, target.Y-c.Y
	switch primary {
	case grid.DirWest, grid.DirEast:
		if dy < 0 {
			dirs = append(dirs, grid.DirNorth)
		} else if dy > 0 {
			dirs = append(dirs, grid.DirSouth)
		}
	default:
		if dx < 0 {
			dirs = append(dirs, grid.DirWest)
		} else if dx > 0 {
			dirs = append(dirs, grid.DirEast)
		}
	}
	return dirs
}
