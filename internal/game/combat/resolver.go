package combat

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/condition"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// AttackOutcome is the result of resolving an attack against one cell.
type AttackOutcome int

const (
	// NoTarget means the cell held nothing the attack could strike.
	NoTarget AttackOutcome = iota
	Missed
	Hit
)

// String returns the outcome name.
func (o AttackOutcome) String() string {
	switch o {
	case NoTarget:
		return "no_target"
	case Missed:
		return "missed"
	case Hit:
		return "hit"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// hitRoll is the exclusive bound of the attack roll.
const hitRoll = 256

// AttackHit rolls an attack: it hits when a draw from [0,256) plus bonus
// exceeds defense.
//
// Postcondition: with bonus 0 and defense 255 the attack never hits.
func AttackHit(src Source, bonus, defense int) bool {
	return src.Intn(hitRoll)+bonus > defense
}

// attack resolves the focused player's attack command: it asks for a
// direction and, for weapons that allow it, a distance, then walks the path
// until a creature is found.
func (e *Encounter) attack() {
	e.out.Message("Dir: ")
	dir := e.in.ReadDirection()
	if !dir.IsCardinal() {
		return
	}
	e.out.Message(dir.String())

	attacker := e.focusedOnMap()
	if attacker == nil {
		return
	}
	w := attacker.Member.Weapon
	rng := w.Range
	if w.ChooseDistance {
		e.out.Message("Range: ")
		choice := int(e.in.ReadChoice("123456789") - '0')
		if choice < 1 || choice > w.Range {
			return
		}
		rng = choice
		e.out.Message(strconv.Itoa(rng))
	}

	// The attack is made even when nothing is in reach.
	e.out.Sound(SoundPCAttack)

	var passable grid.Passable
	if !w.AttackThroughObjects {
		passable = e.m.AttackOver
	}
	origin := attacker.Coords()
	path := grid.TracePath(origin, dir, 1, rng, e.m.Bounds(), passable, false)

	found := false
	targetDistance := len(path)
	targetCoords := origin
	if len(path) > 0 {
		targetCoords = path[len(path)-1]
	}
	for i, c := range path {
		if e.attackAt(c, attacker, rng, i+1) != NoTarget {
			found = true
			targetDistance = i + 1
			targetCoords = c
			break
		}
	}

	if w.Consumed(found, targetDistance) {
		if !e.roster.LoseWeapon(attacker.Slot) {
			e.out.Message("Last One!")
		}
	}

	if w.LeavesTile != "" {
		if ground := e.m.GroundAt(targetCoords); ground != nil && ground.Walkable {
			e.m.Annotate(targetCoords, w.LeavesTile, -1)
		}
	}

	if !found {
		e.out.Flash(targetCoords, w.MissTile, 1)
		e.out.Message("Missed!")
	}

	if w.Returns {
		e.returnWeaponToOwner(targetCoords, targetDistance, dir, w.MissTile)
	}
}

// attackAt resolves a player's attack against the cell at c, distance cells
// from the attacker along a path traced for chosenRange.
func (e *Encounter) attackAt(c grid.Coords, attacker *Combatant, chosenRange, distance int) AttackOutcome {
	w := attacker.Member.Weapon
	wrongRange := w.AbsoluteRange && distance != chosenRange

	target := e.table.CreatureAt(c)
	if target == nil || wrongRange {
		if w.ShowTravel {
			e.out.Flash(c, w.MissTile, 1)
		}
		return NoTarget
	}

	if (e.loc.Abyss && !w.Magic) || !AttackHit(e.src, attacker.AttackBonus(), target.Defense()) {
		e.out.Message("Missed!")
		e.out.Flash(c, w.MissTile, 1)
		return Missed
	}

	e.out.Flash(c, w.MissTile, 1)
	e.out.Sound(SoundNPCStruck)
	e.out.Flash(c, w.HitTile, 3)
	if !e.dealDamage(attacker, target, attacker.RollDamage(e.src)) {
		e.out.Flash(c, w.HitTile, 1)
	}
	return Hit
}

// rangedAttack resolves a creature's ranged attack against the cell at c.
// Creature missiles never miss a target they reach; the hit tile's effect
// decides what they do. It reports whether a target was found.
func (e *Encounter) rangedAttack(c grid.Coords, attacker *Combatant) bool {
	tmpl := attacker.Creature.Template
	target := e.table.PlayerAt(c)
	if target == nil {
		e.out.Flash(c, tmpl.MissTile, 1)
		return false
	}

	hitTile := e.m.Tiles().Lookup(tmpl.HitTile)
	e.out.Flash(c, tmpl.MissTile, 1)
	e.out.Flash(c, tmpl.HitTile, 3)

	switch hitTile.Effect {
	case grid.EffectElectricity:
		e.out.Sound(SoundPCStruck)
		e.out.Message(target.Name() + " Electrified!")
		e.dealDamage(attacker, target, attacker.RollDamage(e.src))
	case grid.EffectPoison, grid.EffectPoisonField:
		if e.src.Intn(2) == 0 && target.Status() != condition.Poisoned {
			e.out.Sound(SoundPoison)
			e.out.Message(target.Name() + " Poisoned!")
			target.Poison()
		}
	case grid.EffectSleep:
		if e.src.Intn(2) == 0 && target.Status() != condition.Sleeping {
			e.out.Sound(SoundSleep)
			e.out.Message(target.Name() + " Slept!")
			target.PutToSleep()
		}
	case grid.EffectLava, grid.EffectFire:
		e.out.Sound(SoundPCStruck)
		kind := "Fiery"
		if hitTile.Effect == grid.EffectLava {
			kind = "Lava"
		}
		e.out.Message(fmt.Sprintf("%s %s Hit!", target.Name(), kind))
		e.dealDamage(attacker, target, attacker.RollDamage(e.src))
	default:
		if tmpl.HitTile == arena.TileMagicFlash {
			e.out.Message(target.Name() + " Magical Hit!")
		} else {
			e.out.Message(target.Name() + " Hit!")
		}
		e.dealDamage(attacker, target, attacker.RollDamage(e.src))
	}
	e.out.Flash(c, tmpl.HitTile, 1)
	return true
}

// rangedMiss lets a creature that leaves its missile behind drop it where
// the attack landed.
func (e *Encounter) rangedMiss(c grid.Coords, attacker *Combatant) {
	if attacker.Creature.Template.LeavesTile && e.m.Walkable(c) {
		e.m.Annotate(c, attacker.Creature.Template.HitTile, -1)
	}
}

// returnWeaponToOwner flashes the weapon's path back from the cell it reached.
func (e *Encounter) returnWeaponToOwner(from grid.Coords, distance int, dir grid.Direction, missTile string) {
	back := dir.Reverse()
	c := from
	for i := distance; i > 1; i-- {
		c = c.Move(back)
		e.out.Flash(c, missTile, 1)
	}
}

// dealDamage applies amount to target and reports whether it survived. A
// killed target is taken off the map before dealDamage returns and must not
// be used again. attacker may be nil for damage from the map itself.
func (e *Encounter) dealDamage(attacker, target *Combatant, amount int) bool {
	if target.Kind == KindPlayer && e.aura.Is(condition.AuraProtection) {
		amount /= 2
	}
	if target.applyDamage(amount) {
		return true
	}
	if target.Kind == KindPlayer {
		e.playerKilled(target)
	} else {
		e.creatureKilled(target, attacker)
	}
	return false
}

// playerKilled leaves a corpse and takes a dead member off the map.
func (e *Encounter) playerKilled(p *Combatant) {
	if p.removed {
		return
	}
	at := p.Coords()
	e.m.Annotate(at, arena.TileCorpse, e.roster.Size()*2)
	e.out.Message(p.Name() + " is Killed!")
	e.table.remove(p)
	e.logger.Debug("player killed", zap.String("name", p.Name()), zap.Stringer("at", at))
}

// creatureKilled removes a dead creature and credits a killing player.
func (e *Encounter) creatureKilled(m *Combatant, by *Combatant) {
	e.out.Message(m.Name() + " Killed!")
	if by != nil && by.Kind == KindPlayer {
		xp := m.Creature.Template.XP
		e.out.Message(fmt.Sprintf("Exp. %d", xp))
		by.Member.AwardXP(xp)
	}
	e.table.remove(m)
	e.logger.Debug("creature killed", zap.String("name", m.Name()), zap.String("id", m.Creature.ID))
}
