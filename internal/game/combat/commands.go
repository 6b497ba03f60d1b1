package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Keys with no printable rune.
const (
	KeyNorth  rune = '↑'
	KeySouth  rune = '↓'
	KeyWest   rune = '←'
	KeyEast   rune = '→'
	KeyEscape rune = '\x1b'
	KeyF1     rune = 0xE001
)

// KeyFor returns the movement key for a cardinal direction, or 0.
func KeyFor(d grid.Direction) rune {
	switch d {
	case grid.DirNorth:
		return KeyNorth
	case grid.DirSouth:
		return KeySouth
	case grid.DirWest:
		return KeyWest
	case grid.DirEast:
		return KeyEast
	default:
		return 0
	}
}

func keyDirection(key rune) grid.Direction {
	switch key {
	case KeyNorth:
		return grid.DirNorth
	case KeySouth:
		return grid.DirSouth
	case KeyWest:
		return grid.DirWest
	case KeyEast:
		return grid.DirEast
	default:
		return grid.DirNone
	}
}

// Step handles one key press from the focused player and returns the
// resulting phase. Any recognised command ends the player's turn.
//
// Postcondition: a closed or not yet begun encounter ignores the key.
func (e *Encounter) Step(key rune) Phase {
	if e.phase != PhaseActive {
		return e.phase
	}
	valid := true

	switch key {
	case KeyNorth, KeySouth, KeyWest, KeyEast:
		e.movePartyMember(keyDirection(key))
	case KeyEscape:
		if e.debug {
			e.End(false)
		} else {
			e.out.Message("Bad command")
		}
	case ' ':
		e.out.Message("Pass")
	case KeyF1:
		if e.debug {
			e.destroyAllCreatures()
		} else {
			valid = false
		}
	case 'a':
		e.attack()
	case 'c':
		e.out.Message("Cast Spell!")
		e.delegate(Commands.CastSpell)
	case 'g':
		e.out.Message("Get Chest!")
		e.delegate(Commands.GetChest)
	case 'l':
		if p := e.focusedOnMap(); e.debug && p != nil {
			c := p.Coords()
			e.out.Message(fmt.Sprintf("Location: x:%d y:%d z:%d", c.X, c.Y, c.Z))
			valid = false
		} else {
			e.out.Message("Not here!")
		}
	case 'r':
		e.delegate(Commands.ReadyWeapon)
	case 't':
		if e.debug && e.m.IsDungeonRoom() {
			e.showTriggers()
			valid = false
		} else {
			e.out.Message("Not here!")
		}
	case 'u':
		e.out.Message("Use which item:")
		e.delegate(Commands.UseItem)
	case 'b', 'e', 'd', 'f', 'h', 'i', 'j', 'k', 'm', 'n', 'o', 'p', 'q', 's', 'w', 'x', 'y':
		e.out.Message("Not here!")
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if e.digitKeys {
			e.lockActivePlayer(int(key - '1'))
		} else {
			e.out.Message("Bad command")
		}
	default:
		valid = false
	}

	if valid && e.phase == PhaseActive {
		e.FinishTurn()
	}
	return e.phase
}

// delegate hands a command to the Commands collaborator.
func (e *Encounter) delegate(cmd func(Commands, *Encounter, int)) {
	if e.commands == nil {
		e.out.Message("Not here!")
		return
	}
	cmd(e.commands, e, e.focus)
}

// lockActivePlayer makes member i take every turn; -1 clears the lock.
func (e *Encounter) lockActivePlayer(i int) {
	if !e.roster.SetActivePlayer(i) {
		e.out.Message("Bad command")
		return
	}
	if i < 0 {
		e.out.Message("Set Active Player: None!")
		return
	}
	e.out.Message(fmt.Sprintf("Set Active Player: %s!", e.roster.Member(i).Name))
	e.setActivePlayer(i)
}

// destroyAllCreatures removes every creature from the map.
func (e *Encounter) destroyAllCreatures() {
	for _, m := range e.table.LiveCreatures() {
		e.table.remove(m)
	}
	e.logger.Debug("creatures destroyed")
}

func (e *Encounter) showTriggers() {
	e.out.Message("Triggers!")
	for i, t := range e.triggers {
		e.out.Message(fmt.Sprintf("%d) at %v tile %q changes %v %v", i+1, t.At, t.Tile, t.Change1, t.Change2))
	}
}

// moveResult is the outcome of moving the focused player.
type moveResult int

const (
	moveOK moveResult = iota
	moveBlocked
	moveSameExit
	moveExited
)

// movePartyMember moves the focused player one cell and reports the outcome.
func (e *Encounter) movePartyMember(dir grid.Direction) {
	p := e.focusedOnMap()
	if p == nil {
		return
	}
	res := e.movePlayer(p, dir)

	if res == moveExited && e.roster.ActivePlayer() == e.focus {
		e.roster.SetActivePlayer(-1)
		for i, o := range e.table.players {
			if onMap(o) && !o.IsDisabled() {
				e.roster.SetActivePlayer(i)
				break
			}
		}
	}

	e.out.Message(dir.String())
	switch {
	case res == moveSameExit:
		e.out.Sound(SoundError)
		e.out.Message("All must use same exit!")
	case res == moveBlocked:
		e.out.Sound(SoundBlocked)
		e.out.Message("Blocked!")
	case res == moveExited && e.winOrLose && e.trigger != nil && e.trigger.Template.IsEvil():
		e.out.Sound(SoundFlee)
	default:
		e.out.Sound(SoundWalk)
	}
}

// movePlayer moves p one cell in dir. Stepping off the map leaves combat;
// in a dungeon room the whole party must leave by the same side.
func (e *Encounter) movePlayer(p *Combatant, dir grid.Direction) moveResult {
	to := p.Coords().Move(dir)
	if !e.m.Bounds().Contains(to) {
		if e.m.IsDungeonRoom() {
			if e.exitDir == grid.DirNone {
				e.exitDir = dir
			} else if dir != e.exitDir {
				return moveSameExit
			}
		}
		e.table.remove(p)
		e.logger.Debug("player fled", zap.String("name", p.Name()), zap.Stringer("dir", dir))
		return moveExited
	}
	if !e.m.Walkable(to) || e.table.occupied(to) {
		return moveBlocked
	}
	p.SetCoords(to)
	if e.m.IsDungeonRoom() {
		e.checkTriggers(to)
	}
	return moveOK
}

// checkTriggers fires any room trigger at c, replacing its target cells.
func (e *Encounter) checkTriggers(c grid.Coords) {
	for _, t := range e.triggers {
		if t.Tile == "" || t.At != c {
			continue
		}
		for _, change := range []grid.Coords{t.Change1, t.Change2} {
			if change != (grid.Coords{}) {
				e.m.Annotate(change, t.Tile, -1)
			}
		}
		e.logger.Debug("room trigger fired", zap.Stringer("at", c), zap.String("tile", t.Tile))
	}
}
