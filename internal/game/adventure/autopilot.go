package adventure

import (
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/combat"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Autopilot plays the party's turns. NextKey picks the key for the focused
// player and primes the answers to the prompts that key raises, so the
// Autopilot is also the encounter's Input.
//
// The policy is greedy: attack the nearest creature when it is in line and in
// reach, otherwise close in on it; with no creatures left, walk off the map.
type Autopilot struct {
	dir      grid.Direction
	distance int
}

// NewAutopilot returns an Autopilot with no primed answers.
func NewAutopilot() *Autopilot { return &Autopilot{} }

// ReadDirection implements combat.Input.
func (a *Autopilot) ReadDirection() grid.Direction {
	d := a.dir
	a.dir = grid.DirNone
	return d
}

// ReadChoice implements combat.Input. It answers with the primed attack
// distance when valid allows it, else the first valid rune.
func (a *Autopilot) ReadChoice(valid string) rune {
	if valid == "" {
		return 0
	}
	if a.distance > 0 && a.distance < 10 {
		r := rune('0' + a.distance)
		a.distance = 0
		if strings.ContainsRune(valid, r) {
			return r
		}
	}
	return []rune(valid)[0]
}

// NextKey returns the key the focused player presses.
//
// Precondition: e is active.
func (a *Autopilot) NextKey(e *combat.Encounter) rune {
	p := e.CurrentPlayer()
	if p == nil || p.IsDead() {
		return ' '
	}
	at := p.Coords()

	target, dist := nearest(at, e.Table().LiveCreatures())
	if target == nil {
		if d, ok := a.exitDirection(e, at); ok {
			return combat.KeyFor(d)
		}
		return ' '
	}

	to := target.Coords()
	w := p.Member.Weapon
	aligned := at.X == to.X || at.Y == to.Y
	// exact-range weapons without a distance prompt only strike at full reach
	tooClose := w.AbsoluteRange && !w.ChooseDistance && dist < w.Range
	if aligned && dist <= w.Range && !tooClose {
		a.dir = grid.Toward(at, to)
		if w.ChooseDistance {
			a.distance = dist
		}
		return 'a'
	}
	if tooClose {
		if back := grid.Toward(to, at); back.IsCardinal() && free(e, at.Move(back)) {
			return combat.KeyFor(back)
		}
	}

	for _, d := range toward(at, to) {
		if free(e, at.Move(d)) {
			return combat.KeyFor(d)
		}
	}
	return ' '
}

// exitDirection picks the way off the map: the recorded room exit if there
// is one, else the nearest edge. It falls back to any free step.
func (a *Autopilot) exitDirection(e *combat.Encounter, at grid.Coords) (grid.Direction, bool) {
	b := e.Map().Bounds()
	if d := e.ExitDir(); d != grid.DirNone {
		if next := at.Move(d); !b.Contains(next) || free(e, next) {
			return d, true
		}
		return a.sidestep(e, at, d)
	}

	edges := []struct {
		dir  grid.Direction
		dist int
	}{
		{grid.DirWest, at.X},
		{grid.DirNorth, at.Y},
		{grid.DirEast, b.Width - 1 - at.X},
		{grid.DirSouth, b.Height - 1 - at.Y},
	}
	best := edges[0]
	for _, edge := range edges[1:] {
		if edge.dist < best.dist {
			best = edge
		}
	}
	if next := at.Move(best.dir); !b.Contains(next) || free(e, next) {
		return best.dir, true
	}
	return a.sidestep(e, at, best.dir)
}

// sidestep returns a free in-map step other than blocked.
func (a *Autopilot) sidestep(e *combat.Encounter, at grid.Coords, blocked grid.Direction) (grid.Direction, bool) {
	for _, d := range grid.Cardinals {
		if d != blocked && d != blocked.Reverse() && free(e, at.Move(d)) {
			return d, true
		}
	}
	if free(e, at.Move(blocked.Reverse())) {
		return blocked.Reverse(), true
	}
	return grid.DirNone, false
}

func nearest(at grid.Coords, creatures []*combat.Combatant) (*combat.Combatant, int) {
	var best *combat.Combatant
	bestDist := 0
	for _, c := range creatures {
		if d := at.DistanceTo(c.Coords()); best == nil || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

// toward returns the cardinal steps that bring c closer to target, longer axis first.
func toward(c, target grid.Coords) []grid.Direction {
	var dirs []grid.Direction
	dx, dy := target.X-c.X, target.Y-c.Y
	horizontal, vertical := grid.DirNone, grid.DirNone
	switch {
	case dx < 0:
		horizontal = grid.DirWest
	case dx > 0:
		horizontal = grid.DirEast
	}
	switch {
	case dy < 0:
		vertical = grid.DirNorth
	case dy > 0:
		vertical = grid.DirSouth
	}
	if abs(dx) >= abs(dy) {
		dirs = append(dirs, horizontal, vertical)
	} else {
		dirs = append(dirs, vertical, horizontal)
	}
	out := dirs[:0]
	for _, d := range dirs {
		if d != grid.DirNone {
			out = append(out, d)
		}
	}
	return out
}

// free reports whether c is on the map, walkable and unoccupied.
func free(e *combat.Encounter, c grid.Coords) bool {
	m := e.Map()
	return m.Bounds().Contains(c) && m.Walkable(c) &&
		e.Table().PlayerAt(c) == nil && e.Table().CreatureAt(c) == nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
