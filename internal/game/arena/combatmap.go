package arena

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Encounter capacities.
const (
	MaxCreatures = 16
	MaxParty     = 8
)

// Virtue identifies one of the three altar rooms.
type Virtue int

const (
	VirtueNone Virtue = iota
	VirtueTruth
	VirtueLove
	VirtueCourage
)

// String returns the virtue name.
func (v Virtue) String() string {
	switch v {
	case VirtueTruth:
		return "truth"
	case VirtueLove:
		return "love"
	case VirtueCourage:
		return "courage"
	default:
		return "none"
	}
}

// Title returns the capitalized virtue name used in room announcements.
func (v Virtue) Title() string {
	name := v.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Annotation is a temporary tile laid over the map, such as a field left by a
// spell or missile. TTL counts remaining turns; a negative TTL never expires.
type Annotation struct {
	Coords grid.Coords
	Tile   *Tile
	TTL    int
}

// CombatMap is the grid an encounter is fought on.
//
// Invariant: every row has Width cells.
type CombatMap struct {
	ID            string
	tiles         *Tileset
	cells         [][]*Tile
	PlayerStart   [MaxParty]grid.Coords
	CreatureStart [MaxCreatures]grid.Coords

	dungeonRoom bool
	altarRoom   Virtue
	annotations []*Annotation
}

// NewCombatMap builds a map from glyph rows.
//
// Precondition: tiles is non-nil.
// Postcondition: Returns an error for empty or ragged rows, unknown glyphs, or
// start coordinates outside the grid.
func NewCombatMap(id string, tiles *Tileset, rows []string, players [MaxParty]grid.Coords, creatures [MaxCreatures]grid.Coords) (*CombatMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("combat map %q: no rows", id)
	}
	m := &CombatMap{ID: id, tiles: tiles, PlayerStart: players, CreatureStart: creatures}
	width := len([]rune(rows[0]))
	for y, row := range rows {
		glyphs := []rune(row)
		if len(glyphs) != width {
			return nil, fmt.Errorf("combat map %q: row %d has width %d, want %d", id, y, len(glyphs), width)
		}
		cells := make([]*Tile, width)
		for x, g := range glyphs {
			t, ok := tiles.ByGlyph(g)
			if !ok {
				return nil, fmt.Errorf("combat map %q: unknown glyph %q at (%d,%d)", id, g, x, y)
			}
			cells[x] = t
		}
		m.cells = append(m.cells, cells)
	}
	b := m.Bounds()
	for i, c := range players {
		if !b.Contains(c) {
			return nil, fmt.Errorf("combat map %q: player start %d %v outside map", id, i, c)
		}
	}
	for i, c := range creatures {
		if !b.Contains(c) {
			return nil, fmt.Errorf("combat map %q: creature start %d %v outside map", id, i, c)
		}
	}
	return m, nil
}

// Clone returns a copy sharing the immutable layout with fresh transient
// state: no annotations and no dungeon-room marks.
func (m *CombatMap) Clone() *CombatMap {
	return &CombatMap{
		ID:            m.ID,
		tiles:         m.tiles,
		cells:         m.cells,
		PlayerStart:   m.PlayerStart,
		CreatureStart: m.CreatureStart,
	}
}

// Bounds returns the grid size.
func (m *CombatMap) Bounds() grid.Bounds {
	return grid.Bounds{Width: len(m.cells[0]), Height: len(m.cells)}
}

// Tiles returns the tileset the map was built with.
func (m *CombatMap) Tiles() *Tileset { return m.tiles }

// GroundAt returns the base tile at c ignoring annotations, or nil outside the map.
func (m *CombatMap) GroundAt(c grid.Coords) *Tile {
	if !m.Bounds().Contains(c) {
		return nil
	}
	return m.cells[c.Y][c.X]
}

// TileAt returns the top tile at c: the newest annotation if any, else the
// ground. Returns nil outside the map.
func (m *CombatMap) TileAt(c grid.Coords) *Tile {
	for i := len(m.annotations) - 1; i >= 0; i-- {
		if m.annotations[i].Coords == c {
			return m.annotations[i].Tile
		}
	}
	return m.GroundAt(c)
}

// EffectAt returns the effect of the top tile at c.
func (m *CombatMap) EffectAt(c grid.Coords) grid.Effect {
	if t := m.TileAt(c); t != nil {
		return t.Effect
	}
	return grid.EffectNone
}

// Walkable reports whether a combatant may stand at c.
func (m *CombatMap) Walkable(c grid.Coords) bool {
	t := m.TileAt(c)
	return t != nil && t.Walkable
}

// DungeonFloor reports whether the ground at c is dungeon floor.
func (m *CombatMap) DungeonFloor(c grid.Coords) bool {
	t := m.GroundAt(c)
	return t != nil && t.DungeonFloor
}

// AttackOver reports whether a projectile may pass c.
func (m *CombatMap) AttackOver(c grid.Coords) bool {
	t := m.TileAt(c)
	return t != nil && !t.BlocksProjectiles
}

// Annotate lays the named tile over c for ttl turns.
func (m *CombatMap) Annotate(c grid.Coords, tile string, ttl int) *Annotation {
	a := &Annotation{Coords: c, Tile: m.tiles.Lookup(tile), TTL: ttl}
	m.annotations = append(m.annotations, a)
	return a
}

// Annotations returns the live annotations, oldest first.
func (m *CombatMap) Annotations() []*Annotation { return m.annotations }

// PassTurn ages every annotation by one turn and drops expired ones.
//
// Postcondition: no annotation with TTL == 0 remains.
func (m *CombatMap) PassTurn() {
	live := m.annotations[:0]
	for _, a := range m.annotations {
		if a.TTL > 0 {
			a.TTL--
		}
		if a.TTL != 0 {
			live = append(live, a)
		}
	}
	clear(m.annotations[len(live):])
	m.annotations = live
}

// SetDungeonRoom flags the map as a pre-authored dungeon room.
func (m *CombatMap) SetDungeonRoom(v bool) { m.dungeonRoom = v }

// IsDungeonRoom reports whether the map is a dungeon room.
func (m *CombatMap) IsDungeonRoom() bool { return m.dungeonRoom }

// SetAltarRoom marks the map as the altar room of v.
func (m *CombatMap) SetAltarRoom(v Virtue) { m.altarRoom = v }

// AltarRoom returns the altar virtue, or VirtueNone.
func (m *CombatMap) AltarRoom() Virtue { return m.altarRoom }
