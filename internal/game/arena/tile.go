// Package arena provides combat maps, dungeon room templates, and the
// selection of a combat map for an encounter.
package arena

import (
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Tile describes one tile type.
type Tile struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	// Walkable is true when creatures and players may stand on the tile.
	Walkable     bool        `yaml:"walkable"`
	DungeonFloor bool        `yaml:"dungeon_floor"`
	Water        bool        `yaml:"water"`
	Ship         bool        `yaml:"ship"`
	Effect       grid.Effect `yaml:"effect"`
	// BlocksProjectiles stops thrown and fired attacks.
	BlocksProjectiles bool `yaml:"blocks_projectiles"`
}

// Tile names referenced by the engine.
const (
	TileChest      = "chest"
	TileShip       = "ship"
	TilePirateShip = "pirate_ship"
	TileCorpse     = "corpse"
	TileHitFlash   = "hit_flash"
	TileMissFlash  = "miss_flash"
	TileMagicFlash = "magic_flash"
	TileFireField  = "fire_field"
	TilePoison     = "poison_field"
	TileSleep      = "sleep_field"
	TileEnergy     = "energy_field"
)

// Tileset indexes tile types by glyph and by name.
type Tileset struct {
	byGlyph map[rune]*Tile
	byName  map[string]*Tile
}

// NewTileset builds a Tileset from tiles. Tiles without a glyph can only be
// referenced by name (annotations, flashes, placed objects).
//
// Postcondition: Returns an error for duplicate names or glyphs, or a glyph
// longer than one rune.
func NewTileset(tiles []Tile) (*Tileset, error) {
	ts := &Tileset{byGlyph: make(map[rune]*Tile), byName: make(map[string]*Tile)}
	for i := range tiles {
		t := &tiles[i]
		if t.Name == "" {
			return nil, fmt.Errorf("tileset: tile %d has no name", i)
		}
		if _, dup := ts.byName[t.Name]; dup {
			return nil, fmt.Errorf("tileset: duplicate tile name %q", t.Name)
		}
		ts.byName[t.Name] = t
		if t.Glyph == "" {
			continue
		}
		r := []rune(t.Glyph)
		if len(r) != 1 {
			return nil, fmt.Errorf("tileset: tile %q glyph %q must be a single character", t.Name, t.Glyph)
		}
		if prev, dup := ts.byGlyph[r[0]]; dup {
			return nil, fmt.Errorf("tileset: glyph %q used by %q and %q", t.Glyph, prev.Name, t.Name)
		}
		ts.byGlyph[r[0]] = t
	}
	return ts, nil
}

// ByGlyph returns the tile drawn with glyph.
func (ts *Tileset) ByGlyph(glyph rune) (*Tile, bool) {
	t, ok := ts.byGlyph[glyph]
	return t, ok
}

// ByName returns the named tile.
func (ts *Tileset) ByName(name string) (*Tile, bool) {
	t, ok := ts.byName[name]
	return t, ok
}

// Lookup returns the named tile, or a walkable effect-free stand-in for names
// the tileset does not know. Cosmetic tiles need no definition.
func (ts *Tileset) Lookup(name string) *Tile {
	if t, ok := ts.byName[name]; ok {
		return t
	}
	return &Tile{Name: name, Walkable: true}
}

var defaultTiles = []Tile{
	{Name: "grass", Glyph: ".", Walkable: true},
	{Name: "brush", Glyph: ",", Walkable: true},
	{Name: "forest", Glyph: "T", Walkable: true},
	{Name: "hills", Glyph: "^", Walkable: true},
	{Name: "mountains", Glyph: "M", BlocksProjectiles: true},
	{Name: "swamp", Glyph: "%", Walkable: true, Effect: grid.EffectPoison},
	{Name: "water", Glyph: "~", Water: true},
	{Name: "shallows", Glyph: "w", Walkable: true, Water: true},
	{Name: "bridge", Glyph: "=", Walkable: true},
	{Name: "deck", Glyph: "D", Walkable: true},
	{Name: "brick_floor", Glyph: "_", Walkable: true},
	{Name: "brick_wall", Glyph: "#", BlocksProjectiles: true},
	{Name: "dungeon_floor", Glyph: "d", Walkable: true, DungeonFloor: true},
	{Name: "dungeon_wall", Glyph: "X", BlocksProjectiles: true},
	{Name: "altar", Glyph: "A"},
	{Name: "lava", Glyph: "l", Walkable: true, Effect: grid.EffectLava},
	{Name: TileFireField, Glyph: "f", Walkable: true, Effect: grid.EffectFire},
	{Name: TilePoison, Glyph: "p", Walkable: true, Effect: grid.EffectPoisonField},
	{Name: TileSleep, Glyph: "z", Walkable: true, Effect: grid.EffectSleep},
	{Name: TileEnergy, Glyph: "e", Effect: grid.EffectElectricity, BlocksProjectiles: true},
	{Name: TileChest, Walkable: true},
	{Name: TileCorpse, Walkable: true},
	{Name: TileShip, Ship: true},
	{Name: TilePirateShip, Ship: true},
	{Name: TileHitFlash, Walkable: true},
	{Name: TileMissFlash, Walkable: true},
	{Name: TileMagicFlash, Walkable: true},
}

// DefaultTileset returns the built-in tiles used by the bundled maps.
func DefaultTileset() *Tileset {
	tiles := make([]Tile, len(defaultTiles))
	copy(tiles, defaultTiles)
	ts, err := NewTileset(tiles)
	if err != nil {
		panic("arena: default tileset invalid: " + err.Error())
	}
	return ts
}
