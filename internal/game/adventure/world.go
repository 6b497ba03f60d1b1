// Package adventure is the outer game an encounter hands control back to: an
// in-memory overworld that implements combat.World, the autopilot that plays
// the party's turns, and the loop that strings encounters together.
package adventure

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/arena"
	"github.com/cory-johannsen/skirmish/internal/game/creature"
	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// Mode is what currently owns the party's turn.
type Mode int

const (
	ModeWorld Mode = iota
	ModeCombat
	ModeDead
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWorld:
		return "world"
	case ModeCombat:
		return "combat"
	case ModeDead:
		return "dead"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Object is a thing standing on the overworld: a creature, a chest or a ship.
type Object struct {
	ID     string
	Tile   string
	Coords grid.Coords
	Facing grid.Direction
	// Creature is set for creature objects.
	Creature *creature.Template
}

// Overworld is the parent map every encounter is started from. It owns the
// World/Combat mode value and satisfies combat.World. It is not safe for
// concurrent use; each simulated adventure owns its own Overworld.
type Overworld struct {
	tiles   *arena.Tileset
	ground  *arena.Tile
	terrain map[grid.Coords]*arena.Tile
	objects map[string]*Object

	mode     Mode
	position grid.Coords
	facing   grid.Direction
	turns    int
	// deathIn counts the outer turns left before the death sequence finishes.
	deathIn int
	altars  []arena.Virtue
	portals []grid.Direction

	logger *zap.Logger
}

// NewOverworld creates an overworld carpeted with the named ground tile.
//
// Precondition: tiles is non-nil and knows ground.
// Postcondition: Mode() == ModeWorld with the party at the origin facing north.
func NewOverworld(tiles *arena.Tileset, ground string, logger *zap.Logger) *Overworld {
	if tiles == nil {
		panic("adventure: NewOverworld precondition violated: nil tileset")
	}
	t, ok := tiles.ByName(ground)
	if !ok {
		panic(fmt.Sprintf("adventure: NewOverworld precondition violated: unknown ground %q", ground))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Overworld{
		tiles:   tiles,
		ground:  t,
		terrain: make(map[grid.Coords]*arena.Tile),
		objects: make(map[string]*Object),
		facing:  grid.DirNorth,
		logger:  logger,
	}
}

// SetGround overrides the ground tile at c.
//
// Postcondition: Returns an error for a tile the tileset does not know.
func (w *Overworld) SetGround(c grid.Coords, tile string) error {
	t, ok := w.tiles.ByName(tile)
	if !ok {
		return fmt.Errorf("adventure: unknown ground tile %q", tile)
	}
	w.terrain[c] = t
	return nil
}

// GroundAt implements combat.World.
func (w *Overworld) GroundAt(c grid.Coords) *arena.Tile {
	if t, ok := w.terrain[c]; ok {
		return t
	}
	return w.ground
}

// SpawnCreature places a creature of tmpl next to the party, in the
// direction it faces, and returns the new object.
func (w *Overworld) SpawnCreature(tmpl *creature.Template) *Object {
	at := w.position.Move(w.facing)
	id := w.PlaceObject(tmpl.Tile, at, w.facing.Reverse())
	obj := w.objects[id]
	obj.Creature = tmpl
	return obj
}

// PlaceObject implements combat.World.
func (w *Overworld) PlaceObject(tile string, at grid.Coords, facing grid.Direction) string {
	obj := &Object{ID: uuid.NewString(), Tile: tile, Coords: at, Facing: facing}
	w.objects[obj.ID] = obj
	w.logger.Debug("object placed",
		zap.String("object", obj.ID),
		zap.String("tile", tile),
		zap.Stringer("at", at),
	)
	return obj.ID
}

// RemoveObject implements combat.World. Unknown ids are ignored.
func (w *Overworld) RemoveObject(id string) {
	if _, ok := w.objects[id]; !ok {
		return
	}
	delete(w.objects, id)
	w.logger.Debug("object removed", zap.String("object", id))
}

// Object returns the object with id.
func (w *Overworld) Object(id string) (*Object, bool) {
	obj, ok := w.objects[id]
	return obj, ok
}

// Objects returns every object sorted by id.
func (w *Overworld) Objects() []*Object {
	out := make([]*Object, 0, len(w.objects))
	for _, obj := range w.objects {
		out = append(out, obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ObjectsWithTile returns the objects drawn with tile.
func (w *Overworld) ObjectsWithTile(tile string) []*Object {
	var out []*Object
	for _, obj := range w.Objects() {
		if obj.Tile == tile {
			out = append(out, obj)
		}
	}
	return out
}

// EnterCombat switches the mode to combat.
//
// Precondition: Mode() == ModeWorld.
func (w *Overworld) EnterCombat() {
	if w.mode != ModeWorld {
		panic(fmt.Sprintf("adventure: EnterCombat precondition violated: mode %v", w.mode))
	}
	w.mode = ModeCombat
}

// ExitToParentMap implements combat.World.
func (w *Overworld) ExitToParentMap() {
	if w.mode == ModeCombat {
		w.mode = ModeWorld
	}
}

// InCombat implements combat.World.
func (w *Overworld) InCombat() bool { return w.mode == ModeCombat }

// FinishTurn implements combat.World. The countdown of a started death
// sequence runs on outer turns.
func (w *Overworld) FinishTurn() {
	w.turns++
	if w.deathIn > 0 {
		w.deathIn--
	}
}

// StartDeath implements combat.World.
func (w *Overworld) StartDeath(delay int) {
	w.mode = ModeDead
	w.deathIn = delay
	w.logger.Info("party died", zap.Int("delay", delay))
}

// Face implements combat.World.
func (w *Overworld) Face(dir grid.Direction) {
	if dir.IsCardinal() {
		w.facing = dir
	}
}

// Advance implements combat.World.
func (w *Overworld) Advance() {
	w.position = w.position.Move(w.facing)
}

// UsePortal implements combat.World.
func (w *Overworld) UsePortal(dir grid.Direction) {
	w.portals = append(w.portals, dir)
	w.logger.Info("altar portal used", zap.Stringer("dir", dir))
}

// EnterAltarRoom implements combat.World.
func (w *Overworld) EnterAltarRoom(v arena.Virtue) {
	w.altars = append(w.altars, v)
}

// Mode returns the current mode.
func (w *Overworld) Mode() Mode { return w.mode }

// Position returns the party's position.
func (w *Overworld) Position() grid.Coords { return w.position }

// Facing returns the direction the party faces.
func (w *Overworld) Facing() grid.Direction { return w.facing }

// Turns returns the number of finished outer turns.
func (w *Overworld) Turns() int { return w.turns }

// DeathIn returns the outer turns left in the death sequence.
func (w *Overworld) DeathIn() int { return w.deathIn }

// Altars returns the altar rooms entered, oldest first.
func (w *Overworld) Altars() []arena.Virtue { return w.altars }

// Portals returns the altar portals used, oldest first.
func (w *Overworld) Portals() []grid.Direction { return w.portals }
