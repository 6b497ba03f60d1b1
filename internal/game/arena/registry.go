package arena

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrUnknownMap is returned when a combat map id is not registered.
var ErrUnknownMap = errors.New("arena: unknown combat map")

// Registry holds the loaded combat maps and dungeon rooms.
// Lookups hand out clones so encounters never share transient map state.
type Registry struct {
	tiles *Tileset
	maps  map[string]*CombatMap
	rooms map[int]*DungeonRoom
}

// NewRegistry indexes maps by id and rooms by index.
//
// Postcondition: Returns an error on a duplicate map id or room index.
func NewRegistry(tiles *Tileset, maps []*CombatMap, rooms []*DungeonRoom) (*Registry, error) {
	r := &Registry{tiles: tiles, maps: make(map[string]*CombatMap), rooms: make(map[int]*DungeonRoom)}
	for _, m := range maps {
		if _, dup := r.maps[m.ID]; dup {
			return nil, fmt.Errorf("arena registry: duplicate map id %q", m.ID)
		}
		r.maps[m.ID] = m
	}
	for _, room := range rooms {
		if _, dup := r.rooms[room.Index]; dup {
			return nil, fmt.Errorf("arena registry: duplicate room index %d", room.Index)
		}
		r.rooms[room.Index] = room
	}
	return r, nil
}

// LoadRegistry loads every map in mapsDir and every room in roomsDir.
// An empty roomsDir skips room loading.
func LoadRegistry(mapsDir, roomsDir string, tiles *Tileset) (*Registry, error) {
	maps, err := LoadMaps(mapsDir, tiles)
	if err != nil {
		return nil, err
	}
	var rooms []*DungeonRoom
	if roomsDir != "" {
		if rooms, err = LoadRooms(roomsDir, tiles); err != nil {
			return nil, err
		}
	}
	return NewRegistry(tiles, maps, rooms)
}

// Tiles returns the registry's tileset.
func (r *Registry) Tiles() *Tileset { return r.tiles }

// Map returns a fresh clone of the map registered under id.
//
// Postcondition: Returns a wrapped ErrUnknownMap if id is not registered.
func (r *Registry) Map(id string) (*CombatMap, error) {
	m, ok := r.maps[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, id)
	}
	return m.Clone(), nil
}

// Room returns a copy of the room at index whose map is a fresh clone.
func (r *Registry) Room(index int) (*DungeonRoom, bool) {
	room, ok := r.rooms[index]
	if !ok {
		return nil, false
	}
	cp := *room
	cp.Map = room.Map.Clone()
	return &cp, true
}

// MapIDs returns the registered map ids in sorted order.
func (r *Registry) MapIDs() []string {
	ids := make([]string, 0, len(r.maps))
	for id := range r.maps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RoomIndexes returns the registered room indexes in ascending order.
func (r *Registry) RoomIndexes() []int {
	idx := make([]int, 0, len(r.rooms))
	for i := range r.rooms {
		idx = append(idx, i)
	}
	slices.Sort(idx)
	return idx
}
