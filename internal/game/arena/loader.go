package arena

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// mapDoc is the YAML form of a combat map.
type mapDoc struct {
	ID            string        `yaml:"id"`
	Rows          []string      `yaml:"rows"`
	PlayerStart   []grid.Coords `yaml:"player_start"`
	CreatureStart []grid.Coords `yaml:"creature_start"`
}

// startDoc lists start coordinates for one entry direction.
type startDoc struct {
	X []int `yaml:"x"`
	Y []int `yaml:"y"`
}

// roomDoc is the YAML form of a dungeon room.
type roomDoc struct {
	Index      int               `yaml:"index"`
	Rows       []string          `yaml:"rows"`
	Triggers   []Trigger         `yaml:"triggers"`
	Creatures  []roomCreatureDoc `yaml:"creatures"`
	PartyStart struct {
		North startDoc `yaml:"north"`
		East  startDoc `yaml:"east"`
		South startDoc `yaml:"south"`
		West  startDoc `yaml:"west"`
	} `yaml:"party_start"`
}

type roomCreatureDoc struct {
	Tile string      `yaml:"tile"`
	At   grid.Coords `yaml:"at"`
}

// LoadMapFromBytes parses a single combat map from YAML.
//
// Precondition: tiles is non-nil.
// Postcondition: Returns a validated *CombatMap with exactly MaxParty player
// starts and MaxCreatures creature starts, or an error.
func LoadMapFromBytes(data []byte, tiles *Tileset) (*CombatMap, error) {
	var doc mapDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing combat map YAML: %w", err)
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("combat map: id must not be empty")
	}
	if len(doc.PlayerStart) != MaxParty {
		return nil, fmt.Errorf("combat map %q: need %d player starts, got %d", doc.ID, MaxParty, len(doc.PlayerStart))
	}
	if len(doc.CreatureStart) != MaxCreatures {
		return nil, fmt.Errorf("combat map %q: need %d creature starts, got %d", doc.ID, MaxCreatures, len(doc.CreatureStart))
	}
	var players [MaxParty]grid.Coords
	var creatures [MaxCreatures]grid.Coords
	copy(players[:], doc.PlayerStart)
	copy(creatures[:], doc.CreatureStart)
	return NewCombatMap(doc.ID, tiles, doc.Rows, players, creatures)
}

// LoadRoomFromBytes parses a single dungeon room from YAML.
//
// Postcondition: Returns a room whose party-start block holds the authored
// coordinates for all four entry directions, or an error if any direction
// lacks MaxParty coordinates or places one outside the room.
func LoadRoomFromBytes(data []byte, tiles *Tileset) (*DungeonRoom, error) {
	var doc roomDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing dungeon room YAML: %w", err)
	}
	id := fmt.Sprintf("room_%02d", doc.Index)
	if len(doc.Triggers) > RoomTriggers {
		return nil, fmt.Errorf("dungeon room %q: at most %d triggers, got %d", id, RoomTriggers, len(doc.Triggers))
	}
	if len(doc.Creatures) > MaxCreatures {
		return nil, fmt.Errorf("dungeon room %q: at most %d creatures, got %d", id, MaxCreatures, len(doc.Creatures))
	}

	room := &DungeonRoom{Index: doc.Index}
	copy(room.Triggers[:], doc.Triggers)
	for i, c := range doc.Creatures {
		room.CreatureTiles[i] = c.Tile
		room.CreatureStart[i] = c.At
	}

	// authored order is north, east, south, west
	blocks := []struct {
		name string
		doc  startDoc
	}{
		{"north", doc.PartyStart.North},
		{"east", doc.PartyStart.East},
		{"south", doc.PartyStart.South},
		{"west", doc.PartyStart.West},
	}
	for b, blk := range blocks {
		if len(blk.doc.X) != MaxParty || len(blk.doc.Y) != MaxParty {
			return nil, fmt.Errorf("dungeon room %q: %s party start needs %d x and %d y values", id, blk.name, MaxParty, MaxParty)
		}
		base := b * MaxParty * 2
		copy(room.partyStart[base:base+MaxParty], blk.doc.X)
		copy(room.partyStart[base+MaxParty:base+2*MaxParty], blk.doc.Y)
	}

	// the party start for north doubles as the map's default player start
	starts, _ := room.PartyStart(grid.DirNorth)
	m, err := NewCombatMap(id, tiles, doc.Rows, starts, room.CreatureStart)
	if err != nil {
		return nil, err
	}
	for _, dir := range grid.Cardinals {
		s, _ := room.PartyStart(dir)
		for i, c := range s {
			if !m.Bounds().Contains(c) {
				return nil, fmt.Errorf("dungeon room %q: %v party start %d %v outside room", id, dir, i, c)
			}
		}
	}
	room.Map = m
	return room, nil
}

// LoadMaps reads every *.yaml file in dir as a combat map.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all maps or the first error.
func LoadMaps(dir string, tiles *Tileset) ([]*CombatMap, error) {
	var maps []*CombatMap
	err := eachYAML(dir, func(path string, data []byte) error {
		m, err := LoadMapFromBytes(data, tiles)
		if err != nil {
			return err
		}
		maps = append(maps, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return maps, nil
}

// LoadRooms reads every *.yaml file in dir as a dungeon room.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all rooms or the first error.
func LoadRooms(dir string, tiles *Tileset) ([]*DungeonRoom, error) {
	var rooms []*DungeonRoom
	err := eachYAML(dir, func(path string, data []byte) error {
		r, err := LoadRoomFromBytes(data, tiles)
		if err != nil {
			return err
		}
		rooms = append(rooms, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func eachYAML(dir string, fn func(path string, data []byte) error) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading arena dir %q: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %q: %w", path, err)
		}
		if err := fn(path, data); err != nil {
			return fmt.Errorf("loading %q: %w", path, err)
		}
	}
	return nil
}
