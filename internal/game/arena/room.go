package arena

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/skirmish/internal/game/grid"
)

// ErrInvalidDirection is returned when a room is entered from a direction
// that has no party-start offsets.
var ErrInvalidDirection = errors.New("arena: invalid entry direction")

// RoomTriggers is the number of interactive triggers per dungeon room.
const RoomTriggers = 4

// AltarRoomIndex is the room index shared by the three virtue altar rooms.
const AltarRoomIndex = 15

// Trigger is an interactive tile in a dungeon room. Stepping on At replaces
// the tiles at Change1 and Change2 with Tile.
type Trigger struct {
	Tile    string      `yaml:"tile"`
	At      grid.Coords `yaml:"at"`
	Change1 grid.Coords `yaml:"change1"`
	Change2 grid.Coords `yaml:"change2"`
}

// partyStartBlock is the authored per-direction party start table: for each
// of north, east, south, west in that order, eight X values then eight Y values.
type partyStartBlock [4 * MaxParty * 2]int

// DungeonRoom is a pre-authored dungeon encounter.
//
// Invariant: CreatureTiles[i] == "" means slot i is empty.
type DungeonRoom struct {
	Index         int
	Map           *CombatMap
	Triggers      [RoomTriggers]Trigger
	CreatureTiles [MaxCreatures]string
	CreatureStart [MaxCreatures]grid.Coords
	partyStart    partyStartBlock
}

// entryOffset maps an entry direction to its block within partyStartBlock.
func entryOffset(from grid.Direction) (int, error) {
	switch from {
	case grid.DirWest:
		return 3, nil
	case grid.DirNorth:
		return 0, nil
	case grid.DirEast:
		return 1, nil
	case grid.DirSouth:
		return 2, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidDirection, from)
	}
}

// PartyStart returns the party start coordinates for a party entering the
// room from the given direction.
//
// Postcondition: Returns the authored coordinates, or ErrInvalidDirection for
// a non-cardinal direction.
func (r *DungeonRoom) PartyStart(from grid.Direction) ([MaxParty]grid.Coords, error) {
	var out [MaxParty]grid.Coords
	offset, err := entryOffset(from)
	if err != nil {
		return out, err
	}
	base := offset * MaxParty * 2
	for i := range out {
		out[i] = grid.Coords{X: r.partyStart[base+i], Y: r.partyStart[base+MaxParty+i]}
	}
	return out, nil
}
