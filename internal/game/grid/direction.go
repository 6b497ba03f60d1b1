package grid

import (
	"fmt"
	"strings"
)

// Direction is a movement or attack direction. DirAdvance and DirRetreat are
// relative to the party's facing on the outer map.
type Direction int

const (
	DirNone Direction = iota
	DirWest
	DirNorth
	DirEast
	DirSouth
	DirAdvance
	DirRetreat
)

// Cardinals lists the four compass directions in clockwise order from west.
var Cardinals = [4]Direction{DirWest, DirNorth, DirEast, DirSouth}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirWest:
		return "west"
	case DirNorth:
		return "north"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	case DirAdvance:
		return "advance"
	case DirRetreat:
		return "retreat"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// IsCardinal reports whether d is west, north, east, or south.
func (d Direction) IsCardinal() bool {
	return d >= DirWest && d <= DirSouth
}

// Reverse returns the opposite cardinal direction. Non-cardinal directions
// are returned unchanged.
func (d Direction) Reverse() Direction {
	switch d {
	case DirWest:
		return DirEast
	case DirEast:
		return DirWest
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	default:
		return d
	}
}

// Delta returns the unit step for d. Non-cardinal directions return (0,0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirWest:
		return -1, 0
	case DirEast:
		return 1, 0
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseDirection converts a name ("west", "n", ...) to a Direction.
//
// Postcondition: Returns a cardinal direction, DirNone for "" or "none", or an error.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DirNone, nil
	case "w", "west":
		return DirWest, nil
	case "n", "north":
		return DirNorth, nil
	case "e", "east":
		return DirEast, nil
	case "s", "south":
		return DirSouth, nil
	default:
		return DirNone, fmt.Errorf("grid: unknown direction %q", s)
	}
}

// UnmarshalText lets a Direction be decoded from YAML or config strings.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Toward returns the cardinal direction that most reduces the distance from
// c to target, preferring the horizontal axis on ties. Returns DirNone when
// c == target.
func Toward(c, target Coords) Direction {
	dx, dy := target.X-c.X, target.Y-c.Y
	switch {
	case dx == 0 && dy == 0:
		return DirNone
	case abs(dx) >= abs(dy) && dx < 0:
		return DirWest
	case abs(dx) >= abs(dy):
		return DirEast
	case dy < 0:
		return DirNorth
	default:
		return DirSouth
	}
}
