// Package grid provides coordinates, directions, and directional path tracing
// on a bounded combat grid.
package grid

import "fmt"

// Coords is a position on a map. Z is the dungeon level and is zero on
// surface maps.
type Coords struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	Z int `yaml:"z"`
}

// String returns "(x,y,z)".
func (c Coords) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Move returns c stepped one cell in dir. Non-cardinal directions return c.
func (c Coords) Move(dir Direction) Coords {
	dx, dy := dir.Delta()
	return Coords{X: c.X + dx, Y: c.Y + dy, Z: c.Z}
}

// DistanceTo returns the Chebyshev distance between c and o on the same level.
func (c Coords) DistanceTo(o Coords) int {
	return max(abs(c.X-o.X), abs(c.Y-o.Y))
}

// Bounds is the size of a rectangular grid with origin (0,0).
type Bounds struct {
	Width  int
	Height int
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Coords) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < b.Width && c.Y < b.Height
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
