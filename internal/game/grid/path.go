package grid

// Passable reports whether an action may continue through the cell at c.
type Passable func(c Coords) bool

// TracePath walks from origin in dir and returns the cells at distances
// minRange through maxRange in increasing order. The path stops at the grid
// edge. When passable is non-nil, a cell failing it ends the path; the failing
// cell itself is included only when includeBlocked is set.
//
// Precondition: dir is cardinal; 0 <= minRange.
// Postcondition: the i-th returned cell is at distance minRange+i from origin.
func TracePath(origin Coords, dir Direction, minRange, maxRange int, bounds Bounds, passable Passable, includeBlocked bool) []Coords {
	if !dir.IsCardinal() {
		panic("grid: TracePath precondition violated: direction must be cardinal")
	}
	var path []Coords
	c := origin
	for distance := 0; distance <= maxRange; distance, c = distance+1, c.Move(dir) {
		if distance < minRange {
			continue
		}
		if !bounds.Contains(c) {
			break
		}
		blocked := passable != nil && !passable(c)
		if blocked && !includeBlocked {
			break
		}
		path = append(path, c)
		if blocked {
			break
		}
	}
	return path
}
