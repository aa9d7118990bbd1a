package world

// Direction represents one of the eight compass directions around a cell
type Direction int

// Direction constants
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// AllDirections returns all eight directions, clockwise from North
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// Orthogonal returns the four cardinal directions
func Orthogonal() []Direction {
	return []Direction{North, East, South, West}
}

// Diagonal returns the four diagonal directions
func Diagonal() []Direction {
	return []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass directions
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// IsDiagonal returns true for the four diagonal directions
func (d Direction) IsDiagonal() bool {
	return d.IsValid() && d%2 == 1
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % 8
}

// Delta returns the column (x) and row (y) offsets for this direction.
// y grows downwards, so North is (0, -1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// Point is a grid coordinate
type Point struct {
	X int
	Y int
}

// Step returns the point one cell away in the given direction
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// ChebyshevDistance returns the king-move distance between two points
func (p Point) ChebyshevDistance(o Point) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}
