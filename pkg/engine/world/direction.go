package world

// Direction represents one of the four grid directions a tile can connect in
type Direction int

// Direction constants, clockwise from North
const (
	North Direction = iota
	East
	South
	West
)

var directionTable = [...]struct {
	name     string
	row, col int
}{
	North: {"North", -1, 0},
	East:  {"East", 0, 1},
	South: {"South", 1, 0},
	West:  {"West", 0, -1},
}

// AllDirections returns the four connectivity directions in a fixed order
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// IsValid returns true if the direction is one of the four grid directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionTable[d].name
}

// Opposite returns the direction pointing back the way we came.
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	return directionTable[d].row, directionTable[d].col
}
