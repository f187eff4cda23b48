package wave

// Direction is one of the four cardinal offsets used both while learning
// adjacency from a sample and while walking the output grid.
type Direction int

const (
	// Left is the (-1, 0) offset.
	Left Direction = iota
	// Down is the (0, +1) offset.
	Down
	// Right is the (+1, 0) offset.
	Right
	// Up is the (0, -1) offset.
	Up
)

// DirectionCount is the number of cardinal directions.
const DirectionCount = 4

var (
	dx = [DirectionCount]int{-1, 0, 1, 0}
	dy = [DirectionCount]int{0, 1, 0, -1}
)

// Directions lists all directions in encoding order.
var Directions = [DirectionCount]Direction{Left, Down, Right, Up}

// Offset returns the unit vector of d.
func (d Direction) Offset() (x, y int) {
	return dx[d], dy[d]
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	return (d + 2) % DirectionCount
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Down:
		return "down"
	case Right:
		return "right"
	case Up:
		return "up"
	default:
		return "invalid"
	}
}
