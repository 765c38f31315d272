package grid

// Direction is one of the four orthogonal sides of a cell.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four sides clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Delta returns the (row, col) step toward d.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	default:
		return 0, -1
	}
}

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// DirectionBetween returns the direction from a to an orthogonally adjacent b.
func DirectionBetween(a, b Coord) (Direction, bool) {
	switch dr, dc := b.Row-a.Row, b.Col-a.Col; {
	case dr == -1 && dc == 0:
		return Up, true
	case dr == 0 && dc == 1:
		return Right, true
	case dr == 1 && dc == 0:
		return Down, true
	case dr == 0 && dc == -1:
		return Left, true
	}
	return 0, false
}

// Neighborhood is a fixed set of relative offsets around a cell.
type Neighborhood []Coord

var (
	// Orthogonal is the 4-neighborhood (rook moves).
	Orthogonal = Neighborhood{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

	// King is the 8-neighborhood (king moves).
	King = Neighborhood{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Around returns the coordinates surrounding c, unclipped.
func (n Neighborhood) Around(c Coord) []Coord {
	out := make([]Coord, len(n))
	for i, o := range n {
		out[i] = c.Add(o.Row, o.Col)
	}
	return out
}

// Contains reports whether b lies in a's neighborhood.
func (n Neighborhood) Contains(a, b Coord) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	for _, o := range n {
		if o.Row == dr && o.Col == dc {
			return true
		}
	}
	return false
}
