package shape

import "github.com/matzehuels/polygrid/pkg/grid"

// Point is a vertex inside the unit square, X to the right and Y downward,
// both in [0, 1].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

var square = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

var polygons = [...][]Point{
	grid.CellFull:   square,
	grid.CellHalfSW: {{0, 0}, {0, 1}, {1, 1}},
	grid.CellHalfSE: {{1, 0}, {1, 1}, {0, 1}},
	grid.CellHalfNE: {{0, 0}, {1, 0}, {1, 1}},
	grid.CellHalfNW: {{0, 0}, {1, 0}, {0, 1}},
	grid.CellApexNW: {{0, 0}, {1, 0.5}, {0.5, 1}},
	grid.CellApexNE: {{1, 0}, {0.5, 1}, {0, 0.5}},
	grid.CellApexSE: {{1, 1}, {0, 0.5}, {0.5, 0}},
	grid.CellApexSW: {{0, 1}, {0.5, 0}, {1, 0.5}},
}

// CellPolygon returns the outline drawn for a cell of type t. Types outside
// [0, 8] fall back to the full square.
//
// The outlines are glyphs, not areas: every half-cell weighs 0.5 whatever its
// drawn size. An outline passes through the midpoint of exactly the sides the
// cell connects through, so types 5-8 show their apex on the closed corner and
// reach the midpoints of the two open sides.
func CellPolygon(t grid.CellType) []Point {
	if !t.Valid() {
		t = grid.CellFull
	}
	src := polygons[t]
	out := make([]Point, len(src))
	copy(out, src)
	return out
}
