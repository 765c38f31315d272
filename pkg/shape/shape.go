// Package shape is the catalog of rigid figures and the geometric transforms
// applied to them.
//
// A [Shape] is an ordered list of (dRow, dCol) offsets from an anchor.
// Transforms are pure: they return new shapes and never touch their input.
// Placement compares offset sets, so two shapes that differ only in offset
// order are interchangeable (see [Shape.Equal]).
package shape

import (
	"fmt"
	"slices"

	"github.com/matzehuels/polygrid/pkg/grid"
)

// Offset is a position relative to a shape's anchor.
type Offset struct {
	DRow int `json:"dRow"`
	DCol int `json:"dCol"`
}

// Shape is an immutable rigid figure expressed in local coordinates.
type Shape []Offset

// Names of the catalog entries.
const (
	NameCorner = "corner"
)

// Corner is the right-angle triomino every corner task is built from.
var Corner = Shape{{0, 0}, {1, 0}, {0, 1}}

// Unit is the single-cell shape used by the accretion disciplines.
var Unit = Shape{{0, 0}}

// Catalog returns the named base shapes: the corner triomino and one
// single-cell entry per cell type ("cell0" … "cell8"). Rotations and
// mirrors of the corner are derived on demand and not stored.
func Catalog() map[string]Shape {
	m := map[string]Shape{NameCorner: slices.Clone(Corner)}
	for t := grid.CellFull; t <= grid.MaxCellType; t++ {
		m[CellShapeName(t)] = slices.Clone(Unit)
	}
	return m
}

// CellShapeName is the catalog key of the single-cell entry for type t.
func CellShapeName(t grid.CellType) string {
	return fmt.Sprintf("cell%d", t)
}

// Rectangle returns the rows×cols block with offsets (i, j), 0 ≤ i < rows,
// 0 ≤ j < cols, in row-major order. Non-positive sizes yield an empty shape.
func Rectangle(rows, cols int) Shape {
	if rows <= 0 || cols <= 0 {
		return Shape{}
	}
	s := make(Shape, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s = append(s, Offset{i, j})
		}
	}
	return s
}

// Rotate applies (x, y) → (y, −x) exactly k mod 4 times. Negative k rotates
// the other way.
func (s Shape) Rotate(k int) Shape {
	turns := ((k % 4) + 4) % 4
	out := slices.Clone(s)
	for ; turns > 0; turns-- {
		for i, o := range out {
			out[i] = Offset{DRow: o.DCol, DCol: -o.DRow}
		}
	}
	return out
}

// Mirror applies (x, y) → (−x, y).
func (s Shape) Mirror() Shape {
	out := make(Shape, len(s))
	for i, o := range s {
		out[i] = Offset{DRow: -o.DRow, DCol: o.DCol}
	}
	return out
}

// Translate anchors the shape at c.
func (s Shape) Translate(c grid.Coord) []grid.Coord {
	out := make([]grid.Coord, len(s))
	for i, o := range s {
		out[i] = c.Add(o.DRow, o.DCol)
	}
	return out
}

// Normalize shifts the shape so its minimum row and column are zero and
// sorts offsets row-major. It identifies shapes up to translation.
func (s Shape) Normalize() Shape {
	if len(s) == 0 {
		return Shape{}
	}
	minR, minC := s[0].DRow, s[0].DCol
	for _, o := range s[1:] {
		minR = min(minR, o.DRow)
		minC = min(minC, o.DCol)
	}
	out := make(Shape, len(s))
	for i, o := range s {
		out[i] = Offset{o.DRow - minR, o.DCol - minC}
	}
	slices.SortFunc(out, compareOffsets)
	return out
}

// Equal reports whether s and o contain the same offsets, ignoring order.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	a, b := slices.Clone(s), slices.Clone(o)
	slices.SortFunc(a, compareOffsets)
	slices.SortFunc(b, compareOffsets)
	return slices.Equal(a, b)
}

func compareOffsets(a, b Offset) int {
	if a.DRow != b.DRow {
		return a.DRow - b.DRow
	}
	return a.DCol - b.DCol
}
