package grid

import "fmt"

// Coord addresses one square of the grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns c translated by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Step returns the neighbor of c in direction d.
func (c Coord) Step(d Direction) Coord {
	dr, dc := d.Delta()
	return c.Add(dr, dc)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CellType tags a cell as a full square (0) or one of the eight half-cells.
type CellType uint8

const (
	CellFull CellType = iota
	CellHalfSW
	CellHalfSE
	CellHalfNE
	CellHalfNW
	CellApexNW
	CellApexNE
	CellApexSE
	CellApexSW
)

// MaxCellType is the highest valid cell type.
const MaxCellType = CellApexSW

// CellKind is the variant of the CellType union.
type CellKind int

const (
	KindFull CellKind = iota
	KindDiagonal
	KindApex
	KindInvalid
)

// Kind reports which family t belongs to.
func (t CellType) Kind() CellKind {
	switch {
	case t == CellFull:
		return KindFull
	case t >= CellHalfSW && t <= CellHalfNW:
		return KindDiagonal
	case t >= CellApexNW && t <= CellApexSW:
		return KindApex
	default:
		return KindInvalid
	}
}

// Valid reports whether t is in [0, 8].
func (t CellType) Valid() bool { return t <= MaxCellType }

// IsFull reports whether t is the generic full cell.
func (t CellType) IsFull() bool { return t == CellFull }

// IsHalf reports whether t is one of the half-cell variants.
func (t CellType) IsHalf() bool {
	k := t.Kind()
	return k == KindDiagonal || k == KindApex
}

// Orientation is the cell corner a half-cell is anchored on: the right
// angle of a diagonal half or the point of an apex half.
type Orientation uint8

const (
	OrientNone Orientation = iota
	OrientNW
	OrientNE
	OrientSE
	OrientSW
)

func (o Orientation) String() string {
	switch o {
	case OrientNW:
		return "nw"
	case OrientNE:
		return "ne"
	case OrientSE:
		return "se"
	case OrientSW:
		return "sw"
	default:
		return "none"
	}
}

var halfOrientations = [...]Orientation{
	CellHalfSW: OrientSW,
	CellHalfSE: OrientSE,
	CellHalfNE: OrientNE,
	CellHalfNW: OrientNW,
	CellApexNW: OrientNW,
	CellApexNE: OrientNE,
	CellApexSE: OrientSE,
	CellApexSW: OrientSW,
}

// Half returns the orientation of a half-cell. It reports false for the
// full cell and for invalid types.
func (t CellType) Half() (Orientation, bool) {
	if !t.IsHalf() {
		return OrientNone, false
	}
	return halfOrientations[t], true
}

// HalfUnits is the cell's weight counted in halves: 2 for a full cell,
// 1 for any half-cell. Integer halves keep weight sums exact.
func (t CellType) HalfUnits() int {
	if t.IsHalf() {
		return 1
	}
	return 2
}

// Weight is the cell's contribution to a weighted component sum.
func (t CellType) Weight() float64 {
	return float64(t.HalfUnits()) / 2
}

var cellTypeNames = [...]string{
	CellFull:   "full",
	CellHalfSW: "half-sw",
	CellHalfSE: "half-se",
	CellHalfNE: "half-ne",
	CellHalfNW: "half-nw",
	CellApexNW: "apex-nw",
	CellApexNE: "apex-ne",
	CellApexSE: "apex-se",
	CellApexSW: "apex-sw",
}

func (t CellType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("celltype(%d)", uint8(t))
	}
	return cellTypeNames[t]
}

// TypedCell is one occupied coordinate with its type tag.
type TypedCell struct {
	Coord
	Type CellType `json:"type"`
}

// Cell returns a full cell at (row, col).
func Cell(row, col int) TypedCell {
	return TypedCell{Coord: Coord{Row: row, Col: col}}
}

// Typed returns a cell of type t at (row, col).
func Typed(row, col int, t CellType) TypedCell {
	return TypedCell{Coord: Coord{Row: row, Col: col}, Type: t}
}

func (c TypedCell) String() string {
	if c.Type == CellFull {
		return c.Coord.String()
	}
	return fmt.Sprintf("%s:%d", c.Coord, c.Type)
}
