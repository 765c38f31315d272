package placement

import (
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/shape"
	"github.com/matzehuels/polygrid/pkg/task"
)

// Figures returns a copy of the placed figures.
func (e *Engine) Figures() [][]grid.TypedCell {
	out := make([][]grid.TypedCell, len(e.figures))
	for i, f := range e.figures {
		out[i] = append([]grid.TypedCell(nil), f...)
	}
	return out
}

// Zone returns a copy of the forbidden zone.
func (e *Engine) Zone() *grid.Set { return e.zone.Clone() }

// FreeCells returns a copy of the accretion working set, figure cells
// included. Use LooseCells for the cells disjoint from Figures.
func (e *Engine) FreeCells() *grid.Set { return e.free.Clone() }

// LooseCells returns the free cells that belong to no figure.
func (e *Engine) LooseCells() *grid.Set {
	loose := e.free.Clone()
	for _, f := range e.figures {
		for _, c := range f {
			loose.Remove(c.Coord)
		}
	}
	return loose
}

// Offsets returns the current shape after mirror and rotation.
func (e *Engine) Offsets() shape.Shape {
	return append(shape.Shape(nil), e.offsets...)
}

func (e *Engine) CellType() grid.CellType { return e.cellType }
func (e *Engine) Rotation() int           { return e.rotation }
func (e *Engine) Mirrored() bool          { return e.mirrored }
func (e *Engine) GridSize() int           { return e.grid.Size() }
func (e *Engine) Bounds() grid.Bounds     { return e.grid.Bounds() }
func (e *Engine) Task() task.Mode         { return e.mode }
func (e *Engine) Params() Params          { return e.params }
func (e *Engine) FigureCount() int        { return len(e.figures) }

// Occupant classifies a coordinate for rendering.
type Occupant int

const (
	Empty Occupant = iota
	Figure
	Loose
	Forbidden
)

// At reports what occupies c and the type of the cell there.
func (e *Engine) At(c grid.Coord) (Occupant, grid.CellType) {
	for _, f := range e.figures {
		for _, fc := range f {
			if fc.Coord == c {
				return Figure, fc.Type
			}
		}
	}
	if fc, ok := e.free.Get(c); ok {
		return Loose, fc.Type
	}
	if e.zone.Has(c) {
		return Forbidden, grid.CellFull
	}
	return Empty, grid.CellFull
}
