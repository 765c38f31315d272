package placement

import (
	"github.com/matzehuels/polygrid/pkg/connectivity"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/observability"
	"github.com/matzehuels/polygrid/pkg/shape"
	"github.com/matzehuels/polygrid/pkg/task"
)

// numSelectableTypes is the span of the cyclic type selector (types 0-4).
const numSelectableTypes = 5

// Engine is the placement state of one grid.
type Engine struct {
	grid   *grid.Grid
	mode   task.Mode
	params Params

	rotation int
	mirrored bool
	cellType grid.CellType
	offsets  shape.Shape

	figures [][]grid.TypedCell
	zone    *grid.Set
	free    *grid.Set

	observers []func(int)
	lastCount int
}

// New returns an engine with the default grid, task and parameters unless
// overridden by opts.
func New(opts ...Option) (*Engine, error) {
	c := newConfig(opts)
	g, err := grid.New(c.size, c.bounds)
	if err != nil {
		return nil, err
	}
	mode, err := task.Lookup(c.code)
	if err != nil {
		return nil, err
	}
	if err := c.params.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		grid:      g,
		mode:      mode,
		params:    c.params,
		observers: c.observers,
	}
	e.reset()
	return e, nil
}

// =============================================================================
// Configuration inputs
// =============================================================================

// SetGridSize resizes the grid and clears all placements. The engine is left
// untouched when n is rejected.
func (e *Engine) SetGridSize(n int) error {
	if err := e.grid.Resize(n); err != nil {
		return err
	}
	e.reset()
	return nil
}

// SetTask switches to the task with the given code and clears all placements.
func (e *Engine) SetTask(code string) error {
	mode, err := task.Lookup(code)
	if err != nil {
		return err
	}
	e.mode = mode
	e.reset()
	return nil
}

// SetParameters replaces the task targets and clears all placements.
func (e *Engine) SetParameters(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	e.params = p
	e.reset()
	return nil
}

// Rotate advances the rotation by one quarter turn.
func (e *Engine) Rotate() {
	e.rotation = (e.rotation + 1) % 4
	e.refreshOffsets()
}

// Mirror flips the current shape. Rotation is applied after the mirror.
func (e *Engine) Mirror() {
	e.mirrored = !e.mirrored
	e.refreshOffsets()
}

// ChangeType moves the type selector by delta, wrapping within 0-4.
func (e *Engine) ChangeType(delta int) {
	n := (int(e.cellType) + delta) % numSelectableTypes
	if n < 0 {
		n += numSelectableTypes
	}
	e.cellType = grid.CellType(n)
}

func (e *Engine) reset() {
	e.rotation = 0
	e.mirrored = false
	e.cellType = grid.CellFull
	e.figures = nil
	e.zone = grid.NewSet()
	e.free = grid.NewSet()
	e.refreshOffsets()
	observability.Engine().OnReset(e.mode.Code, e.grid.Size())
	e.notify()
}

func (e *Engine) baseShape() shape.Shape {
	switch e.mode.Shape {
	case task.ShapeCorner:
		return shape.Corner
	case task.ShapeRectangle:
		return shape.Rectangle(e.params.S, e.params.T)
	case task.ShapeUnit, task.ShapeTypeSelector:
		return shape.Unit
	default:
		return nil
	}
}

func (e *Engine) refreshOffsets() {
	base := e.baseShape()
	if e.mirrored {
		base = base.Mirror()
	}
	e.offsets = base.Rotate(e.rotation)
}

// =============================================================================
// Whole-shape discipline
// =============================================================================

// CandidateCells anchors the current shape at anchor. Cells that fall off the
// grid are dropped, so the result may be smaller than the shape.
func (e *Engine) CandidateCells(anchor grid.Coord) []grid.TypedCell {
	var out []grid.TypedCell
	for _, c := range e.offsets.Translate(anchor) {
		if e.grid.InBounds(c) {
			out = append(out, grid.TypedCell{Coord: c})
		}
	}
	return out
}

// CanPlace reports whether the current shape fits at anchor: fully on the
// grid, clear of every figure and clear of the zone.
func (e *Engine) CanPlace(anchor grid.Coord) bool {
	if e.mode.Discipline != task.WholeShape || len(e.offsets) == 0 {
		return false
	}
	cells := e.CandidateCells(anchor)
	if len(cells) != len(e.offsets) {
		return false
	}
	for _, c := range cells {
		if e.zone.Has(c.Coord) || e.figureAt(c.Coord) >= 0 {
			return false
		}
	}
	return true
}

// Place commits the current shape at anchor and extends the zone around it.
func (e *Engine) Place(anchor grid.Coord) bool {
	if !e.CanPlace(anchor) {
		observability.Engine().OnPlace(e.mode.Code, len(e.offsets), false)
		return false
	}
	fig := e.CandidateCells(anchor)
	e.figures = append(e.figures, fig)
	e.zone.AddAll(ForbiddenZone([][]grid.TypedCell{fig}, e.mode.Zone, e.grid.Size()).Cells())
	observability.Engine().OnPlace(e.mode.Code, len(fig), true)
	e.notify()
	return true
}

// RemoveAt removes the first figure containing c and recomputes the zone
// from the remaining figures.
func (e *Engine) RemoveAt(c grid.Coord) bool {
	i := -1
	if e.mode.Discipline == task.WholeShape {
		i = e.figureAt(c)
	}
	if i < 0 {
		observability.Engine().OnRemove(e.mode.Code, false)
		return false
	}
	e.figures = append(e.figures[:i:i], e.figures[i+1:]...)
	e.zone = ForbiddenZone(e.figures, e.mode.Zone, e.grid.Size())
	observability.Engine().OnRemove(e.mode.Code, true)
	e.notify()
	return true
}

func (e *Engine) figureAt(c grid.Coord) int {
	for i, fig := range e.figures {
		for _, fc := range fig {
			if fc.Coord == c {
				return i
			}
		}
	}
	return -1
}

// =============================================================================
// Accretion disciplines
// =============================================================================

// Toggle removes the free cell at c, or adds one when c is on the grid and
// unoccupied. Unit accretion adds full cells, typed accretion adds a cell of
// the selected type. Every accepted toggle regroups.
//
// The forbidden zone is not consulted. A cell added next to a figure joins
// its component under the task adjacency and the component is judged again,
// so a loose cell never remains inside the zone after the regroup.
func (e *Engine) Toggle(c grid.Coord) bool {
	if !e.mode.Discipline.Accretes() || !e.grid.InBounds(c) {
		observability.Engine().OnToggle(e.mode.Code, false, false)
		return false
	}
	if _, ok := e.free.Remove(c); ok {
		observability.Engine().OnToggle(e.mode.Code, false, true)
		e.Regroup()
		return true
	}
	cell := grid.TypedCell{Coord: c}
	if e.mode.Discipline == task.TypedAccretion {
		cell.Type = e.cellType
	}
	e.free.Add(cell)
	observability.Engine().OnToggle(e.mode.Code, true, true)
	e.Regroup()
	return true
}

// Regroup discards figures and zone and derives them again from the free
// cells. Calling it twice in a row changes nothing.
func (e *Engine) Regroup() {
	if !e.mode.Discipline.Accretes() {
		return
	}
	rule := connectivity.RuleFor(e.mode.Adjacency)
	valid := connectivity.PredicateFor(e.mode.Validity, e.params.S)
	groups := connectivity.Analyze(e.free, rule, valid)

	e.figures = nil
	for _, g := range groups {
		if g.Valid {
			e.figures = append(e.figures, g.Cells)
		}
	}
	e.zone = ForbiddenZone(e.figures, e.mode.Zone, e.grid.Size())
	observability.Engine().OnRegroup(e.mode.Code, len(groups), len(e.figures))
	e.notify()
}

// TryToggleAt is the click handler: it removes or places a whole shape, or
// toggles a free cell, depending on the task. Unsupported tasks accept nothing.
func (e *Engine) TryToggleAt(c grid.Coord) bool {
	switch e.mode.Discipline {
	case task.WholeShape:
		if e.figureAt(c) >= 0 {
			return e.RemoveAt(c)
		}
		return e.Place(c)
	case task.UnitAccretion, task.TypedAccretion:
		return e.Toggle(c)
	default:
		return false
	}
}

// =============================================================================
// Observers
// =============================================================================

// OnFigureCount registers fn to be called with the new figure count whenever
// it changes.
func (e *Engine) OnFigureCount(fn func(int)) {
	if fn != nil {
		e.observers = append(e.observers, fn)
	}
}

func (e *Engine) notify() {
	n := len(e.figures)
	if n == e.lastCount {
		return
	}
	e.lastCount = n
	for _, fn := range e.observers {
		fn(n)
	}
}
