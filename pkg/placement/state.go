package placement

import (
	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/task"
)

// State is a complete, engine-independent copy of an engine's persisted
// fields. The snapshot package encodes it; the engine only produces and
// consumes it.
type State struct {
	GridSize int
	Task     string
	Params   Params
	Figures  [][]grid.TypedCell
	Zone     []grid.TypedCell
	Free     []grid.TypedCell
	Rotation int
	Mirrored bool
	CellType grid.CellType
}

// State captures the engine.
func (e *Engine) State() State {
	return State{
		GridSize: e.grid.Size(),
		Task:     e.mode.Code,
		Params:   e.params,
		Figures:  e.Figures(),
		Zone:     e.zone.Cells(),
		Free:     e.free.Cells(),
		Rotation: e.rotation,
		Mirrored: e.mirrored,
		CellType: e.cellType,
	}
}

// Restore replaces the engine's state with s. The zone is always recomputed
// from the figures, and accretion figures from the free cells. On error the
// engine is left exactly as it was and the error carries ErrCodeMalformedState.
func (e *Engine) Restore(s State) error {
	next, err := e.build(s)
	if err != nil {
		return errors.Wrap(errors.ErrCodeMalformedState, err, "restore state")
	}
	observers, last := e.observers, e.lastCount
	*e = *next
	e.observers, e.lastCount = observers, last
	e.notify()
	return nil
}

func (e *Engine) build(s State) (*Engine, error) {
	g, err := grid.New(s.GridSize, e.grid.Bounds())
	if err != nil {
		return nil, err
	}
	mode, err := task.Lookup(s.Task)
	if err != nil {
		return nil, err
	}
	if err := s.Params.Validate(); err != nil {
		return nil, err
	}
	if s.Rotation < 0 || s.Rotation > 3 {
		return nil, errors.New(errors.ErrCodeMalformedState, "rotation %d outside 0-3", s.Rotation)
	}
	if int(s.CellType) >= numSelectableTypes {
		return nil, errors.New(errors.ErrCodeMalformedState, "type selector %d outside 0-4", s.CellType)
	}

	next := &Engine{
		grid:     g,
		mode:     mode,
		params:   s.Params,
		rotation: s.Rotation,
		mirrored: s.Mirrored,
		cellType: s.CellType,
		zone:     grid.NewSet(),
		free:     grid.NewSet(),
	}
	next.refreshOffsets()

	switch {
	case mode.Discipline == task.WholeShape:
		if len(s.Free) > 0 {
			return nil, errors.New(errors.ErrCodeMalformedState, "task %s keeps no free cells", mode.Code)
		}
		if err := next.restoreFigures(s.Figures); err != nil {
			return nil, err
		}
	case mode.Discipline.Accretes():
		if err := next.restoreFree(s.Free, s.Figures); err != nil {
			return nil, err
		}
		next.Regroup()
	default:
		if len(s.Figures) > 0 || len(s.Free) > 0 {
			return nil, errors.New(errors.ErrCodeMalformedState, "task %s accepts no placements", mode.Code)
		}
	}
	return next, nil
}

func (e *Engine) restoreFigures(figures [][]grid.TypedCell) error {
	seen := grid.NewSet()
	for i, fig := range figures {
		if len(fig) == 0 {
			return errors.New(errors.ErrCodeMalformedState, "figure %d is empty", i)
		}
		for _, c := range fig {
			if err := e.grid.CheckCoord(c.Coord); err != nil {
				return err
			}
			if c.Type != grid.CellFull {
				return errors.New(errors.ErrCodeMalformedState, "cell %s has type %d in a whole-shape task", c.Coord, c.Type)
			}
			if !seen.Add(c) {
				return errors.New(errors.ErrCodeMalformedState, "cell %s belongs to two figures", c.Coord)
			}
		}
		e.figures = append(e.figures, append([]grid.TypedCell(nil), fig...))
	}
	if err := checkSeparated(e.figures, e.mode.Zone); err != nil {
		return err
	}
	e.zone = ForbiddenZone(e.figures, e.mode.Zone, e.grid.Size())
	return nil
}

// checkSeparated rejects figures whose cells fall inside another figure's
// zone, which Place never produces.
func checkSeparated(figures [][]grid.TypedCell, rule task.ZoneRule) error {
	nb := rule.Neighborhood()
	if nb == nil {
		return nil
	}
	owner := make(map[grid.Coord]int)
	for i, fig := range figures {
		for _, c := range fig {
			owner[c.Coord] = i
		}
	}
	for i, fig := range figures {
		for _, c := range fig {
			for _, nc := range nb.Around(c.Coord) {
				if j, ok := owner[nc]; ok && j != i {
					return errors.New(errors.ErrCodeMalformedState, "cell %s lies in the zone of figure %d", nc, i)
				}
			}
		}
	}
	return nil
}

func (e *Engine) restoreFree(free []grid.TypedCell, figures [][]grid.TypedCell) error {
	add := func(c grid.TypedCell) error {
		if err := e.grid.CheckCoord(c.Coord); err != nil {
			return err
		}
		if !c.Type.Valid() || (e.mode.Discipline == task.UnitAccretion && c.Type != grid.CellFull) {
			return errors.New(errors.ErrCodeMalformedState, "cell %s has type %d not allowed in task %s", c.Coord, c.Type, e.mode.Code)
		}
		if prev, ok := e.free.Get(c.Coord); ok {
			if prev.Type != c.Type {
				return errors.New(errors.ErrCodeMalformedState, "cell %s stored with two types", c.Coord)
			}
			return nil
		}
		e.free.Add(c)
		return nil
	}
	for _, c := range free {
		if _, ok := e.free.Get(c.Coord); ok {
			return errors.New(errors.ErrCodeMalformedState, "free cell %s listed twice", c.Coord)
		}
		if err := add(c); err != nil {
			return err
		}
	}
	// Figure cells missing from the free list are taken from the figures.
	for _, fig := range figures {
		for _, c := range fig {
			if err := add(c); err != nil {
				return err
			}
		}
	}
	return nil
}
