package placement

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
)

func TestStateRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Engine)
	}{
		{"whole shape", func(e *Engine) {
			e.Rotate()
			e.Place(grid.Coord{Row: 2, Col: 2})
			e.Place(grid.Coord{Row: 6, Col: 6})
			e.Mirror()
		}},
		{"unit accretion", func(e *Engine) {
			_ = e.SetTask("1c")
			for _, c := range []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 5, Col: 5}} {
				e.Toggle(c)
			}
		}},
		{"typed accretion", func(e *Engine) {
			_ = e.SetTask("2a")
			_ = e.SetParameters(Params{S: 1, T: 1})
			e.ChangeType(1)
			e.Toggle(grid.Coord{Row: 3, Col: 3})
			e.ChangeType(2)
			e.Toggle(grid.Coord{Row: 3, Col: 2})
			e.ChangeType(1)
			e.Toggle(grid.Coord{Row: 8, Col: 8})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newEngine(t)
			tt.setup(src)
			saved := src.State()

			dst := newEngine(t, WithGridSize(4))
			if err := dst.Restore(saved); err != nil {
				t.Fatalf("Restore() error: %v", err)
			}
			if diff := cmp.Diff(saved, dst.State(), sortCells); diff != "" {
				t.Errorf("restored state mismatch (-saved +restored):\n%s", diff)
			}
			if !dst.Offsets().Equal(src.Offsets()) {
				t.Errorf("offsets %v, want %v", dst.Offsets(), src.Offsets())
			}
		})
	}
}

func TestRestoreNotifiesObservers(t *testing.T) {
	src := newEngine(t)
	src.Place(grid.Coord{Row: 0, Col: 0})
	src.Place(grid.Coord{Row: 5, Col: 5})

	var got []int
	dst := newEngine(t)
	dst.OnFigureCount(func(n int) { got = append(got, n) })
	if err := dst.Restore(src.State()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2}, got); diff != "" {
		t.Errorf("observer calls mismatch (-want +got):\n%s", diff)
	}
	dst.RemoveAt(grid.Coord{Row: 0, Col: 0})
	if diff := cmp.Diff([]int{2, 1}, got); diff != "" {
		t.Errorf("observer lost after restore (-want +got):\n%s", diff)
	}
}

func TestRestoreRecomputesZone(t *testing.T) {
	e := newEngine(t, WithGridSize(5))
	s := State{
		GridSize: 5,
		Task:     "1a",
		Params:   DefaultParams,
		Figures:  [][]grid.TypedCell{cells([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1})},
		Zone:     cells([2]int{4, 4}),
	}
	if err := e.Restore(s); err != nil {
		t.Fatal(err)
	}
	if e.Zone().Has(grid.Coord{Row: 4, Col: 4}) || !e.Zone().Has(grid.Coord{Row: 1, Col: 1}) {
		t.Errorf("zone not derived from figures: %v", e.Zone().Cells())
	}
}

func TestRestoreRejectsMalformed(t *testing.T) {
	valid := func() State {
		return State{GridSize: 5, Task: "1a", Params: DefaultParams}
	}
	tests := []struct {
		name   string
		mutate func(*State)
	}{
		{"grid too small", func(s *State) { s.GridSize = 0 }},
		{"unknown task", func(s *State) { s.Task = "7x" }},
		{"bad params", func(s *State) { s.Params = Params{} }},
		{"rotation", func(s *State) { s.Rotation = 4 }},
		{"type selector", func(s *State) { s.CellType = 5 }},
		{"figure off grid", func(s *State) {
			s.Figures = [][]grid.TypedCell{cells([2]int{4, 4}, [2]int{5, 4}, [2]int{4, 5})}
		}},
		{"overlapping figures", func(s *State) {
			s.Figures = [][]grid.TypedCell{
				cells([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}),
				cells([2]int{0, 1}, [2]int{1, 1}, [2]int{0, 2}),
			}
		}},
		{"figure in zone", func(s *State) {
			s.Figures = [][]grid.TypedCell{
				cells([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1}),
				cells([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}),
			}
		}},
		{"empty figure", func(s *State) { s.Figures = [][]grid.TypedCell{{}} }},
		{"free cells in whole-shape task", func(s *State) { s.Free = cells([2]int{2, 2}) }},
		{"typed cell in unit task", func(s *State) {
			s.Task = "1c"
			s.Free = []grid.TypedCell{grid.Typed(1, 1, grid.CellHalfNE)}
		}},
		{"duplicate free cell", func(s *State) {
			s.Task = "2a"
			s.Free = []grid.TypedCell{grid.Cell(1, 1), grid.Typed(1, 1, grid.CellHalfNE)}
		}},
		{"invalid cell type", func(s *State) {
			s.Task = "2a"
			s.Free = []grid.TypedCell{grid.Typed(1, 1, 9)}
		}},
		{"placements in unsupported task", func(s *State) {
			s.Task = "3a"
			s.Free = cells([2]int{0, 0})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, WithGridSize(6), WithTask("1c"))
			e.Toggle(grid.Coord{Row: 3, Col: 3})
			before := e.State()

			s := valid()
			tt.mutate(&s)
			err := e.Restore(s)
			if !errors.Is(err, errors.ErrCodeMalformedState) {
				t.Fatalf("Restore() error = %v, want MALFORMED_STATE", err)
			}
			if diff := cmp.Diff(before, e.State()); diff != "" {
				t.Errorf("failed restore mutated the engine (-before +after):\n%s", diff)
			}
		})
	}
}

func TestRestoreAgreesWithPlace(t *testing.T) {
	corner := cells([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 1})
	tests := []struct {
		name   string
		anchor grid.Coord
		second []grid.TypedCell
		ok     bool
	}{
		{"diagonal neighbour", grid.Coord{Row: 1, Col: 1}, cells([2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}), false},
		{"edge neighbour", grid.Coord{Row: 0, Col: 2}, cells([2]int{0, 2}, [2]int{1, 2}, [2]int{0, 3}), false},
		{"separated", grid.Coord{Row: 3, Col: 3}, cells([2]int{3, 3}, [2]int{4, 3}, [2]int{3, 4}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placed := newEngine(t, WithGridSize(5), WithTask("1a"))
			placed.Place(grid.Coord{Row: 0, Col: 0})
			if got := placed.Place(tt.anchor); got != tt.ok {
				t.Fatalf("Place(%v) = %v, want %v", tt.anchor, got, tt.ok)
			}

			e := newEngine(t, WithGridSize(5), WithTask("1a"))
			err := e.Restore(State{
				GridSize: 5,
				Task:     "1a",
				Params:   DefaultParams,
				Figures:  [][]grid.TypedCell{corner, tt.second},
			})
			if tt.ok {
				if err != nil {
					t.Fatalf("Restore() error = %v", err)
				}
				if e.FigureCount() != 2 {
					t.Errorf("FigureCount() = %d, want 2", e.FigureCount())
				}
				return
			}
			if !errors.Is(err, errors.ErrCodeMalformedState) {
				t.Fatalf("Restore() error = %v, want MALFORMED_STATE", err)
			}
			if e.FigureCount() != 0 {
				t.Errorf("failed restore left %d figures", e.FigureCount())
			}
		})
	}
}

func TestRestoreMergesFigureCells(t *testing.T) {
	e := newEngine(t)
	s := State{
		GridSize: 10,
		Task:     "1c",
		Params:   Params{S: 2, T: 1},
		Figures:  [][]grid.TypedCell{cells([2]int{4, 4}, [2]int{4, 5})},
	}
	if err := e.Restore(s); err != nil {
		t.Fatal(err)
	}
	if e.FigureCount() != 1 || e.FreeCells().Len() != 2 {
		t.Errorf("figures %d free %d, want 1 and 2", e.FigureCount(), e.FreeCells().Len())
	}
}
