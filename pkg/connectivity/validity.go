package connectivity

import (
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/task"
)

// Predicate judges whether a component qualifies as a placed figure.
type Predicate func(cells []grid.TypedCell) bool

// CountIs accepts components of exactly s cells.
func CountIs(s int) Predicate {
	return func(cells []grid.TypedCell) bool { return len(cells) == s }
}

// WeightIs accepts components whose weights sum to exactly s.
func WeightIs(s int) Predicate {
	return func(cells []grid.TypedCell) bool { return HalfUnits(cells) == 2*s }
}

// PredicateFor returns the validity predicate of a task with target s.
// Tasks without a predicate accept nothing.
func PredicateFor(v task.Validity, s int) Predicate {
	switch v {
	case task.ValidityCount:
		return CountIs(s)
	case task.ValidityWeight:
		return WeightIs(s)
	default:
		return func([]grid.TypedCell) bool { return false }
	}
}

// HalfUnits sums cell weights counted in halves.
func HalfUnits(cells []grid.TypedCell) int {
	n := 0
	for _, c := range cells {
		n += c.Type.HalfUnits()
	}
	return n
}

// Weight sums the cell weights of a component.
func Weight(cells []grid.TypedCell) float64 {
	return float64(HalfUnits(cells)) / 2
}

// Group is one component and its verdict.
type Group struct {
	Cells []grid.TypedCell
	Valid bool
}

// Analyze computes the components of cells and judges each one.
func Analyze(cells *grid.Set, rule Rule, valid Predicate) []Group {
	comps := Components(cells, rule)
	out := make([]Group, len(comps))
	for i, c := range comps {
		out[i] = Group{Cells: c, Valid: valid(c)}
	}
	return out
}
