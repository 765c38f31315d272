package connectivity

import (
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/task"
)

// Adjacent reports whether two cells of the same set are connected.
type Adjacent func(a, b grid.TypedCell) bool

// KingAdjacent connects cells that are one king move apart.
func KingAdjacent(a, b grid.TypedCell) bool {
	return grid.King.Contains(a.Coord, b.Coord)
}

// OrthogonalAdjacent connects cells that share an edge.
func OrthogonalAdjacent(a, b grid.TypedCell) bool {
	return grid.Orthogonal.Contains(a.Coord, b.Coord)
}

// TypedAdjacent connects edge-sharing cells whose types meet along that edge.
func TypedAdjacent(a, b grid.TypedCell) bool {
	d, ok := grid.DirectionBetween(a.Coord, b.Coord)
	if !ok {
		return false
	}
	return Linked(a.Type, b.Type, d)
}

// Rule is an adjacency predicate together with the neighborhood that has to
// be scanned to find every cell it can connect.
type Rule struct {
	Adjacent Adjacent
	Scan     grid.Neighborhood
}

// RuleFor returns the adjacency rule for a task. The zero Rule is returned
// for tasks without accretion.
func RuleFor(a task.Adjacency) Rule {
	switch a {
	case task.AdjacencyKing:
		return Rule{Adjacent: KingAdjacent, Scan: grid.King}
	case task.AdjacencyOrthogonal:
		return Rule{Adjacent: OrthogonalAdjacent, Scan: grid.Orthogonal}
	case task.AdjacencyTyped:
		return Rule{Adjacent: TypedAdjacent, Scan: grid.Orthogonal}
	default:
		return Rule{}
	}
}
