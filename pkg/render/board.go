package render

import (
	"github.com/matzehuels/polygrid/pkg/connectivity"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/placement"
)

// Board is the renderer's view of an engine.
type Board struct {
	Task     string
	GridSize int
	Figures  []Group
	Loose    []Group
	Zone     []grid.TypedCell
}

// Group is one connected set of cells and the edges connecting it.
type Group struct {
	Cells []grid.TypedCell
	Edges [][2]grid.Coord
}

// Weight is the group's weighted size.
func (g Group) Weight() float64 { return connectivity.Weight(g.Cells) }

// FromEngine collects figures, loose components and zone from e.
func FromEngine(e *placement.Engine) Board {
	mode := e.Task()
	rule := connectivity.RuleFor(mode.Adjacency)
	if rule.Adjacent == nil {
		rule = connectivity.Rule{Adjacent: connectivity.OrthogonalAdjacent, Scan: grid.Orthogonal}
	}

	b := Board{Task: mode.Code, GridSize: e.GridSize(), Zone: e.Zone().Cells()}
	for _, f := range e.Figures() {
		b.Figures = append(b.Figures, group(f, rule))
	}
	for _, c := range connectivity.Components(e.LooseCells(), rule) {
		b.Loose = append(b.Loose, group(c, rule))
	}
	return b
}

func group(cells []grid.TypedCell, rule connectivity.Rule) Group {
	g := Group{Cells: cells}
	set := grid.NewSet(cells...)
	for _, a := range cells {
		for _, nc := range rule.Scan.Around(a.Coord) {
			b, ok := set.Get(nc)
			if !ok || !before(a.Coord, b.Coord) || !rule.Adjacent(a, b) {
				continue
			}
			g.Edges = append(g.Edges, [2]grid.Coord{a.Coord, b.Coord})
		}
	}
	return g
}

// before orders coordinates row-major so each edge is emitted once.
func before(a, b grid.Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}
