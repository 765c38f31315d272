package placement

import (
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/task"
)

// ForbiddenZone computes, from scratch, the cells a zone rule forbids around
// figures on an n×n grid. Figure cells are never part of the zone. ZoneNone
// yields an empty set.
func ForbiddenZone(figures [][]grid.TypedCell, rule task.ZoneRule, n int) *grid.Set {
	zone := grid.NewSet()
	nb := rule.Neighborhood()
	if nb == nil {
		return zone
	}

	occupied := make(map[grid.Coord]bool)
	for _, fig := range figures {
		for _, c := range fig {
			occupied[c.Coord] = true
		}
	}

	for _, fig := range figures {
		for _, c := range fig {
			for _, nc := range nb.Around(c.Coord) {
				if occupied[nc] || !inside(nc, n) {
					continue
				}
				zone.Add(grid.TypedCell{Coord: nc})
			}
		}
	}
	return zone
}

func inside(c grid.Coord, n int) bool {
	return c.Row >= 0 && c.Row < n && c.Col >= 0 && c.Col < n
}
