package connectivity

import "github.com/matzehuels/polygrid/pkg/grid"

// Components partitions cells into maximal connected groups under rule.
// An empty set yields no components.
func Components(cells *grid.Set, rule Rule) [][]grid.TypedCell {
	if cells.Len() == 0 || rule.Adjacent == nil {
		return nil
	}
	visited := make(map[grid.Coord]bool, cells.Len())
	var out [][]grid.TypedCell

	for _, start := range cells.Cells() {
		if visited[start.Coord] {
			continue
		}
		visited[start.Coord] = true
		stack := []grid.TypedCell{start}
		var comp []grid.TypedCell

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, cur)

			for _, nc := range rule.Scan.Around(cur.Coord) {
				if visited[nc] {
					continue
				}
				nb, ok := cells.Get(nc)
				if !ok || !rule.Adjacent(cur, nb) {
					continue
				}
				visited[nc] = true
				stack = append(stack, nb)
			}
		}
		out = append(out, comp)
	}
	return out
}
