package connectivity

import "github.com/matzehuels/polygrid/pkg/grid"

type sideSet uint8

func sides(ds ...grid.Direction) sideSet {
	var s sideSet
	for _, d := range ds {
		s |= 1 << d
	}
	return s
}

func (s sideSet) open(d grid.Direction) bool { return s&(1<<d) != 0 }

var openSides = [...]sideSet{
	grid.CellFull:   sides(grid.Up, grid.Right, grid.Down, grid.Left),
	grid.CellHalfSW: sides(grid.Down, grid.Left),
	grid.CellHalfSE: sides(grid.Down, grid.Right),
	grid.CellHalfNE: sides(grid.Up, grid.Right),
	grid.CellHalfNW: sides(grid.Up, grid.Left),
	grid.CellApexNW: sides(grid.Down, grid.Right),
	grid.CellApexNE: sides(grid.Down, grid.Left),
	grid.CellApexSE: sides(grid.Up, grid.Left),
	grid.CellApexSW: sides(grid.Up, grid.Right),
}

const numTypes = int(grid.MaxCellType) + 1

// links[a][b][d] is true when a cell of type a links to a cell of type b
// sitting next to it in direction d.
var links = buildLinks()

func buildLinks() (t [numTypes][numTypes][4]bool) {
	for a := 0; a < numTypes; a++ {
		for b := 0; b < numTypes; b++ {
			ta, tb := grid.CellType(a), grid.CellType(b)
			if ta.IsHalf() && ta == tb {
				continue
			}
			for _, d := range grid.Directions {
				t[a][b][d] = openSides[a].open(d) && openSides[b].open(d.Opposite())
			}
		}
	}
	return t
}

// Linked reports whether a cell of type a connects to a cell of type b that
// lies next to it in direction d. Invalid types never link.
func Linked(a, b grid.CellType, d grid.Direction) bool {
	if !a.Valid() || !b.Valid() || d < grid.Up || d > grid.Left {
		return false
	}
	return links[a][b][d]
}

// OpenSides returns the sides through which a cell of type t can connect.
func OpenSides(t grid.CellType) []grid.Direction {
	if !t.Valid() {
		return nil
	}
	var out []grid.Direction
	for _, d := range grid.Directions {
		if openSides[t].open(d) {
			out = append(out, d)
		}
	}
	return out
}
