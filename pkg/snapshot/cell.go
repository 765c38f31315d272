package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/polygrid/pkg/grid"
)

// Cell is a typed cell encoded as [[row, col], type].
type Cell struct {
	Row, Col int
	Type     int
}

func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{[2]int{c.Row, c.Col}, c.Type})
}

func (c *Cell) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("cell: %w", err)
	}
	if len(parts) != 2 {
		return fmt.Errorf("cell: want [[row, col], type], got %d elements", len(parts))
	}
	var coord []int
	if err := json.Unmarshal(parts[0], &coord); err != nil {
		return fmt.Errorf("cell coordinate: %w", err)
	}
	if len(coord) != 2 {
		return fmt.Errorf("cell coordinate: want [row, col], got %d values", len(coord))
	}
	var t int
	if err := json.Unmarshal(parts[1], &t); err != nil {
		return fmt.Errorf("cell type: %w", err)
	}
	*c = Cell{Row: coord[0], Col: coord[1], Type: t}
	return nil
}

func toCells(cells []grid.TypedCell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Row: c.Row, Col: c.Col, Type: int(c.Type)}
	}
	return out
}

func fromCells(cells []Cell) []grid.TypedCell {
	out := make([]grid.TypedCell, len(cells))
	for i, c := range cells {
		t := grid.CellType(c.Type)
		if c.Type < 0 || c.Type > int(grid.MaxCellType) {
			t = grid.MaxCellType + 1
		}
		out[i] = grid.Typed(c.Row, c.Col, t)
	}
	return out
}
