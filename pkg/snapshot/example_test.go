package snapshot_test

import (
	"fmt"

	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/placement"
	"github.com/matzehuels/polygrid/pkg/snapshot"
)

func ExampleCapture() {
	e, _ := placement.New(placement.WithGridSize(3))
	e.Place(grid.Coord{Row: 0, Col: 0})

	rec := snapshot.Capture(e)
	data, _ := snapshot.Encode(rec)
	back, _ := snapshot.Decode(data)

	fmt.Println(back.GridSize, back.CurrentTask, len(back.PlacedFigures[0]), len(back.ForbiddenZones))
	// Output:
	// 3 1a 3 5
}
