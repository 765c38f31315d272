// Package pkg provides the core libraries for Polygrid, a placement and
// connectivity engine for polyominoes, unit cells and typed half-cells on a
// square grid.
//
// # Overview
//
// A board is an N×N grid. The active task decides what the user places
// (a fixed polyomino, a rectangle, single unit cells or typed half-cells),
// which neighbouring cells become forbidden around a placed figure and which
// adjacency turns loose cells into figures. The pkg directory is organized
// into three areas:
//
//  1. Domain: [grid], [shape], [task], [connectivity], [placement]
//  2. Persistence: [snapshot], [session], [cache]
//  3. Support: [render], [config], [errors], [observability]
//
// # Architecture
//
// The typical data flow:
//
//	task code + parameters
//	         ↓
//	    [placement] engine (shape, zone, figures, free cells)
//	         ↓
//	    [snapshot] record (JSON)
//	         ↓
//	    [session] store / [render] DOT, SVG, PDF, PNG
//
// # Quick Start
//
// Place the "1a" corner shape and inspect the forbidden zone:
//
//	e, err := placement.New(placement.WithGridSize(5), placement.WithTask("1a"))
//	if err != nil {
//	    return err
//	}
//	if e.Place(grid.Coord{Row: 0, Col: 0}) {
//	    fmt.Println(e.FigureCount(), e.Zone().Len())
//	}
//
// Save and reload it:
//
//	data, _ := snapshot.Encode(snapshot.Capture(e))
//	rec, _ := snapshot.Decode(data)
//	_ = snapshot.Apply(e, rec)
//
// # Main Packages
//
// [grid] - Coordinates, directions, cell types, typed cell sets and the
// bounds a board size must respect.
//
// [shape] - Offset lists with rotation, mirroring and normalization, the
// fixed shape catalog and the half-cell polygons.
//
// [task] - The task table. Each code maps to a placement discipline, an
// adjacency, a zone rule, a validity predicate and a shape source.
//
// [connectivity] - Adjacency predicates, the half-cell link table, connected
// components and weighted sizes.
//
// [placement] - The engine. It owns the board and enforces that figures never
// overlap each other or the forbidden zone.
//
// [snapshot] - The persisted JSON record, strict decoding and content digests.
//
// [session] - Server-side boards keyed by UUID with memory, file, Redis and
// MongoDB stores.
//
// [cache] - Render cache with memory, file and null backends.
//
// [render] - Connectivity graphs as Graphviz DOT, converted to SVG, PDF and PNG.
//
// [config] - TOML configuration shared by the CLI and the server.
//
// [errors] - Coded errors with user messages and HTTP status mapping.
//
// [observability] - Hook registry for engine, session, cache and HTTP events.
//
// # Testing
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/placement/...  # Specific package
//	go test -run Example         # Examples only
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/grid
// [shape]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/shape
// [task]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/task
// [connectivity]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/connectivity
// [placement]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/placement
// [snapshot]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/snapshot
// [session]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/session
// [cache]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/render
// [config]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/polygrid/pkg/observability
package pkg
