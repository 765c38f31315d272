// Package render draws the cell connectivity graph of a board.
//
// Every occupied cell becomes a node and every pair of cells the task's
// adjacency connects becomes an edge. Figures are drawn as filled clusters,
// loose accretion components as dashed clusters, and the forbidden zone as
// an optional cluster of grey points.
//
// # Usage
//
//	b := render.FromEngine(engine)
//	dot := render.ToDOT(b, render.Options{ShowZone: true})
//	svg, err := render.RenderSVG(ctx, dot)
//
// PDF and PNG output go through SVG and need rsvg-convert from librsvg:
//
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)
//
// # Dependencies
//
// SVG rendering runs graphviz in-process through [github.com/goccy/go-graphviz].
package render
