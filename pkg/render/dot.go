package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/polygrid/pkg/grid"
)

// Options configures graph generation.
type Options struct {
	// ShowZone adds forbidden cells as grey points.
	ShowZone bool
	// HideLoose omits components that did not validate.
	HideLoose bool
	// Grid pins every node at its board position (neato layout).
	Grid bool
}

// ToDOT converts a board to Graphviz DOT.
func ToDOT(b Board, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", fmt.Sprintf("task %s, %dx%d", b.Task, b.GridSize, b.GridSize))
	buf.WriteString("  bgcolor=\"transparent\";\n")
	if opts.Grid {
		buf.WriteString("  layout=neato;\n")
	}
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.05,0.02\"];\n")
	buf.WriteString("\n")

	for i, g := range b.Figures {
		writeCluster(&buf, fmt.Sprintf("figure_%d", i), fmt.Sprintf("figure %d (%s)", i+1, fmtWeight(g)),
			"style=filled, fillcolor=\"#d8f0d8\", color=\"#3c8c3c\"", g, opts)
	}
	if !opts.HideLoose {
		for i, g := range b.Loose {
			writeCluster(&buf, fmt.Sprintf("loose_%d", i), fmt.Sprintf("loose %d (%s)", i+1, fmtWeight(g)),
				"style=dashed, color=\"#8c8c8c\"", g, opts)
		}
	}
	if opts.ShowZone && len(b.Zone) > 0 {
		buf.WriteString("  subgraph cluster_zone {\n")
		buf.WriteString("    label=\"forbidden\";\n    style=dotted;\n")
		for _, c := range b.Zone {
			fmt.Fprintf(&buf, "    %s [shape=point, width=0.12, color=grey%s];\n", nodeID(c.Coord), pin(c.Coord, opts))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, name, label, style string, g Group, opts Options) {
	fmt.Fprintf(buf, "  subgraph cluster_%s {\n", name)
	fmt.Fprintf(buf, "    graph [label=%q, %s];\n", label, style)
	for _, c := range g.Cells {
		fmt.Fprintf(buf, "    %s [label=%q%s];\n", nodeID(c.Coord), nodeLabel(c), pin(c.Coord, opts))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(buf, "    %s -- %s;\n", nodeID(e[0]), nodeID(e[1]))
	}
	buf.WriteString("  }\n")
}

func nodeID(c grid.Coord) string {
	return fmt.Sprintf("c%d_%d", c.Row, c.Col)
}

func nodeLabel(c grid.TypedCell) string {
	if c.Type == grid.CellFull {
		return c.Coord.String()
	}
	return c.Coord.String() + "\n" + c.Type.String()
}

func pin(c grid.Coord, opts Options) string {
	if !opts.Grid {
		return ""
	}
	return fmt.Sprintf(", pos=\"%d,%d!\"", c.Col, -c.Row)
}

func fmtWeight(g Group) string {
	w := g.Weight()
	if w == float64(len(g.Cells)) {
		return fmt.Sprintf("%d cells", len(g.Cells))
	}
	return fmt.Sprintf("%d cells, weight %g", len(g.Cells), w)
}
