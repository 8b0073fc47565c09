package skillgraph

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// posScale maps the [-1, 1] layout frame onto graphviz points.
const posScale = 300.0

// kindFillColor returns the fill color for a node partition: skills blue,
// careers green, matching the original two-valued categorical styling.
func kindFillColor(k Kind) string {
	if k == KindCareer {
		return "palegreen"
	}
	return "skyblue"
}

// ToDOT serializes the graph to Graphviz DOT, pinning every node to its
// precomputed layout position. Render the result with a position-honoring
// engine (neato); running it through dot would recompute the placement.
func ToDOT(g *Graph, layout Layout) string {
	var buf bytes.Buffer
	buf.WriteString("digraph skillmap {\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fontsize=12];\n")
	buf.WriteString("  edge [color=gray];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := []string{
			fmt.Sprintf("label=%q", n.Label()),
			fmt.Sprintf("fillcolor=%s", kindFillColor(n.Kind)),
		}
		if p, ok := layout[n.ID]; ok {
			attrs = append(attrs, fmt.Sprintf("pos=\"%.2f,%.2f!\"", p.X*posScale, p.Y*posScale))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Render rasterizes a DOT graph to the requested image format.
func Render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	gv.SetLayout(graphviz.NEATO)

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderSVG renders a DOT graph to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return Render(ctx, dot, graphviz.PNG)
}
