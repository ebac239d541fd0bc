package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mealcycle/pkg/meal"
	"github.com/matzehuels/mealcycle/pkg/plan"
)

// ToDOT converts a plan to a left-to-right Graphviz timeline.
//
// Positions are chained in order with grey edges. Each meal's consecutive
// occurrences are linked by a labelled edge carrying the gap; links whose gap
// exceeds the meal's tolerance are drawn red. Catalog positions are shaded
// and placeholder positions dashed.
func ToDOT(p *plan.Plan) string {
	var buf bytes.Buffer
	buf.WriteString("digraph plan {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [color=grey70, arrowsize=0.6];\n")
	buf.WriteString("\n")

	for i, m := range p.Meals {
		fmt.Fprintf(&buf, "  p%d [%s];\n", i, nodeAttrs(i, m, i < p.Source, p.IsPlaceholder(i)))
	}

	buf.WriteString("\n")
	for i := 1; i < len(p.Meals); i++ {
		fmt.Fprintf(&buf, "  p%d -> p%d;\n", i-1, i)
	}

	buf.WriteString("\n")
	last := make(map[meal.Meal]int)
	for i, m := range p.Meals {
		if p.IsPlaceholder(i) {
			continue
		}
		if prev, ok := last[m]; ok {
			gap := i - prev
			color := "steelblue"
			if gap > m.Tolerance {
				color = "firebrick"
			}
			fmt.Fprintf(&buf, "  p%d -> p%d [label=\"%d\", color=%s, fontcolor=%s, constraint=false];\n",
				prev, i, gap, color, color)
		}
		last[m] = i
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(i int, m meal.Meal, source, placeholder bool) string {
	if placeholder {
		return fmt.Sprintf("label=\"%d\", style=\"rounded,dashed\"", i)
	}
	attrs := fmt.Sprintf("label=%q", fmt.Sprintf("%d\n%s (%d)", i, m.Name, m.Tolerance))
	if source {
		attrs += ", fillcolor=lightgrey"
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
