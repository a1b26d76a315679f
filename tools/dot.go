package tools

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Comcast/littleflow/flow"

	"gopkg.in/yaml.v2"
)

// Dot makes a Graphviz dot file for the given compiled graph.
//
// Sentinel nodes are drawn bold, decision tables get their rules in
// the label (as YAML, which reads better than JSON in a box), and an
// edge endpoint that names no node still gets drawn, so a dangling
// edge is easy to spot.
func Dot(g *flow.DecisionGraph, w io.WriteCloser) error {

	fmt.Fprintf(w, "digraph G {\n")
	fmt.Fprintf(w, `  graph [ordering=out,rankdir=TB,nodesep=0.3,ranksep=0.6]
  node [shape="record" style="rounded,filled"]
  edge [fontsize = "12"]
`)

	seen := make(map[string]bool, len(g.Nodes))

	for _, n := range g.Nodes {
		seen[n.Id] = true

		label := n.Id
		fillcolor := "#99ddc8"
		style := "rounded,filled"

		switch n.Type {
		case flow.InputNode, flow.OutputNode:
			fillcolor = "#2d93ad"
			style += ",bold"
		case flow.TableNode:
			fillcolor = "#52aa5e"
			if content, is := n.Content.(*flow.TableContent); is {
				js, err := yaml.Marshal(content.Rules)
				if err != nil {
					js = []byte(err.Error())
				}
				src := htmlEscape(string(js))
				label += `<FONT POINT-SIZE="6"><BR/>` +
					strings.Replace(src, "\n", `<BR ALIGN="LEFT"/>`, -1) +
					`</FONT>`
			}
		case flow.ExpressionNode:
			if content, is := n.Content.(*flow.ExpressionContent); is {
				for _, e := range content.Expressions {
					label += `<BR/><FONT POINT-SIZE="8">` +
						htmlEscape(e.Key+" = "+e.Value) + `</FONT>`
				}
			}
		case flow.FunctionNode:
			fillcolor = "#eac435"
			if src, is := n.Content.(string); is {
				src = htmlEscape(src)
				label += `<FONT POINT-SIZE="6"><BR/>` +
					strings.Replace(src+"\n", "\n", `<BR ALIGN="LEFT"/>`, -1) +
					`</FONT>`
			}
		}

		fmt.Fprintf(w, "  \"%s\" [style=\"%s\", fillcolor=\"%s\", label=<%s> ]\n",
			n.Id, style, fillcolor, label)
	}

	for _, e := range g.Edges {
		color := "black"
		if !seen[e.SourceId] || !seen[e.TargetId] {
			color = "red"
		}
		fmt.Fprintf(w, "  \"%s\" -> \"%s\" [ color=\"%s\" ]\n",
			e.SourceId, e.TargetId, color)
	}

	fmt.Fprintf(w, "}\n")
	return w.Close()
}

// PNG generates a PNG image based on output from Dot.
//
// This function will write two files: basename.dot and basename.png.
func PNG(g *flow.DecisionGraph, basename string) (string, error) {
	dotname := basename + ".dot"
	pngname := basename + ".png"

	dotfile, err := os.Create(dotname)
	if err != nil {
		return pngname, err
	}
	if err := Dot(g, dotfile); err != nil {
		return pngname, err
	}
	cmd := "dot -Tpng -Gstart=1 " + dotname + " > " + pngname
	if err := exec.Command("bash", "-c", cmd).Run(); err != nil {
		return pngname, err
	}
	return pngname, nil
}

func htmlEscape(s string) string {
	s = strings.Replace(s, "<", `&lt;`, -1)
	s = strings.Replace(s, ">", `&gt;`, -1)
	return s
}
