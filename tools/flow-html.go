package tools

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/Comcast/littleflow/flow"

	md "github.com/russross/blackfriday/v2"
)

// RenderFlowHTML writes an HTML fragment documenting the given
// decisions: the Doc (Markdown), the table rows, expression text, and
// function source for each one.
func RenderFlowHTML(decisions []*flow.Decision, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<div class="decisions"><table>`)
	for _, d := range decisions {
		f(`<tr class="decision"><td><span id="%s" class="decisionId">%s</span></td><td>`, d.Id, d.Id)
		f(`<div class="decisionKind">%s</div>`, d.Kind)

		if d.Doc != "" {
			f(`<div class="decisionDoc doc">%s</div>`, md.Run([]byte(d.Doc)))
		}

		switch d.Kind {
		case "table":
			f(`<div class="rules"><table>`)
			cols := ruleColumns(d)
			f(`<tr>`)
			for _, col := range cols {
				f(`<th>%s</th>`, col)
			}
			f(`</tr>`)
			for _, rule := range d.Rules {
				f(`<tr>`)
				for _, col := range cols {
					f(`<td><code>%s</code></td>`, rule[col])
				}
				f(`</tr>`)
			}
			f(`</table></div>`)
		case "expression":
			f(`<div class="code"><pre>%s</pre></div>`, d.Expression)
		case "function":
			f(`<div class="code"><pre>%s</pre></div>`, d.Function)
		}

		for _, target := range d.Targets {
			f(`<div class="target"><a href="#%s"><code>%s</code></a></div>`, target, target)
		}

		f(`</td></tr>`)
	}
	f(`</table></div>`)

	return nil
}

// ruleColumns lists a decision's columns: declared inputs and
// outputs first, then any other keys its rules use, sorted.
func ruleColumns(d *flow.Decision) []string {
	cols := make([]string, 0, len(d.Inputs)+len(d.Outputs))
	have := make(map[string]bool)
	for _, name := range append(append([]string{}, d.Inputs...), d.Outputs...) {
		if !have[name] {
			have[name] = true
			cols = append(cols, name)
		}
	}
	extra := make([]string, 0, 4)
	for _, rule := range d.Rules {
		for name := range rule {
			if !have[name] {
				have[name] = true
				extra = append(extra, name)
			}
		}
	}
	sort.Strings(extra)
	return append(cols, extra...)
}

// RenderFlowPage writes a whole HTML page: the fragment from
// RenderFlowHTML plus the compiled graph as embedded JSON for
// client-side rendering.
func RenderFlowPage(title string, decisions []*flow.Decision, g *flow.DecisionGraph, out io.Writer, cssFiles []string) error {

	if cssFiles == nil {
		cssFiles = []string{"/static/flow-html.css"}
	}

	fmt.Fprintf(out, `<!DOCTYPE html>
<meta charset="utf-8">
<html>
  <head>
  <title>%s</title>
`, title)

	if g != nil {
		js, err := json.Marshal(g)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, `  <script>
  var thisGraph = %s;
  </script>
`, js)
	}

	for _, css := range cssFiles {
		fmt.Fprintf(out, `  <link rel="stylesheet" href="%s">
`, css)
	}

	fmt.Fprintf(out, `  </head>
  <body>
    <h1>%s</h1>
`, title)

	if err := RenderFlowHTML(decisions, out); err != nil {
		return err
	}

	fmt.Fprintf(out, `  </body>
</html>
`)

	return nil
}
