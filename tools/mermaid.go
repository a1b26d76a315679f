/* Copyright 2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tools

import (
	"fmt"
	"io"
	"strings"

	"github.com/Comcast/littleflow/flow"
)

type MermaidOpts struct {
	// ShowExpressions puts expression text on expression nodes.
	ShowExpressions bool `json:"showExpressions"`

	// TableFill is the fill color for decision-table nodes.
	TableFill string `json:"tableFill,omitempty"`

	// FunctionFill is the fill color for function nodes.
	FunctionFill string `json:"functionFill,omitempty"`
}

// Mermaid makes a Mermaid (https://mermaidjs.github.io/) input file
// for the given compiled graph.
func Mermaid(g *flow.DecisionGraph, w io.WriteCloser, opts *MermaidOpts) error {

	if opts == nil {
		opts = &MermaidOpts{
			ShowExpressions: true,
			TableFill:       "#bcf2db",
			FunctionFill:    "#f2ecbc",
		}
	}

	fmt.Fprintf(w, "graph TB\n")

	nids := make(map[string]string, len(g.Nodes))
	num := 0

	node := func(id string) string {
		if nid, already := nids[id]; already {
			return nid
		}
		num++
		nid := fmt.Sprintf("n%d", num)
		nids[id] = nid
		return nid
	}

	for _, n := range g.Nodes {
		nid := node(n.Id)

		label := n.Id
		switch n.Type {
		case flow.InputNode, flow.OutputNode:
			fmt.Fprintf(w, "  %s((\"%s\"))\n", nid, label)
		case flow.TableNode:
			fmt.Fprintf(w, "  %s[\"%s\"]\n", nid, label)
			if opts.TableFill != "" {
				fmt.Fprintf(w, "  style %s fill:%s\n", nid, opts.TableFill)
			}
		case flow.ExpressionNode:
			if opts.ShowExpressions {
				if content, is := n.Content.(*flow.ExpressionContent); is {
					for _, e := range content.Expressions {
						label += "<br/>" + mermaidEscape(e.Value)
					}
				}
			}
			fmt.Fprintf(w, "  %s(\"%s\")\n", nid, label)
		case flow.FunctionNode:
			fmt.Fprintf(w, "  %s[\"%s\"]\n", nid, label)
			if opts.FunctionFill != "" {
				fmt.Fprintf(w, "  style %s fill:%s\n", nid, opts.FunctionFill)
			}
		default:
			fmt.Fprintf(w, "  %s(\"%s\")\n", nid, label)
		}
	}

	for _, e := range g.Edges {
		fmt.Fprintf(w, "  %s --> %s\n", node(e.SourceId), node(e.TargetId))
	}

	fmt.Fprintf(w, "\n")

	return w.Close()
}

func mermaidEscape(s string) string {
	return strings.Replace(s, `"`, `'`, -1)
}
