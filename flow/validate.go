package flow

import "fmt"

// GraphAnalysis reports what a look over a compiled graph found.
type GraphAnalysis struct {
	NodeCount int
	EdgeCount int

	// Dangling lists edge endpoints that name no node in the
	// graph.
	Dangling []string

	// Orphans lists non-sentinel nodes that no edge touches.
	Orphans []string

	Errors []string
}

// Validate is an optional pass over a compiled graph.
//
// The compiler itself never rejects a dangling edge, so callers who
// want that guarantee run Validate before handing the graph to an
// engine.  Sentinel problems (missing or duplicated request/response
// nodes, duplicate ids) land in Errors.
func Validate(g *DecisionGraph) *GraphAnalysis {
	a := &GraphAnalysis{
		NodeCount: len(g.Nodes),
		EdgeCount: len(g.Edges),
		Dangling:  make([]string, 0, 4),
		Orphans:   make([]string, 0, 4),
		Errors:    make([]string, 0, 4),
	}

	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if ids[n.Id] {
			a.Errors = append(a.Errors, fmt.Sprintf("duplicate node id %q", n.Id))
		}
		ids[n.Id] = true
	}

	if len(g.Nodes) == 0 || g.Nodes[0].Type != InputNode {
		a.Errors = append(a.Errors, "graph doesn't start with the input node")
	}
	if len(g.Nodes) == 0 || g.Nodes[len(g.Nodes)-1].Type != OutputNode {
		a.Errors = append(a.Errors, "graph doesn't end with the output node")
	}

	touched := make(map[string]bool, len(g.Nodes))
	seen := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		for _, id := range []string{e.SourceId, e.TargetId} {
			touched[id] = true
			if !ids[id] && !seen[id] {
				seen[id] = true
				a.Dangling = append(a.Dangling, id)
			}
		}
	}

	for _, n := range g.Nodes {
		if n.Id == InputNodeId || n.Id == OutputNodeId {
			continue
		}
		if !touched[n.Id] {
			a.Orphans = append(a.Orphans, n.Id)
		}
	}

	return a
}
