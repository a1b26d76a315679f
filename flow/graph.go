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

package flow

import "context"

// Edges derives the graph's edges from the Decisions' declared
// Sources and Targets: one edge per entry, in input order.
//
// This derivation is pure and deliberately credulous.  Nothing here
// checks that an endpoint names a real Decision; see Validate for
// that.
func Edges(decisions []*Decision) []*DecisionEdge {
	handle := ""
	edges := make([]*DecisionEdge, 0, len(decisions))
	for _, d := range decisions {
		for _, source := range d.Sources {
			edges = append(edges, &DecisionEdge{
				SourceId:     source,
				TargetId:     d.Id,
				SourceHandle: &handle,
			})
		}
		for _, target := range d.Targets {
			edges = append(edges, &DecisionEdge{
				SourceId:     d.Id,
				TargetId:     target,
				SourceHandle: &handle,
			})
		}
	}
	return edges
}

// A GraphBuilder compiles Decisions into a DecisionGraph.
//
// A GraphBuilder holds no mutable state, so one instance can serve
// concurrent compilations.
type GraphBuilder struct {
	Builders Builders
}

// NewGraphBuilder makes a GraphBuilder with the standard builders.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		Builders: NewBuilders(),
	}
}

// Build compiles the given Decisions, in order, into a graph bounded
// by the request and response sentinel nodes.
//
// A Decision whose Kind has no registered builder is an UnknownKind
// error, and any builder error aborts the whole compilation.  Build
// does no cycle detection and no reachability analysis.
func (g *GraphBuilder) Build(ctx context.Context, decisions []*Decision) (*DecisionGraph, error) {
	nodes := make([]*DecisionNode, 0, len(decisions)+2)

	nodes = append(nodes, &DecisionNode{
		Id:   InputNodeId,
		Name: InputNodeId,
		Type: InputNode,
	})

	for _, d := range decisions {
		b, have := g.Builders.Lookup(d.Kind)
		if !have {
			return nil, UnknownKind{d.Id, d.Kind}
		}
		n, err := b.Build(ctx, d)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	nodes = append(nodes, &DecisionNode{
		Id:   OutputNodeId,
		Name: OutputNodeId,
		Type: OutputNode,
	})

	return &DecisionGraph{
		Nodes: nodes,
		Edges: Edges(decisions),
	}, nil
}

// Build compiles decisions with the standard builders.
func Build(ctx context.Context, decisions []*Decision) (*DecisionGraph, error) {
	return NewGraphBuilder().Build(ctx, decisions)
}
