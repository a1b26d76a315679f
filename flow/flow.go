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

// Package flow compiles a list of decision specifications into a
// graph of typed nodes for a downstream decision-execution engine.
//
// This package only builds graphs.  It never runs a decision table,
// and it doesn't check that a graph is acyclic or even connected.
// Those jobs belong to whatever executes the graph.
package flow

import "context"

// A Rule is one row of a decision table: column name to cell text.
type Rule map[string]string

// A Decision is the compiler's unit of input: one named piece of
// rule logic that becomes one node in the compiled graph.
//
// A Decision is read-only once constructed.  Which of the payload
// fields matter depends on Kind: "table" uses Rules, Inputs, and
// Outputs; "expression" uses Expression and Inputs; "function" uses
// Function.
type Decision struct {
	// Id must be unique within one flow.
	Id string `json:"id" yaml:"id"`

	// Kind selects the NodeBuilder: "table", "expression", or
	// "function" in the default registry.
	Kind string `json:"kind" yaml:"kind"`

	// Doc is optional documentation (Markdown welcome).
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`

	// Rules is the decision table, in row order.
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`

	// Expression is raw expression source text.
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"`

	// Function is raw function source text (ECMAScript for the
	// engines we target).
	Function string `json:"function,omitempty" yaml:"function,omitempty"`

	// Inputs and Outputs are field names, in order.
	Inputs  []string `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs []string `json:"outputs,omitempty" yaml:"outputs,omitempty"`

	// Sources and Targets are ids of adjacent Decisions.  The
	// compiler derives edges from them without checking that they
	// name real Decisions.
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// A NodeBuilder turns a Decision of one Kind into a graph node.
type NodeBuilder interface {
	Build(ctx context.Context, d *Decision) (*DecisionNode, error)
}

// Builders maps a Decision Kind to its NodeBuilder.
//
// Like an expr.Operators registry, a Builders registry is built once
// and then treated as read-only, so one registry can serve concurrent
// compilations.
type Builders map[string]NodeBuilder

// Register adds (or replaces) a builder.
func (bs Builders) Register(kind string, b NodeBuilder) {
	bs[kind] = b
}

func (bs Builders) Lookup(kind string) (NodeBuilder, bool) {
	b, have := bs[kind]
	return b, have
}

// NewBuilders makes a registry with the standard builders for
// "table", "expression", and "function".
func NewBuilders() Builders {
	return Builders{
		"table":      &TableNodeBuilder{},
		"expression": &ExpressionNodeBuilder{},
		"function":   &FunctionNodeBuilder{},
	}
}
