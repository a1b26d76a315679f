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

// Node types, as the downstream engine spells them.
const (
	InputNode      = "inputNode"
	OutputNode     = "outputNode"
	TableNode      = "decisionTableNode"
	ExpressionNode = "expressionNode"
	FunctionNode   = "functionNode"
)

// Sentinel node ids.  Every compiled graph starts at InputNodeId and
// ends at OutputNodeId, and the engine looks these up by name.
const (
	InputNodeId  = "request"
	OutputNodeId = "response"
)

// FirstHitPolicy is the only hit policy this compiler emits: the
// first matching row wins.
const FirstHitPolicy = "first"

// A DecisionNode is one node of a compiled graph.
//
// The JSON here is a wire contract with the execution engine, so
// don't get creative with the field names.
type DecisionNode struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	// Content depends on Type: *TableContent, *ExpressionContent,
	// a string (function source), or nil for the sentinels.
	Content interface{} `json:"content,omitempty"`
}

// TableContent is the payload of a decisionTableNode.
type TableContent struct {
	HitPolicy string       `json:"hitPolicy"`
	Rules     []Rule       `json:"rules"`
	Inputs    []TableField `json:"inputs"`
	Outputs   []TableField `json:"outputs"`
}

// TableField describes one input or output column of a decision
// table.  All three names are the underlying key.
type TableField struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Field string `json:"field"`
}

// ExpressionContent is the payload of an expressionNode.
type ExpressionContent struct {
	Expressions []Expression `json:"expressions"`
}

// Expression is one named expression of an expressionNode.
type Expression struct {
	Id    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// A DecisionEdge connects two nodes by id.  Edges are derived from
// Decision Sources and Targets, never written by hand.
type DecisionEdge struct {
	Id           string  `json:"id"`
	SourceId     string  `json:"sourceId"`
	TargetId     string  `json:"targetId"`
	SourceHandle *string `json:"sourceHandle,omitempty"`
}

// A DecisionGraph is a compiled flow: the engine's whole input.
//
// A graph is built fresh on every compile and never mutated
// afterwards.
type DecisionGraph struct {
	Nodes []*DecisionNode `json:"nodes"`
	Edges []*DecisionEdge `json:"edges"`
}
