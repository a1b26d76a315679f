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

import (
	"context"

	"github.com/dop251/goja"
)

// TableNodeBuilder builds a decisionTableNode.
//
// The rows go in verbatim, the declared input/output names become
// field descriptors, and the hit policy is always FirstHitPolicy.
type TableNodeBuilder struct {
}

func (b *TableNodeBuilder) Build(ctx context.Context, d *Decision) (*DecisionNode, error) {
	rules := d.Rules
	if rules == nil {
		rules = []Rule{}
	}
	return &DecisionNode{
		Id:   d.Id,
		Name: d.Id,
		Type: TableNode,
		Content: &TableContent{
			HitPolicy: FirstHitPolicy,
			Rules:     rules,
			Inputs:    makeFields(d.Inputs),
			Outputs:   makeFields(d.Outputs),
		},
	}, nil
}

func makeFields(names []string) []TableField {
	fields := make([]TableField, 0, len(names))
	for _, name := range names {
		fields = append(fields, TableField{
			Id:    name,
			Name:  name,
			Field: name,
		})
	}
	return fields
}

// ExpressionNodeBuilder builds an expressionNode with a single
// expression keyed by the Decision's first declared input.
type ExpressionNodeBuilder struct {
}

func (b *ExpressionNodeBuilder) Build(ctx context.Context, d *Decision) (*DecisionNode, error) {
	if len(d.Inputs) == 0 {
		return nil, NoInputs{d.Id}
	}
	key := d.Inputs[0]
	return &DecisionNode{
		Id:   d.Id,
		Name: d.Id,
		Type: ExpressionNode,
		Content: &ExpressionContent{
			Expressions: []Expression{
				{
					Id:    key,
					Key:   key,
					Value: d.Expression,
				},
			},
		},
	}, nil
}

// FunctionNodeBuilder builds a functionNode that wraps the
// Decision's function source verbatim.
//
// With Check set, the source must at least compile as ECMAScript.
// The program isn't kept; we can't run it here anyway, but we can
// catch a typo before the engine does.
type FunctionNodeBuilder struct {
	Check bool
}

func (b *FunctionNodeBuilder) Build(ctx context.Context, d *Decision) (*DecisionNode, error) {
	if b.Check {
		if _, err := goja.Compile(d.Id, d.Function, true); err != nil {
			return nil, BadFunction{d.Id, err}
		}
	}
	return &DecisionNode{
		Id:      d.Id,
		Name:    d.Id,
		Type:    FunctionNode,
		Content: d.Function,
	}, nil
}
