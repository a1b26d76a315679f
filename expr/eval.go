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

package expr

import "encoding/json"

// Context holds the runtime data that "$name" tokens resolve
// against.  The evaluator only reads from it.
//
// Values typically come from JSON, so Float understands float64,
// json.Number, and the common integer types in addition to literal
// floats.
type Context map[string]interface{}

// Float returns the numeric value bound to name, if any.
func (c Context) Float(name string) (float64, bool) {
	x, have := c[name]
	if !have {
		return 0, false
	}
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// EvalPostfix runs a postfix token sequence as a stack machine
// against ctx.
//
// The sequence must leave exactly one value on the stack.  Zero is an
// EmptyExpression error, and more than one is a MalformedPostfix
// error.  We refuse to guess which value the caller wanted.
func EvalPostfix(postfix []Token, ctx Context, ops Operators) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, t := range postfix {
		switch t.Type {
		case NumberToken:
			stack = append(stack, t.Number)
		case VariableToken:
			n, have := ctx.Float(t.Text)
			if !have {
				return 0, UnboundVariable{t.Text}
			}
			stack = append(stack, n)
		case OperatorToken:
			op, have := ops.Lookup(t.Text)
			if !have {
				return 0, UnknownOperator{t.Text}
			}
			if op.Unary() {
				if len(stack) < 1 {
					return 0, NotEnoughOperands{t.Text}
				}
				operand := stack[len(stack)-1]
				stack[len(stack)-1] = op.Apply(operand, 0)
			} else {
				if len(stack) < 2 {
					return 0, NotEnoughOperands{t.Text}
				}
				right := stack[len(stack)-1]
				left := stack[len(stack)-2]
				stack = stack[:len(stack)-1]
				stack[len(stack)-1] = op.Apply(left, right)
			}
		default:
			// ShuntingYard never emits parens.
			return 0, Unbalanced{}
		}
	}

	switch len(stack) {
	case 0:
		return 0, EmptyExpression{}
	case 1:
		return stack[0], nil
	default:
		return 0, MalformedPostfix{len(stack)}
	}
}

// An Evaluator lexes, parses, and evaluates expressions with a fixed
// operator registry.
//
// An Evaluator holds no other state, so one instance can serve
// concurrent calls (on independent Contexts).
type Evaluator struct {
	Ops Operators
}

// NewEvaluator makes an Evaluator with the standard operators.
func NewEvaluator() *Evaluator {
	return &Evaluator{Ops: NewOperators()}
}

// Evaluate computes the given infix expression against ctx.
func (e *Evaluator) Evaluate(src string, ctx Context) (float64, error) {
	tokens, err := Lex(src)
	if err != nil {
		return 0, err
	}
	postfix, err := ShuntingYard(tokens, e.Ops)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(postfix, ctx, e.Ops)
}

// Evaluate computes src against ctx using DefaultOperators.
func Evaluate(src string, ctx Context) (float64, error) {
	tokens, err := Lex(src)
	if err != nil {
		return 0, err
	}
	postfix, err := ShuntingYard(tokens, DefaultOperators)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(postfix, ctx, DefaultOperators)
}

// Eval is the legacy entry point: the result is a float64 on success
// and the error message (a string) on failure, which serializes to a
// JSON number or a JSON string.
//
// New code should call Evaluate and get a real error.
func Eval(src string, ctx Context) interface{} {
	n, err := Evaluate(src, ctx)
	if err != nil {
		return err.Error()
	}
	return n
}
