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

import "math"

// Operator is a (named) operation that the parser and evaluator can
// use without knowing anything about it beyond its precedence and
// arity.
//
// A unary Operator's Apply ignores its right argument.
type Operator interface {
	Apply(left, right float64) float64

	// Precedence orders operators in the shunting-yard parser.
	// Bigger binds tighter.
	Precedence() int

	// Unary reports whether this operator takes one operand
	// (written prefix) instead of two (written infix).
	Unary() bool
}

// Operators maps an operator symbol to its implementation.
//
// A registry is built once and then treated as read-only, so one
// registry can serve concurrent evaluations.
type Operators map[string]Operator

// Register adds (or replaces) an operator.  Don't call this after
// handing the registry to an Evaluator that's in use.
func (ops Operators) Register(symbol string, op Operator) {
	ops[symbol] = op
}

func (ops Operators) Lookup(symbol string) (Operator, bool) {
	op, have := ops[symbol]
	return op, have
}

type binary struct {
	f    func(l, r float64) float64
	prec int
}

func (o binary) Apply(left, right float64) float64 { return o.f(left, right) }
func (o binary) Precedence() int                   { return o.prec }
func (o binary) Unary() bool                       { return false }

type unary struct {
	f    func(x float64) float64
	prec int
}

func (o unary) Apply(left, right float64) float64 { return o.f(left) }
func (o unary) Precedence() int                   { return o.prec }
func (o unary) Unary() bool                       { return true }

// NewOperators makes a registry with the standard operator set:
// "+" and "-" at precedence 1, "*" and "%" at precedence 2, and the
// unary "abs" at precedence 3.
func NewOperators() Operators {
	return Operators{
		"+":   binary{func(l, r float64) float64 { return l + r }, 1},
		"-":   binary{func(l, r float64) float64 { return l - r }, 1},
		"*":   binary{func(l, r float64) float64 { return l * r }, 2},
		"%":   binary{func(l, r float64) float64 { return math.Mod(l, r) }, 2},
		"abs": unary{math.Abs, 3},
	}
}

// DefaultOperators is the registry used by the package-level
// Evaluate and Eval.
var DefaultOperators = NewOperators()
