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

// ShuntingYard reorders infix tokens into postfix order using the
// given operator registry for precedence.
//
// Binary operators associate left to right: a stacked operator of
// equal precedence is popped before the incoming one is pushed.  A
// unary (prefix) operator associates right to left, so it pops only
// operators of strictly greater precedence; "abs abs -5" therefore
// nests the way you'd expect.
//
// A parenthesis without a mate, on either side, is an Unbalanced
// error.  An operator symbol that isn't registered is an
// UnknownOperator error.
func ShuntingYard(tokens []Token, ops Operators) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, len(tokens))

	for _, t := range tokens {
		switch t.Type {
		case NumberToken, VariableToken:
			out = append(out, t)
		case OperatorToken:
			cur, have := ops.Lookup(t.Text)
			if !have {
				return nil, UnknownOperator{t.Text}
			}
			for 0 < len(stack) {
				top := stack[len(stack)-1]
				if top.Type != OperatorToken {
					break
				}
				topOp, have := ops.Lookup(top.Text)
				if !have {
					return nil, UnknownOperator{top.Text}
				}
				if topOp.Precedence() > cur.Precedence() ||
					(topOp.Precedence() == cur.Precedence() && !cur.Unary()) {
					out = append(out, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, t)
		case LeftParenToken:
			stack = append(stack, t)
		case RightParenToken:
			matched := false
			for 0 < len(stack) {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == LeftParenToken {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, Unbalanced{}
			}
		}
	}

	for 0 < len(stack) {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == LeftParenToken {
			return nil, Unbalanced{}
		}
		out = append(out, top)
	}

	return out, nil
}
