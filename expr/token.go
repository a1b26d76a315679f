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

// Package expr implements a little arithmetic expression language.
//
// An expression is a whitespace-delimited sequence of numbers,
// variable references ("$name"), operator symbols, and parentheses.
// Variables are resolved against a Context at evaluation time.
//
// The pipeline is Lex (text to tokens), ShuntingYard (infix tokens to
// postfix tokens), and EvalPostfix (postfix tokens to a number).
// Evaluate runs all three.
package expr

import (
	"strconv"
	"strings"
)

// TokenType classifies a Token.
type TokenType int

const (
	// NumberToken is a literal number.
	NumberToken TokenType = iota

	// VariableToken is a "$name" reference into a Context.
	VariableToken

	// OperatorToken is an operator symbol.
	//
	// The lexer does not consult the operator registry, so any
	// fragment that isn't a number, a variable, or a paren ends
	// up here.  An unregistered symbol is rejected later, by the
	// parser or the evaluator.
	OperatorToken

	LeftParenToken
	RightParenToken
)

// Token is the atomic lexical unit of an expression.
type Token struct {
	Type TokenType

	// Number is the value for a NumberToken.
	Number float64

	// Text is the variable name (without the "$") for a
	// VariableToken or the symbol for an OperatorToken.
	Text string
}

func (t Token) String() string {
	switch t.Type {
	case NumberToken:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case VariableToken:
		return "$" + t.Text
	case LeftParenToken:
		return "("
	case RightParenToken:
		return ")"
	default:
		return t.Text
	}
}

// Lex splits the given expression into Tokens.
//
// Classification is permissive: anything that isn't a paren, a
// number, or a "$"-prefixed variable is an OperatorToken.  An empty
// (or all-whitespace) expression is an error.
func Lex(src string) ([]Token, error) {
	fragments := strings.Fields(src)
	if len(fragments) == 0 {
		return nil, EmptyExpression{src}
	}

	tokens := make([]Token, 0, len(fragments))
	for _, s := range fragments {
		switch s {
		case "(":
			tokens = append(tokens, Token{Type: LeftParenToken})
		case ")":
			tokens = append(tokens, Token{Type: RightParenToken})
		default:
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				tokens = append(tokens, Token{Type: NumberToken, Number: n})
			} else if strings.HasPrefix(s, "$") {
				tokens = append(tokens, Token{Type: VariableToken, Text: s[1:]})
			} else {
				tokens = append(tokens, Token{Type: OperatorToken, Text: s})
			}
		}
	}

	return tokens, nil
}
