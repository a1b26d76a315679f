package expr

// These errors are user errors, not internal errors.

// EmptyExpression occurs when Lex is given an empty (or
// all-whitespace) expression, and when EvalPostfix consumes all of
// its tokens without producing a value.
type EmptyExpression struct {
	Src string
}

func (e EmptyExpression) Error() string {
	return "invalid expression"
}

// UnknownOperator occurs when a token's operator symbol isn't in the
// Operators registry in play.
type UnknownOperator struct {
	Symbol string
}

func (e UnknownOperator) Error() string {
	return `unknown operator: ` + e.Symbol
}

// UnboundVariable occurs when a "$name" token has no (numeric) value
// in the Context.
type UnboundVariable struct {
	Name string
}

func (e UnboundVariable) Error() string {
	return `invalid or missing variable: ` + e.Name
}

// Unbalanced occurs when a parenthesis has no mate.
type Unbalanced struct{}

func (e Unbalanced) Error() string {
	return "mismatched parentheses"
}

// NotEnoughOperands occurs when the value stack underflows while
// applying an operator.
type NotEnoughOperands struct {
	Symbol string
}

func (e NotEnoughOperands) Error() string {
	return `not enough operands for operator ` + e.Symbol
}

// MalformedPostfix occurs when a postfix sequence leaves more than
// one value on the stack.  That means the input wasn't really one
// expression (say "5 5"), so we protest instead of returning the top
// value.
type MalformedPostfix struct {
	Leftover int
}

func (e MalformedPostfix) Error() string {
	return "malformed expression: leftover operands"
}
