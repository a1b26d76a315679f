// Package littleflow provides a small decision-flow compiler and an
// arithmetic expression evaluator.
//
// The expression language is in package 'expr', the graph compiler is
// in package 'flow', and some command-line tools are in `cmd`.
package littleflow
