// Package query bridges the dom tree to the antchfx XPath engine. An
// expression is compiled eagerly into a reusable Query; evaluation
// returns document-ordered, duplicate-free node lists.
package query

import (
	"github.com/antchfx/xpath"

	"github.com/jacoelho/xq/errors"
	"github.com/jacoelho/xq/internal/dom"
)

// Query is a compiled XPath expression.
type Query struct {
	expr *xpath.Expr
	text string
}

// Compile parses an XPath expression. A malformed expression yields an
// *errors.ExpressionError carrying the expression text.
func Compile(expression string) (*Query, error) {
	expr, err := xpath.Compile(expression)
	if err != nil {
		return nil, &errors.ExpressionError{Expression: expression, Err: err}
	}
	return &Query{expr: expr, text: expression}, nil
}

// Text returns the source expression.
func (q *Query) Text() string { return q.text }

// Select evaluates the query with ctx as the context node and returns
// every matched node in document order. Duplicate positions, as unions
// can produce, are dropped while keeping first-occurrence order.
func (q *Query) Select(ctx *dom.Node) []*dom.Node {
	it := q.expr.Select(newNavigator(ctx))

	var matched []*dom.Node
	seen := make(map[*dom.Node]struct{})
	for it.MoveNext() {
		nav, ok := it.Current().(*navigator)
		if !ok {
			continue
		}
		node := nav.matched()
		if _, dup := seen[node]; dup {
			continue
		}
		seen[node] = struct{}{}
		matched = append(matched, node)
	}
	return matched
}

// First evaluates the query and stops at the first match, so existence
// probes never materialize the full node-set.
func (q *Query) First(ctx *dom.Node) (*dom.Node, bool) {
	it := q.expr.Select(newNavigator(ctx))
	if !it.MoveNext() {
		return nil, false
	}
	nav, ok := it.Current().(*navigator)
	if !ok {
		return nil, false
	}
	return nav.matched(), true
}
