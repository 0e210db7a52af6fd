package xq

import (
	"iter"
	"strings"
	"sync"

	"github.com/jacoelho/xq/errors"
	"github.com/jacoelho/xq/internal/dom"
	"github.com/jacoelho/xq/internal/nodeseq"
	"github.com/jacoelho/xq/internal/query"
	"github.com/jacoelho/xq/internal/xiter"
)

// Element wraps exactly one node of a parsed document. Wrappers are
// cheap value objects: navigation and selection calls hand out fresh
// wrappers around the visited nodes, except for Parent, which is
// computed once and returns the identical wrapper on every call.
//
// The underlying tree is never mutated; the lazy per-wrapper caches
// are guarded, so a single wrapper may be shared across goroutines.
type Element struct {
	node *dom.Node

	parentOnce sync.Once
	parent     *Element

	attrOnce sync.Once
	attrs    map[string]string
}

func newElement(node *dom.Node) *Element {
	return &Element{node: node}
}

// Name returns the node's tag name. The document node reports
// "#document", attribute nodes their attribute name.
func (e *Element) Name() string {
	return e.node.Name()
}

// Children streams the direct element children in document order.
// Non-element children such as text and comments are skipped. The
// sequence is lazy and single-pass.
func (e *Element) Children() *Sequence {
	return &Sequence{
		cur:  nodeseq.Over(e.node.Children()),
		keep: isElementNode,
	}
}

func isElementNode(n *dom.Node) bool {
	return n.Kind() == dom.ElementKind
}

// NextSibling returns the nearest following element sibling, skipping
// text and comment nodes, or nil when none follows.
func (e *Element) NextSibling() *Element {
	return findSibling(e.node, (*dom.Node).NextSibling)
}

// PreviousSibling returns the nearest preceding element sibling,
// skipping text and comment nodes, or nil when none precedes.
func (e *Element) PreviousSibling() *Element {
	return findSibling(e.node, (*dom.Node).PreviousSibling)
}

func findSibling(node *dom.Node, step func(*dom.Node) *dom.Node) *Element {
	for n := step(node); n != nil; n = step(n) {
		if n.Kind() == dom.ElementKind {
			return newElement(n)
		}
	}
	return nil
}

// Select evaluates an XPath expression with this node as context and
// streams the matched nodes in document order. The expression is
// compiled eagerly: a malformed expression fails here with an
// *errors.ExpressionError, never later during consumption.
func (e *Element) Select(expression string) (*Sequence, error) {
	q, err := query.Compile(expression)
	if err != nil {
		return nil, err
	}
	return &Sequence{cur: nodeseq.Over(q.Select(e.node))}, nil
}

// Get evaluates an XPath expression expected to match exactly one
// node. Zero or several matches fail with an *errors.CardinalityError
// whose message tells the two cases apart.
func (e *Element) Get(expression string) (*Element, error) {
	q, err := query.Compile(expression)
	if err != nil {
		return nil, err
	}
	matched := q.Select(e.node)
	if len(matched) != 1 {
		return nil, &errors.CardinalityError{Expression: expression, Matches: len(matched)}
	}
	return newElement(matched[0]), nil
}

// Exists reports whether the expression matches at least one node. It
// stops at the first match without materializing the node-set.
func (e *Element) Exists(expression string) (bool, error) {
	q, err := query.Compile(expression)
	if err != nil {
		return false, err
	}
	_, ok := q.First(e.node)
	return ok, nil
}

// Value streams the own text of every node matched by the expression,
// per Text: immediate text children only, no recursion. A match whose
// content is nested elements yields an empty string, not an error.
func (e *Element) Value(expression string) (iter.Seq[string], error) {
	seq, err := e.Select(expression)
	if err != nil {
		return nil, err
	}
	return xiter.Map(seq.All(), (*Element).Text), nil
}

// AllValue streams the full recursive text of every matched node,
// per AllText.
func (e *Element) AllValue(expression string) (iter.Seq[string], error) {
	seq, err := e.Select(expression)
	if err != nil {
		return nil, err
	}
	return xiter.Map(seq.All(), (*Element).AllText), nil
}

// TextOf concatenates the Value strings of every matched node.
func (e *Element) TextOf(expression string) (string, error) {
	values, err := e.Value(expression)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for v := range values {
		sb.WriteString(v)
	}
	return sb.String(), nil
}

// Text returns the node's own text content: the concatenation of its
// immediate text children in document order. Text and attribute nodes
// return their data.
func (e *Element) Text() string {
	return e.node.DirectText()
}

// AllText returns the text content of the whole subtree.
func (e *Element) AllText() string {
	return e.node.TextContent()
}

// Attr returns the node's attributes as a name-to-value map. The map
// is computed once per wrapper, is never nil, and must not be modified
// by the caller.
func (e *Element) Attr() map[string]string {
	e.attrOnce.Do(func() {
		attrs := e.node.Attrs()
		m := make(map[string]string, len(attrs))
		for _, a := range attrs {
			m[a.Name()] = a.Data()
		}
		e.attrs = m
	})
	return e.attrs
}

// Parent returns the wrapper of the parent node, or nil at the
// document node. The result is cached: repeated calls return the
// identical wrapper.
func (e *Element) Parent() *Element {
	e.parentOnce.Do(func() {
		if p := e.node.Parent(); p != nil {
			e.parent = newElement(p)
		}
	})
	return e.parent
}

// IsRoot reports whether this wrapper sits at the document node.
func (e *Element) IsRoot() bool {
	return e.node.Parent() == nil
}

// Root returns the topmost ancestor. A root wrapper returns itself.
func (e *Element) Root() *Element {
	if e.IsRoot() {
		return e
	}
	top := e.node.Parent()
	for top.Parent() != nil {
		top = top.Parent()
	}
	return newElement(top)
}
