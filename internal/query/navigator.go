package query

import (
	"github.com/antchfx/xpath"

	"github.com/jacoelho/xq/internal/dom"
)

// navigator implements xpath.NodeNavigator over the dom tree. A
// position is either a node (attr == -1) or one of the current
// element's attributes (attr >= 0).
type navigator struct {
	root *dom.Node
	cur  *dom.Node
	attr int
}

func newNavigator(ctx *dom.Node) *navigator {
	root := ctx
	for root.Parent() != nil {
		root = root.Parent()
	}
	return &navigator{root: root, cur: ctx, attr: -1}
}

func (n *navigator) NodeType() xpath.NodeType {
	if n.attr >= 0 {
		return xpath.AttributeNode
	}
	switch n.cur.Kind() {
	case dom.DocumentKind:
		return xpath.RootNode
	case dom.TextKind:
		return xpath.TextNode
	case dom.CommentKind:
		return xpath.CommentNode
	default:
		return xpath.ElementNode
	}
}

func (n *navigator) LocalName() string {
	if n.attr >= 0 {
		return n.cur.Attrs()[n.attr].Name()
	}
	switch n.cur.Kind() {
	case dom.ElementKind:
		return n.cur.Name()
	default:
		return ""
	}
}

// Prefix always returns an empty string; names are matched by local
// name and namespaces are not interpreted.
func (n *navigator) Prefix() string { return "" }

func (n *navigator) Value() string {
	if n.attr >= 0 {
		return n.cur.Attrs()[n.attr].Data()
	}
	switch n.cur.Kind() {
	case dom.TextKind, dom.CommentKind:
		return n.cur.Data()
	default:
		return n.cur.TextContent()
	}
}

func (n *navigator) Copy() xpath.NodeNavigator {
	clone := *n
	return &clone
}

func (n *navigator) MoveToRoot() {
	n.cur = n.root
	n.attr = -1
}

func (n *navigator) MoveToParent() bool {
	if n.attr >= 0 {
		n.attr = -1
		return true
	}
	if p := n.cur.Parent(); p != nil {
		n.cur = p
		return true
	}
	return false
}

func (n *navigator) MoveToNextAttribute() bool {
	if n.cur.Kind() != dom.ElementKind {
		return false
	}
	if n.attr+1 >= len(n.cur.Attrs()) {
		return false
	}
	n.attr++
	return true
}

func (n *navigator) MoveToChild() bool {
	if n.attr >= 0 {
		return false
	}
	if children := n.cur.Children(); len(children) > 0 {
		n.cur = children[0]
		return true
	}
	return false
}

func (n *navigator) MoveToFirst() bool {
	if n.attr >= 0 {
		return false
	}
	first := n.cur
	for prev := first.PreviousSibling(); prev != nil; prev = prev.PreviousSibling() {
		first = prev
	}
	if first == n.cur {
		return false
	}
	n.cur = first
	return true
}

func (n *navigator) MoveToNext() bool {
	if n.attr >= 0 {
		return false
	}
	if next := n.cur.NextSibling(); next != nil {
		n.cur = next
		return true
	}
	return false
}

func (n *navigator) MoveToPrevious() bool {
	if n.attr >= 0 {
		return false
	}
	if prev := n.cur.PreviousSibling(); prev != nil {
		n.cur = prev
		return true
	}
	return false
}

func (n *navigator) MoveTo(other xpath.NodeNavigator) bool {
	o, ok := other.(*navigator)
	if !ok || o.root != n.root {
		return false
	}
	n.cur = o.cur
	n.attr = o.attr
	return true
}

// matched returns the dom node a navigator position stands for;
// attribute positions resolve to the owning element's attribute node.
func (n *navigator) matched() *dom.Node {
	if n.attr >= 0 {
		return n.cur.Attrs()[n.attr]
	}
	return n.cur
}
