// Package dom holds the minimal read-only document model queried by xq.
package dom

import "strings"

// Kind classifies nodes in the document tree.
type Kind int

const (
	// DocumentKind identifies the synthetic node above the root element.
	DocumentKind Kind = iota
	// ElementKind identifies an element in the parsed document tree.
	ElementKind
	// TextKind identifies character data, including decoded CDATA.
	TextKind
	// CommentKind identifies a comment.
	CommentKind
	// AttributeKind identifies an attribute owned by an element.
	AttributeKind
)

// DocumentName is the node name reported by the document node.
const DocumentName = "#document"

// Node is one position in a parsed document tree. Nodes are built once
// by Parse and never mutated afterwards.
type Node struct {
	kind     Kind
	name     string
	data     string
	attrs    []*Node
	children []*Node
	parent   *Node
	index    int // position among the parent's children, or attribute slot
}

// Kind returns the node classification.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the node name: the tag name for elements, the attribute
// name for attribute nodes, and DocumentName for the document node.
func (n *Node) Name() string { return n.name }

// Data returns the character data of text and comment nodes and the
// value of attribute nodes. Empty for elements and the document node.
func (n *Node) Data() string { return n.data }

// Parent returns the parent node; nil for the document node. Attribute
// nodes report their owning element.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child list in document order. The slice is owned
// by the node and must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Attrs returns the attribute nodes of an element in source order. The
// slice is owned by the node and must not be modified.
func (n *Node) Attrs() []*Node { return n.attrs }

// NextSibling returns the following sibling of any kind, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil || n.kind == AttributeKind {
		return nil
	}
	siblings := n.parent.children
	if n.index+1 < len(siblings) {
		return siblings[n.index+1]
	}
	return nil
}

// PreviousSibling returns the preceding sibling of any kind, or nil.
func (n *Node) PreviousSibling() *Node {
	if n.parent == nil || n.kind == AttributeKind {
		return nil
	}
	if n.index > 0 {
		return n.parent.children[n.index-1]
	}
	return nil
}

// DirectText returns the concatenated text of the node's immediate text
// children, without recursing into child elements. Text and attribute
// nodes return their own data.
func (n *Node) DirectText() string {
	switch n.kind {
	case TextKind, AttributeKind:
		return n.data
	case CommentKind:
		return ""
	}
	var sb strings.Builder
	for _, child := range n.children {
		if child.kind == TextKind {
			sb.WriteString(child.data)
		}
	}
	return sb.String()
}

// TextContent returns the concatenated text of the whole subtree, in
// document order. Comments contribute nothing.
func (n *Node) TextContent() string {
	switch n.kind {
	case TextKind, AttributeKind:
		return n.data
	case CommentKind:
		return ""
	}
	var sb strings.Builder
	n.collectText(&sb)
	return sb.String()
}

func (n *Node) collectText(sb *strings.Builder) {
	for _, child := range n.children {
		switch child.kind {
		case TextKind:
			sb.WriteString(child.data)
		case ElementKind:
			child.collectText(sb)
		}
	}
}
