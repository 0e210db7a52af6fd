package dom

import (
	"encoding/xml"
	"fmt"
	"io"
	"unicode"
)

// Parse builds the document tree from XML input. It returns the
// document node, whose children are the root element plus any top-level
// comments. Character data is kept as text child nodes in document
// order, so mixed content round-trips exactly.
func Parse(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)

	doc := &Node{kind: DocumentKind, name: DocumentName}
	stack := []*Node{doc}
	rootSeen := false
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		parent := stack[len(stack)-1]

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			elem := &Node{
				kind:   ElementKind,
				name:   t.Name.Local,
				parent: parent,
				index:  len(parent.children),
			}
			elem.attrs = convertAttrs(elem, t.Attr)
			parent.children = append(parent.children, elem)
			stack = append(stack, elem)
			rootSeen = true

		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
				if len(stack) == 1 {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) == 1 {
				if !isIgnorableOutsideRoot(string(t)) {
					return nil, fmt.Errorf("unexpected character data outside root element")
				}
				continue
			}
			appendText(parent, string(t))

		case xml.Comment:
			comment := &Node{
				kind:   CommentKind,
				name:   "#comment",
				data:   string(t),
				parent: parent,
				index:  len(parent.children),
			}
			parent.children = append(parent.children, comment)
		}
	}

	if !rootSeen {
		return nil, io.ErrUnexpectedEOF
	}

	return doc, nil
}

// appendText coalesces adjacent character data into one text node, so a
// CDATA section next to plain text reads as a single run.
func appendText(parent *Node, data string) {
	if n := len(parent.children); n > 0 && parent.children[n-1].kind == TextKind {
		parent.children[n-1].data += data
		return
	}
	text := &Node{
		kind:   TextKind,
		name:   "#text",
		data:   data,
		parent: parent,
		index:  len(parent.children),
	}
	parent.children = append(parent.children, text)
}

func convertAttrs(owner *Node, xmlAttrs []xml.Attr) []*Node {
	if len(xmlAttrs) == 0 {
		return nil
	}
	attrs := make([]*Node, 0, len(xmlAttrs))
	for i, a := range xmlAttrs {
		attrs = append(attrs, &Node{
			kind:   AttributeKind,
			name:   a.Name.Local,
			data:   a.Value,
			parent: owner,
			index:  i,
		})
	}
	return attrs
}

func isIgnorableOutsideRoot(data string) bool {
	for _, r := range data {
		if r == '\uFEFF' {
			continue
		}
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
