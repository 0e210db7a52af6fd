// Package xq reads XML documents with a small fluent API: parse a
// source, then navigate and query the tree with XPath expressions.
// Results stream lazily and can be split for parallel consumption.
//
// The package is deliberately simple: no validation, no namespace
// resolution, no mutation. The parsed tree is read-only and safe for
// concurrent readers.
package xq

import (
	"bytes"
	"io"
	"strings"

	"github.com/jacoelho/xq/errors"
	"github.com/jacoelho/xq/internal/dom"
)

// Parse reads an XML document and returns an Element for the document
// node, the parent of the root element. Malformed or unreadable input
// yields an *errors.ParseError wrapping the cause.
func Parse(r io.Reader) (*Element, error) {
	node, err := dom.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{Err: err}
	}
	return newElement(node), nil
}

// ParseString parses an XML document held in a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// ParseBytes parses an XML document held in a byte slice.
func ParseBytes(b []byte) (*Element, error) {
	return Parse(bytes.NewReader(b))
}
