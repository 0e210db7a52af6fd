// Package errors defines the error types surfaced by the xq query API.
package errors

import "fmt"

// ParseError reports that an XML source could not be parsed. It always
// wraps the underlying decoder or read failure.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e == nil || e.Err == nil {
		return "xq: cannot parse XML"
	}
	return fmt.Sprintf("xq: cannot parse XML: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExpressionError reports an XPath expression that failed to compile or
// evaluate. The offending expression text is always included.
type ExpressionError struct {
	Expression string
	Err        error
}

func (e *ExpressionError) Error() string {
	if e == nil {
		return "xq: invalid xpath"
	}
	if e.Err != nil {
		return fmt.Sprintf("xq: invalid xpath %q: %v", e.Expression, e.Err)
	}
	return fmt.Sprintf("xq: invalid xpath %q", e.Expression)
}

func (e *ExpressionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CardinalityError reports that an expression expected to match exactly
// one node matched none or several. Matches holds the observed count so
// the two cases stay distinguishable.
type CardinalityError struct {
	Expression string
	Matches    int
}

func (e *CardinalityError) Error() string {
	if e == nil {
		return "xq: wrong cardinality"
	}
	if e.Matches == 0 {
		return fmt.Sprintf("xq: xpath %q does not match any elements", e.Expression)
	}
	return fmt.Sprintf("xq: xpath %q matches %d elements", e.Expression, e.Matches)
}
