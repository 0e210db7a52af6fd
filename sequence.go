package xq

import (
	"iter"

	"github.com/jacoelho/xq/internal/dom"
	"github.com/jacoelho/xq/internal/nodeseq"
	"github.com/jacoelho/xq/internal/xiter"
)

// Sequence is a lazy, single-pass stream of Elements over a fixed
// node list. It stays splittable: Split peels off the tail half of the
// remaining nodes into an independent Sequence, so a parallel consumer
// can divide work into balanced, disjoint ranges.
type Sequence struct {
	cur  *nodeseq.Splitter[*dom.Node]
	keep func(*dom.Node) bool // nil keeps every node
}

// All returns the remaining elements as a pull sequence. Iteration
// consumes the Sequence; once exhausted, re-ranging yields nothing.
func (s *Sequence) All() iter.Seq[*Element] {
	raw := s.cur.Seq()
	if s.keep != nil {
		raw = xiter.Filter(raw, s.keep)
	}
	return xiter.Map(raw, newElement)
}

// Split partitions the remaining nodes in two. The receiver keeps the
// half nearest the start; the returned Sequence covers the rest. Split
// returns nil, leaving the receiver unchanged, when one or zero nodes
// remain.
func (s *Sequence) Split() *Sequence {
	tail := s.cur.TrySplit()
	if tail == nil {
		return nil
	}
	return &Sequence{cur: tail, keep: s.keep}
}

// EstimateSize returns the exact count of nodes not yet consumed,
// before any element filtering.
func (s *Sequence) EstimateSize() int {
	return s.cur.EstimateSize()
}

// Collect consumes the sequence into a slice.
func (s *Sequence) Collect() []*Element {
	return xiter.Collect(s.All())
}

// First consumes up to one element and reports whether one was found.
func (s *Sequence) First() (*Element, bool) {
	for e := range s.All() {
		return e, true
	}
	return nil, false
}

// Count consumes the sequence and returns how many elements it held.
func (s *Sequence) Count() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}
