// Package nodeseq provides a splittable cursor over fixed-length,
// indexable sequences, used to stream node lists lazily and to let a
// parallel consumer divide remaining work into balanced halves.
package nodeseq

import "iter"

// List is the adaptee contract: a fixed-length, randomly-indexable,
// ordered sequence. Implementations must be ordered, free of duplicate
// elements, exactly sized, and must never return a zero-value element
// for a valid index; a List violating these breaks the cursor's
// declared traits, not the cursor.
type List[T any] interface {
	Len() int
	At(i int) T
}

// Slice adapts a Go slice to the List contract.
type Slice[T any] []T

func (s Slice[T]) Len() int   { return len(s) }
func (s Slice[T]) At(i int) T { return s[i] }

// Trait is a declared guarantee of a cursor's backing sequence.
type Trait uint8

const (
	// Ordered means consumption order matches source order.
	Ordered Trait = 1 << iota
	// Distinct means no element repeats.
	Distinct
	// Sized means the exact remaining count is known up front.
	Sized
	// NonNull means no absent element is ever produced.
	NonNull
)

// Splitter is a one-pass cursor over the range [pos, end) of a List.
// The range only ever shrinks: advancing raises pos, splitting lowers
// end. Invariant: 0 <= pos <= end <= list.Len().
type Splitter[T any] struct {
	list List[T]
	pos  int
	end  int
}

// New returns a cursor over the whole list.
func New[T any](list List[T]) *Splitter[T] {
	return &Splitter[T]{list: list, end: list.Len()}
}

// Over returns a cursor over the whole slice.
func Over[T any](items []T) *Splitter[T] {
	return New[T](Slice[T](items))
}

// TryAdvance visits the next remaining element and consumes it. It
// reports false when the cursor is exhausted, in which case visit is
// not called and the cursor is unchanged.
func (s *Splitter[T]) TryAdvance(visit func(T)) bool {
	if s.pos < s.end {
		visit(s.list.At(s.pos))
		s.pos++
		return true
	}
	return false
}

// TrySplit partitions the remaining range in two. The receiver keeps
// the lower-indexed half, sized floor(remain/2), and the returned
// cursor covers the rest up to the original end. Both halves are
// disjoint and together cover the pre-split remainder. TrySplit
// returns nil, leaving the receiver untouched, when one or zero
// elements remain.
func (s *Splitter[T]) TrySplit() *Splitter[T] {
	remain := s.end - s.pos
	if remain > 1 {
		cut := s.pos + remain/2
		tail := &Splitter[T]{list: s.list, pos: cut, end: s.end}
		s.end = cut
		return tail
	}
	return nil
}

// EstimateSize returns the exact number of elements not yet consumed.
func (s *Splitter[T]) EstimateSize() int {
	return s.end - s.pos
}

// Characteristics returns the traits every backing List must uphold.
func (s *Splitter[T]) Characteristics() Trait {
	return Ordered | Distinct | Sized | NonNull
}

// Seq adapts the cursor into a single-pass pull sequence. Pulling
// consumes the cursor, so a partially-ranged Seq leaves the remainder
// available for further TryAdvance or TrySplit calls; once exhausted,
// re-ranging yields nothing.
func (s *Splitter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for s.pos < s.end {
			item := s.list.At(s.pos)
			s.pos++
			if !yield(item) {
				return
			}
		}
	}
}
