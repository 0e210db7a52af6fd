package nodeseq

import (
	"testing"

	"pgregory.net/rapid"
)

// A prime length keeps the halving splits uneven.
const nodes = 11

func intCursor(n int) (*Splitter[int], []int) {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return Over(items), items
}

func consume[T any](s *Splitter[T]) []T {
	var out []T
	for s.TryAdvance(func(v T) { out = append(out, v) }) {
	}
	return out
}

func TestCharacteristics(t *testing.T) {
	s, _ := intCursor(nodes)
	want := Ordered | Distinct | Sized | NonNull
	if got := s.Characteristics(); got != want {
		t.Fatalf("Characteristics() = %b, want %b", got, want)
	}
}

func TestTryAdvance(t *testing.T) {
	s, items := intCursor(nodes)
	if got := s.EstimateSize(); got != nodes {
		t.Fatalf("EstimateSize() = %d, want %d", got, nodes)
	}

	got := consume(s)
	if len(got) != len(items) {
		t.Fatalf("consumed %d elements, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Fatalf("element %d = %d, want %d", i, got[i], items[i])
		}
	}

	if got := s.EstimateSize(); got != 0 {
		t.Fatalf("EstimateSize() after consumption = %d, want 0", got)
	}
	if s.TryAdvance(func(int) { t.Fatal("visit called on exhausted cursor") }) {
		t.Fatal("TryAdvance() = true on exhausted cursor")
	}
}

func TestEstimateSizeTracksConsumption(t *testing.T) {
	s, _ := intCursor(nodes)
	for want := nodes; want > 0; want-- {
		if got := s.EstimateSize(); got != want {
			t.Fatalf("EstimateSize() = %d, want %d", got, want)
		}
		s.TryAdvance(func(int) {})
	}
	if got := s.EstimateSize(); got != 0 {
		t.Fatalf("EstimateSize() = %d, want 0", got)
	}
}

func TestTrySplit(t *testing.T) {
	head, items := intCursor(nodes)
	half := nodes / 2

	tail := head.TrySplit()
	if tail == nil {
		t.Fatal("TrySplit() = nil, want tail cursor")
	}
	if got := head.EstimateSize(); got != half {
		t.Fatalf("head EstimateSize() = %d, want %d", got, half)
	}
	if got := tail.EstimateSize(); got != nodes-half {
		t.Fatalf("tail EstimateSize() = %d, want %d", got, nodes-half)
	}

	gotHead := consume(head)
	gotTail := consume(tail)
	for i := 0; i < half; i++ {
		if gotHead[i] != items[i] {
			t.Fatalf("head element %d = %d, want %d", i, gotHead[i], items[i])
		}
	}
	for i := half; i < nodes; i++ {
		if gotTail[i-half] != items[i] {
			t.Fatalf("tail element %d = %d, want %d", i-half, gotTail[i-half], items[i])
		}
	}
}

func TestTrySplitSmallRanges(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		wantHead int
		wantTail int
	}{
		{name: "empty", size: 0},
		{name: "single", size: 1},
		{name: "pair", size: 2, wantHead: 1, wantTail: 1},
		{name: "triple", size: 3, wantHead: 1, wantTail: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := intCursor(tt.size)
			tail := s.TrySplit()
			if tt.size <= 1 {
				if tail != nil {
					t.Fatalf("TrySplit() != nil for size %d", tt.size)
				}
				if got := s.EstimateSize(); got != tt.size {
					t.Fatalf("EstimateSize() = %d after failed split, want %d", got, tt.size)
				}
				return
			}
			if tail == nil {
				t.Fatalf("TrySplit() = nil for size %d", tt.size)
			}
			if got := s.EstimateSize(); got != tt.wantHead {
				t.Fatalf("head size = %d, want %d", got, tt.wantHead)
			}
			if got := tail.EstimateSize(); got != tt.wantTail {
				t.Fatalf("tail size = %d, want %d", got, tt.wantTail)
			}
		})
	}
}

func TestFullSplit(t *testing.T) {
	first, items := intCursor(nodes)
	cursors := []*Splitter[int]{first}

	// Split every cursor until all hold a single element.
	for len(cursors) != nodes {
		var next []*Splitter[int]
		for _, c := range cursors {
			next = append(next, c)
			if tail := c.TrySplit(); tail != nil {
				next = append(next, tail)
			}
		}
		cursors = next
	}

	for _, c := range cursors {
		if got := c.EstimateSize(); got != 1 {
			t.Fatalf("EstimateSize() = %d, want 1", got)
		}
		if c.TrySplit() != nil {
			t.Fatal("TrySplit() != nil on single-element cursor")
		}
	}

	// Left-to-right consumption reproduces the source order exactly.
	for i, c := range cursors {
		c.TryAdvance(func(v int) {
			if v != items[i] {
				t.Fatalf("cursor %d yielded %d, want %d", i, v, items[i])
			}
		})
		if got := c.EstimateSize(); got != 0 {
			t.Fatalf("EstimateSize() = %d after consumption, want 0", got)
		}
	}
}

func TestSeq(t *testing.T) {
	s, items := intCursor(nodes)

	var got []int
	for v := range s.Seq() {
		got = append(got, v)
	}
	if len(got) != len(items) {
		t.Fatalf("Seq yielded %d elements, want %d", len(got), len(items))
	}
	for i := range items {
		if got[i] != items[i] {
			t.Fatalf("element %d = %d, want %d", i, got[i], items[i])
		}
	}
}

func TestSeqSinglePass(t *testing.T) {
	s, _ := intCursor(nodes)

	seen := 0
	for range s.Seq() {
		seen++
		if seen == 3 {
			break
		}
	}
	if got := s.EstimateSize(); got != nodes-3 {
		t.Fatalf("EstimateSize() after partial pull = %d, want %d", got, nodes-3)
	}

	// The remainder is still splittable after a partial pull.
	tail := s.TrySplit()
	if tail == nil {
		t.Fatal("TrySplit() = nil on remainder")
	}
	if got := s.EstimateSize() + tail.EstimateSize(); got != nodes-3 {
		t.Fatalf("halves cover %d elements, want %d", got, nodes-3)
	}

	for range s.Seq() {
	}
	count := 0
	for range s.Seq() {
		count++
	}
	if count != 0 {
		t.Fatalf("exhausted Seq yielded %d elements, want 0", count)
	}
}

func TestSplitCoversRemainder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(0, 64).Draw(t, "size")
		consumed := rapid.IntRange(0, size).Draw(t, "consumed")

		s, items := intCursor(size)
		for i := 0; i < consumed; i++ {
			s.TryAdvance(func(int) {})
		}

		remain := size - consumed
		tail := s.TrySplit()
		if remain <= 1 {
			if tail != nil {
				t.Fatalf("TrySplit() != nil with %d remaining", remain)
			}
			if got := s.EstimateSize(); got != remain {
				t.Fatalf("EstimateSize() = %d after failed split, want %d", got, remain)
			}
			return
		}
		if tail == nil {
			t.Fatalf("TrySplit() = nil with %d remaining", remain)
		}

		// |head| = floor(remain/2), the halves are disjoint,
		// contiguous, and cover the pre-split remainder.
		if got := s.EstimateSize(); got != remain/2 {
			t.Fatalf("head size = %d, want %d", got, remain/2)
		}
		if got := tail.EstimateSize(); got != remain-remain/2 {
			t.Fatalf("tail size = %d, want %d", got, remain-remain/2)
		}
		joined := append(consume(s), consume(tail)...)
		want := items[consumed:]
		if len(joined) != len(want) {
			t.Fatalf("halves yielded %d elements, want %d", len(joined), len(want))
		}
		for i := range want {
			if joined[i] != want[i] {
				t.Fatalf("element %d = %d, want %d", i, joined[i], want[i])
			}
		}
	})
}

func TestExhaustiveSplitKeepsOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(1, 64).Draw(t, "size")

		first, items := intCursor(size)
		cursors := []*Splitter[int]{first}
		for {
			split := false
			var next []*Splitter[int]
			for _, c := range cursors {
				next = append(next, c)
				if tail := c.TrySplit(); tail != nil {
					next = append(next, tail)
					split = true
				}
			}
			cursors = next
			if !split {
				break
			}
		}

		if len(cursors) != size {
			t.Fatalf("exhaustive splitting produced %d cursors, want %d", len(cursors), size)
		}
		var got []int
		for _, c := range cursors {
			got = append(got, consume(c)...)
		}
		for i := range items {
			if got[i] != items[i] {
				t.Fatalf("element %d = %d, want %d", i, got[i], items[i])
			}
		}
	})
}
