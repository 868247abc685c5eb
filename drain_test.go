// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/ringq"
)

// =============================================================================
// Drain - Count and Order
// =============================================================================

func TestDrainCountAndOrder(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v variant) {
		b := v.new(8)
		for _, x := range []int{1, 2, 3} {
			if err := b.Offer(&x); err != nil {
				t.Fatalf("Offer(%d): %v", x, err)
			}
		}

		var seen []int
		n, err := b.Drain(func(x int) error {
			seen = append(seen, x)
			return nil
		})
		if err != nil {
			t.Fatalf("Drain: %v", err)
		}
		if n != 3 {
			t.Fatalf("Drain: got %d, want 3", n)
		}
		if !slices.Equal(seen, []int{1, 2, 3}) {
			t.Fatalf("Drain order: got %v, want [1 2 3]", seen)
		}

		n, err = b.Drain(func(int) error { return nil })
		if n != 0 || err != nil {
			t.Fatalf("Drain on empty: got (%d, %v), want (0, nil)", n, err)
		}
	})
}

func TestDrainLimit(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v variant) {
		b := v.new(8)
		for i := range 6 {
			b.Offer(&i)
		}

		var seen []int
		visit := func(x int) error {
			seen = append(seen, x)
			return nil
		}
		if n, _ := b.DrainLimit(visit, 4); n != 4 {
			t.Fatalf("DrainLimit(4): got %d", n)
		}
		if n, _ := b.DrainLimit(visit, 0); n != 0 {
			t.Fatalf("DrainLimit(0): got %d", n)
		}
		if n, _ := b.DrainLimit(visit, -1); n != 0 {
			t.Fatalf("DrainLimit(-1): got %d", n)
		}
		if n, _ := b.DrainLimit(visit, 100); n != 2 {
			t.Fatalf("DrainLimit(100): got %d, want 2", n)
		}
		if !slices.Equal(seen, []int{0, 1, 2, 3, 4, 5}) {
			t.Fatalf("order: got %v", seen)
		}
	})
}

// TestDrainDefaultLimitIsCapacity verifies Drain visits at most Cap()
// elements even when more become available across laps.
func TestDrainDefaultLimitIsCapacity(t *testing.T) {
	q := ringq.NewSPSC[int](4)
	for i := range 4 {
		q.Offer(&i)
	}
	next := 4
	n, err := q.Drain(func(int) error {
		// Refill behind the consumer while draining.
		v := next
		if q.Offer(&v) == nil {
			next++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if n != 4 {
		t.Fatalf("Drain: got %d, want 4", n)
	}
	if q.Size() != 4 {
		t.Fatalf("Size: got %d, want 4", q.Size())
	}
}

// =============================================================================
// Drain - Visitor Failure
// =============================================================================

// TestDrainVisitorFailure verifies the no-rollback policy: the failing
// element is consumed, later elements remain, and the error propagates.
func TestDrainVisitorFailure(t *testing.T) {
	errBoom := errors.New("boom")
	forEachVariant(t, func(t *testing.T, v variant) {
		b := v.new(8)
		for i := 1; i <= 5; i++ {
			b.Offer(&i)
		}

		var seen []int
		n, err := b.Drain(func(x int) error {
			seen = append(seen, x)
			if x == 3 {
				return errBoom
			}
			return nil
		})
		if !errors.Is(err, errBoom) {
			t.Fatalf("Drain: got %v, want errBoom", err)
		}
		if n != 3 {
			t.Fatalf("Drain removed %d, want 3", n)
		}
		if !slices.Equal(seen, []int{1, 2, 3}) {
			t.Fatalf("visited %v, want [1 2 3]", seen)
		}
		if b.Size() != 2 {
			t.Fatalf("Size after failed drain: got %d, want 2", b.Size())
		}

		rest := collect(t, b)
		if !slices.Equal(rest, []int{4, 5}) {
			t.Fatalf("remaining %v, want [4 5]", rest)
		}
	})
}

// TestDrainAdvancesBeforeVisit verifies the consumer index has moved past
// an element by the time its visitor runs.
func TestDrainAdvancesBeforeVisit(t *testing.T) {
	q := ringq.NewMPSC[int](4)
	for i := range 3 {
		q.Offer(&i)
	}
	var sizes []int
	q.Drain(func(int) error {
		sizes = append(sizes, q.Size())
		return nil
	})
	if !slices.Equal(sizes, []int{2, 1, 0}) {
		t.Fatalf("Size seen by visitor: got %v, want [2 1 0]", sizes)
	}
}

// TestDrainWrapAround drains across many laps of a small ring.
func TestDrainWrapAround(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v variant) {
		b := v.new(3)
		want := 0
		next := 0
		for round := range 200 {
			for range round%3 + 1 {
				x := next
				if b.Offer(&x) != nil {
					break
				}
				next++
			}
			if _, err := b.Drain(func(x int) error {
				if x != want {
					t.Fatalf("round %d: got %d, want %d", round, x, want)
				}
				want++
				return nil
			}); err != nil {
				t.Fatalf("round %d: %v", round, err)
			}
		}
		if want != next {
			t.Fatalf("drained %d, offered %d", want, next)
		}
	})
}
