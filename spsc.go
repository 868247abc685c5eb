// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "iter"

// SPSC is a single-producer single-consumer bounded queue.
//
// Based on Lamport's ring buffer with per-slot occupancy. The producer
// caches the consumer's index to check capacity without touching the
// consumer's cache line on every offer. Element handoff uses a release
// store of the slot sequence paired with an acquire load by the other side;
// no other synchronization is involved.
//
// Offer and Poll are wait-free.
//
// Memory: O(capacity) slots (rounded up to a power of 2) plus padding
type SPSC[T any] struct {
	c          core[T]
	cachedHead uint64 // Producer's cached view of consumer
}

// NewSPSC creates a new SPSC queue holding at most capacity elements.
// Panics with an error wrapping ErrInvalidCapacity if capacity <= 0.
func NewSPSC[T any](capacity int) *SPSC[T] {
	q := &SPSC[T]{}
	q.c.init(capacity)
	return q
}

// Offer adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full, ErrNullElement if elem is nil.
func (q *SPSC[T]) Offer(elem *T) error {
	if elem == nil {
		return ErrNullElement
	}
	return q.offer(elem).Err()
}

// RelaxedOffer adds an element to the queue (producer only).
// SPSC has no producer contention and never reports OfferFailedReservation.
func (q *SPSC[T]) RelaxedOffer(elem *T) OfferResult {
	if elem == nil {
		panic(ErrNullElement)
	}
	return q.offer(elem)
}

func (q *SPSC[T]) offer(elem *T) OfferResult {
	c := &q.c
	tail := c.producer.Get()
	if tail-q.cachedHead >= c.capacity {
		q.cachedHead = c.consumer.GetAcquire()
		if tail-q.cachedHead >= c.capacity {
			return OfferFull
		}
	}

	slot := c.slots.Slot(tail)
	if slot.SeqAcquire() != tail {
		return OfferFull
	}
	slot.Store(elem)
	slot.Publish(tail + 1)
	c.producer.SetOrdered(tail + 1)
	return OfferOK
}

// Poll removes and returns the oldest element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Poll() (T, error) {
	return q.c.poll()
}

// Peek returns the oldest element without removing it (consumer only).
func (q *SPSC[T]) Peek() (T, error) {
	return q.c.peek()
}

// Drain removes up to Cap() elements (consumer only).
// See [Drainer] for failure semantics.
func (q *SPSC[T]) Drain(fn Visitor[T]) (int, error) {
	return q.c.drain(fn, q.Cap())
}

// DrainLimit removes up to limit elements (consumer only).
func (q *SPSC[T]) DrainLimit(fn Visitor[T], limit int) (int, error) {
	return q.c.drain(fn, limit)
}

// Size returns a point-in-time element count.
func (q *SPSC[T]) Size() int {
	return q.c.size()
}

// Cap returns the requested capacity.
func (q *SPSC[T]) Cap() int {
	return int(q.c.capacity)
}

// Iterator is not supported.
func (q *SPSC[T]) Iterator() (iter.Seq[T], error) {
	return nil, ErrUnsupported
}
