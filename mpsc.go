// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"iter"

	"code.hybscloud.com/spin"
)

// MPSC is a CAS-based multi-producer single-consumer bounded queue.
//
// Producers reserve a slot by CAS on the shared producer index, then
// publish the element through the slot sequence. The CAS gives producers a
// total order; the single consumer observes elements in that order.
//
// A slot whose index was reserved but not yet published reads as empty:
// Poll and Drain stop there instead of waiting for the producer.
//
// Offer is lock-free, Poll is wait-free.
//
// Memory: O(capacity) slots (rounded up to a power of 2) plus padding
type MPSC[T any] struct {
	c core[T]
}

// NewMPSC creates a new MPSC queue holding at most capacity elements.
// Panics with an error wrapping ErrInvalidCapacity if capacity <= 0.
func NewMPSC[T any](capacity int) *MPSC[T] {
	q := &MPSC[T]{}
	q.c.init(capacity)
	return q
}

// Offer adds an element to the queue (multiple producers safe).
// Returns ErrWouldBlock if the queue is full, ErrNullElement if elem is nil.
//
// Failed reservations are retried with spin backoff. Every failed
// reservation means another producer succeeded, and a full queue ends the
// loop, so Offer always terminates.
func (q *MPSC[T]) Offer(elem *T) error {
	if elem == nil {
		return ErrNullElement
	}
	return offerMP(&q.c, elem)
}

// RelaxedOffer makes one reservation attempt (multiple producers safe).
func (q *MPSC[T]) RelaxedOffer(elem *T) OfferResult {
	if elem == nil {
		panic(ErrNullElement)
	}
	return q.c.reserve(elem)
}

// Poll removes and returns the oldest element (single consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPSC[T]) Poll() (T, error) {
	return q.c.poll()
}

// Peek returns the oldest element without removing it (single consumer only).
func (q *MPSC[T]) Peek() (T, error) {
	return q.c.peek()
}

// Drain removes up to Cap() elements (single consumer only).
func (q *MPSC[T]) Drain(fn Visitor[T]) (int, error) {
	return q.c.drain(fn, q.Cap())
}

// DrainLimit removes up to limit elements (single consumer only).
func (q *MPSC[T]) DrainLimit(fn Visitor[T], limit int) (int, error) {
	return q.c.drain(fn, limit)
}

// Size returns a point-in-time element count, including reserved slots
// whose elements are not yet published.
func (q *MPSC[T]) Size() int {
	return q.c.size()
}

// Cap returns the requested capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.c.capacity)
}

// Iterator is not supported.
func (q *MPSC[T]) Iterator() (iter.Seq[T], error) {
	return nil, ErrUnsupported
}

// offerMP retries reservations until the element is stored or the queue
// is full.
func offerMP[T any](c *core[T], elem *T) error {
	sw := spin.Wait{}
	for {
		switch c.reserve(elem) {
		case OfferOK:
			return nil
		case OfferFull:
			return ErrWouldBlock
		}
		sw.Once()
	}
}
