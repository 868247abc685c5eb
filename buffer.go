// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "iter"

// MPSCBuffer is a drain-only multi-producer buffer.
//
// Many goroutines offer; one collector goroutine periodically sweeps
// everything pending with Drain. There is no Poll or Peek. Drain visits
// elements in reservation order; elements from one producer keep that
// producer's order, interleaving across producers is unspecified.
//
// Uses the same reservation protocol as [MPSC].
type MPSCBuffer[T any] struct {
	c core[T]
}

// NewMPSCBuffer creates a new buffer holding at most capacity elements.
// Panics with an error wrapping ErrInvalidCapacity if capacity <= 0.
func NewMPSCBuffer[T any](capacity int) *MPSCBuffer[T] {
	b := &MPSCBuffer[T]{}
	b.c.init(capacity)
	return b
}

// Offer adds an element (multiple producers safe).
// Returns ErrWouldBlock if the buffer is full, ErrNullElement if elem is nil.
func (b *MPSCBuffer[T]) Offer(elem *T) error {
	if elem == nil {
		return ErrNullElement
	}
	return offerMP(&b.c, elem)
}

// RelaxedOffer makes one reservation attempt (multiple producers safe).
func (b *MPSCBuffer[T]) RelaxedOffer(elem *T) OfferResult {
	if elem == nil {
		panic(ErrNullElement)
	}
	return b.c.reserve(elem)
}

// Drain removes up to Cap() elements (collector only).
func (b *MPSCBuffer[T]) Drain(fn Visitor[T]) (int, error) {
	return b.c.drain(fn, b.Cap())
}

// DrainLimit removes up to limit elements (collector only).
func (b *MPSCBuffer[T]) DrainLimit(fn Visitor[T], limit int) (int, error) {
	return b.c.drain(fn, limit)
}

// Size returns a point-in-time element count.
func (b *MPSCBuffer[T]) Size() int {
	return b.c.size()
}

// Cap returns the requested capacity.
func (b *MPSCBuffer[T]) Cap() int {
	return int(b.c.capacity)
}

// Iterator is not supported.
func (b *MPSCBuffer[T]) Iterator() (iter.Seq[T], error) {
	return nil, ErrUnsupported
}
