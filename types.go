// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "iter"

// Buffer is the capability shared by every queue in the family.
//
// Buffer provides non-blocking Offer and batch removal through Drain. It
// has no single-element removal; see [Queue] for Poll and Peek.
//
// Example:
//
//	b := ringq.NewMPSCBuffer[Event](4096)
//
//	// Any goroutine
//	if err := b.Offer(&ev); ringq.IsWouldBlock(err) {
//	    // Buffer is full - drop or retry later
//	}
//
//	// Collector goroutine
//	n, err := b.Drain(func(ev Event) error {
//	    aggregate(ev)
//	    return nil
//	})
type Buffer[T any] interface {
	Producer[T]
	Drainer[T]

	// Size returns a point-in-time element count in [0, Cap()].
	// It is not linearizable while producers are active.
	Size() int

	// Cap returns the capacity requested at construction.
	Cap() int

	// Iterator always returns ErrUnsupported.
	Iterator() (iter.Seq[T], error)
}

// Queue is a [Buffer] that also supports single-element removal.
//
// Example:
//
//	q := ringq.NewMPSC[int](1024)
//
//	// Offer
//	val := 42
//	if err := q.Offer(&val); err != nil {
//	    // Handle full queue
//	}
//
//	// Poll
//	elem, err := q.Poll()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Buffer[T]
	Consumer[T]
}

// Producer is the interface for offering elements.
//
// The element is passed by pointer: a nil pointer is the absent element
// and is rejected. The queue stores a copy of the pointed-to value, so the
// original can be modified after Offer returns.
type Producer[T any] interface {
	// Offer adds an element to the queue (non-blocking).
	// Returns nil on success, ErrWouldBlock if the queue is full,
	// ErrNullElement if elem is nil.
	//
	// Thread safety depends on queue type:
	//   - SPSC: single producer only
	//   - MPSC/MPSCBuffer: multiple producers safe
	Offer(elem *T) error

	// RelaxedOffer makes exactly one attempt and reports its outcome.
	// OfferFailedReservation means another producer won the slot and an
	// immediate retry may succeed; OfferFull means the queue is at capacity.
	// Panics with ErrNullElement if elem is nil.
	RelaxedOffer(elem *T) OfferResult
}

// Consumer is the interface for single-element removal.
//
// Only one goroutine may call consumer operations at a time.
type Consumer[T any] interface {
	// Poll removes and returns the oldest element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Poll() (T, error)

	// Peek returns the oldest element without removing it.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Peek() (T, error)
}

// Visitor receives drained elements. A non-nil error stops the drain.
type Visitor[T any] func(elem T) error

// Drainer is the interface for batch removal.
//
// Only one goroutine may call Drain at a time.
type Drainer[T any] interface {
	// Drain removes up to Cap() elements, calling fn for each in FIFO order.
	Drain(fn Visitor[T]) (int, error)

	// DrainLimit removes up to limit elements, calling fn for each.
	//
	// The consumer index advances before fn sees the element, so an element
	// whose visitor fails is already removed and is not retried. On failure
	// DrainLimit returns the number of elements removed (including the
	// failing one) and the visitor error wrapped. Remaining elements stay
	// in the queue.
	DrainLimit(fn Visitor[T], limit int) (int, error)
}

// OfferResult is the outcome of a single offer attempt.
type OfferResult uint8

const (
	// OfferOK means the element was stored.
	OfferOK OfferResult = iota
	// OfferFailedReservation means the slot was taken by a concurrent
	// producer. Transient; retry immediately.
	OfferFailedReservation
	// OfferFull means the queue is at capacity. Apply backpressure.
	OfferFull
)

// String returns the name of the outcome.
func (r OfferResult) String() string {
	switch r {
	case OfferOK:
		return "ok"
	case OfferFailedReservation:
		return "failed-reservation"
	case OfferFull:
		return "full"
	default:
		return "unknown"
	}
}

// Err maps the outcome onto the error returned by Offer.
// OfferFailedReservation maps to ErrWouldBlock: the caller may retry.
func (r OfferResult) Err() error {
	if r == OfferOK {
		return nil
	}
	return ErrWouldBlock
}
