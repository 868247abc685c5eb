// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"fmt"

	"code.hybscloud.com/ringq/internal/ring"
	"golang.org/x/sys/cpu"
)

// core holds the state shared by every queue variant: the slot storage and
// the two index cells. Consumer-side operations live here; each variant
// supplies its own offer protocol.
type core[T any] struct {
	producer ring.Index // Producers write here
	_        cpu.CacheLinePad
	consumer ring.Index // Consumer reads from here
	slots    *ring.Storage[T]
	capacity uint64 // Requested capacity
	lap      uint64 // Live slot count, the seq distance between laps
}

// init allocates the storage. Panics if capacity is invalid.
func (c *core[T]) init(capacity int) {
	slots, err := ring.New[T](capacity)
	if err != nil {
		panic(err)
	}
	c.slots = slots
	c.capacity = uint64(capacity)
	c.lap = uint64(slots.Len())
}

// poll removes the element at the consumer index (consumer only).
func (c *core[T]) poll() (T, error) {
	head := c.consumer.Get()
	slot := c.slots.Slot(head)
	if slot.SeqAcquire() != head+1 {
		var zero T
		return zero, ErrWouldBlock
	}

	elem := slot.Load()
	slot.Clear()
	slot.Publish(head + c.lap)
	c.consumer.SetOrdered(head + 1)
	return elem, nil
}

// peek returns the element at the consumer index without removing it.
func (c *core[T]) peek() (T, error) {
	head := c.consumer.Get()
	slot := c.slots.Slot(head)
	if slot.SeqAcquire() != head+1 {
		var zero T
		return zero, ErrWouldBlock
	}
	return slot.Load(), nil
}

// drain removes up to limit elements in order, stopping at the first slot
// that holds no published element.
func (c *core[T]) drain(fn Visitor[T], limit int) (int, error) {
	n := 0
	for n < limit {
		head := c.consumer.Get()
		slot := c.slots.Slot(head)
		if slot.SeqAcquire() != head+1 {
			break
		}

		elem := slot.Load()
		slot.Clear()
		slot.Publish(head + c.lap)
		// Advance before visiting: Size stays accurate while fn runs.
		c.consumer.SetOrdered(head + 1)
		n++

		if err := fn(elem); err != nil {
			return n, fmt.Errorf("ringq: drain visitor: %w", err)
		}
	}
	return n, nil
}

func (c *core[T]) size() int {
	return ring.Distance(&c.producer, &c.consumer)
}

// reserve makes one multi-producer attempt to claim the slot at the
// producer index and store elem into it.
func (c *core[T]) reserve(elem *T) OfferResult {
	tail := c.producer.GetAcquire()
	head := c.consumer.GetAcquire()
	if tail >= head+c.capacity {
		return OfferFull
	}

	slot := c.slots.Slot(tail)
	seq := slot.SeqAcquire()
	if diff := int64(seq - tail); diff < 0 {
		return OfferFull // Previous lap not consumed yet
	} else if diff > 0 {
		return OfferFailedReservation // Stale tail: index already claimed
	}

	if !c.producer.CompareAndSwap(tail, tail+1) {
		return OfferFailedReservation
	}
	slot.Store(elem)
	slot.Publish(tail + 1)
	return OfferOK
}
