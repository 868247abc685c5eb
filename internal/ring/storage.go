// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"errors"
	"fmt"
	"unsafe"

	"code.hybscloud.com/atomix"
)

// ErrInvalidCapacity reports a requested capacity <= 0 or above MaxCapacity.
var ErrInvalidCapacity = errors.New("ringq: invalid capacity")

// Slot is one cell of the ring.
//
// seq encodes occupancy for logical index i mapped onto this slot:
//
//	seq == i      free, the producer of i may fill it
//	seq == i+1    holds the element of i
//	seq == i+len  released by the consumer, free for the next lap
type Slot[T any] struct {
	seq  atomix.Uint64
	elem T
}

// Seq loads the sequence word without ordering.
func (s *Slot[T]) Seq() uint64 {
	return s.seq.LoadRelaxed()
}

// SeqAcquire loads the sequence word with acquire ordering.
func (s *Slot[T]) SeqAcquire() uint64 {
	return s.seq.LoadAcquire()
}

// Publish stores the sequence word with release ordering. Every prior
// write to the slot element is visible to a reader that observes seq.
func (s *Slot[T]) Publish(seq uint64) {
	s.seq.StoreRelease(seq)
}

// Load returns a copy of the element.
func (s *Slot[T]) Load() T {
	return s.elem
}

// Store copies *elem into the slot.
func (s *Slot[T]) Store(elem *T) {
	s.elem = *elem
}

// Clear zeroes the element so the slot does not retain references.
func (s *Slot[T]) Clear() {
	var zero T
	s.elem = zero
}

// Storage is a fixed array of slots with padding on both ends.
//
// Memory: (len + 2*pad) slots, where pad slots span at least padBytes.
type Storage[T any] struct {
	slots    []Slot[T]
	mask     uint64
	pad      int
	capacity int
}

// New allocates storage for capacity elements.
// The live region is rounded up to the next power of 2.
func New[T any](capacity int) (*Storage[T], error) {
	if capacity <= 0 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	n := RoundUpPow2(capacity)
	pad := padSlots(int(unsafe.Sizeof(Slot[T]{})))
	s := &Storage[T]{
		slots:    make([]Slot[T], n+2*pad),
		mask:     uint64(n - 1),
		pad:      pad,
		capacity: capacity,
	}
	for i := range n {
		s.slots[pad+i].seq.StoreRelaxed(uint64(i))
	}
	return s, nil
}

// padSlots returns how many slots of the given size cover padBytes.
func padSlots(slotSize int) int {
	return (padBytes + slotSize - 1) / slotSize
}

// Offset returns the physical position of a logical index.
func (s *Storage[T]) Offset(index uint64) int {
	return s.pad + int(index&s.mask)
}

// Slot returns the live slot of a logical index.
func (s *Storage[T]) Slot(index uint64) *Slot[T] {
	return &s.slots[s.Offset(index)]
}

// Cap returns the requested capacity, not the rounded length.
func (s *Storage[T]) Cap() int {
	return s.capacity
}

// Len returns the number of live slots (a power of 2).
func (s *Storage[T]) Len() int {
	return int(s.mask + 1)
}

// Pad returns the number of padding slots on each end.
func (s *Storage[T]) Pad() int {
	return s.pad
}
