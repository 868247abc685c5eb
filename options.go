// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import "fmt"

// Options configures queue creation and variant selection.
type Options struct {
	// Producer constraint (determines queue type). Every variant has a
	// single consumer.
	singleProducer bool

	// Requested capacity (storage rounds up to next power of 2)
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// SPSC queue (optimal for a single producer)
//	q := ringq.BuildSPSC[Event](ringq.New(1024).SingleProducer())
//
//	// MPSC queue (default)
//	q := ringq.BuildMPSC[Request](ringq.New(4096))
//
//	// Drain-only buffer for event aggregation
//	b := ringq.BuildBuffer[Metric](ringq.New(8192))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// The built queue holds at most capacity elements. Storage rounds up to
// the next power of 2.
//
// Panics with an error wrapping ErrInvalidCapacity if capacity <= 0.
func New(capacity int) *Builder {
	if capacity <= 0 {
		panic(fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity))
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will offer.
// Selects the wait-free SPSC algorithm.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// Build creates a Queue[T] with automatic variant selection.
//
//	SingleProducer → SPSC (Lamport ring buffer)
//	default        → MPSC (CAS reservation)
//
// For concrete return types, use:
//   - BuildSPSC[T](b) → *SPSC[T]
//   - BuildMPSC[T](b) → *MPSC[T]
//   - BuildBuffer[T](b) → *MPSCBuffer[T]
func Build[T any](b *Builder) Queue[T] {
	if b.opts.singleProducer {
		return NewSPSC[T](b.opts.capacity)
	}
	return NewMPSC[T](b.opts.capacity)
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleProducer().
func BuildSPSC[T any](b *Builder) *SPSC[T] {
	if !b.opts.singleProducer {
		panic("ringq: BuildSPSC requires SingleProducer()")
	}
	return NewSPSC[T](b.opts.capacity)
}

// BuildMPSC creates an MPSC queue with compile-time type safety.
// Panics if builder is configured with SingleProducer().
func BuildMPSC[T any](b *Builder) *MPSC[T] {
	if b.opts.singleProducer {
		panic("ringq: BuildMPSC requires no SingleProducer()")
	}
	return NewMPSC[T](b.opts.capacity)
}

// BuildBuffer creates a drain-only multi-producer buffer.
// Panics if builder is configured with SingleProducer().
func BuildBuffer[T any](b *Builder) *MPSCBuffer[T] {
	if b.opts.singleProducer {
		panic("ringq: BuildBuffer requires no SingleProducer()")
	}
	return NewMPSCBuffer[T](b.opts.capacity)
}
