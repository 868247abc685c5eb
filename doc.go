// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringq provides bounded lock-free ring-buffer queues with a
// single consumer.
//
// The package offers three variants:
//
//   - SPSC: Single-Producer Single-Consumer queue (wait-free)
//   - MPSC: Multi-Producer Single-Consumer queue (lock-free offer)
//   - MPSCBuffer: Multi-Producer drain-only buffer for event aggregation
//
// # Quick Start
//
// Direct constructors:
//
//	q := ringq.NewSPSC[Event](1024)
//	q := ringq.NewMPSC[*Request](4096)
//	b := ringq.NewMPSCBuffer[Metric](8192)
//
// Builder API selects the variant from constraints:
//
//	q := ringq.Build[Event](ringq.New(1024).SingleProducer())  // → SPSC
//	q := ringq.Build[Event](ringq.New(1024))                   // → MPSC
//
// # Basic Usage
//
// All variants share Offer and Drain:
//
//	q := ringq.NewMPSC[int](1024)
//
//	// Offer (non-blocking)
//	value := 42
//	err := q.Offer(&value)
//	if ringq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Poll (non-blocking, queues only)
//	elem, err := q.Poll()
//	if ringq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
//	// Drain everything pending
//	n, err := q.Drain(func(v int) error {
//	    process(v)
//	    return nil
//	})
//
// # Common Patterns
//
// Pipeline Stage (SPSC):
//
//	q := ringq.NewSPSC[Data](1024)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Offer(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Poll()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// Event Aggregation (MPSCBuffer):
//
//	b := ringq.NewMPSCBuffer[Event](4096)
//
//	// Any number of emitters
//	b.Offer(&ev)
//
//	// One collector sweeps periodically
//	for range ticker.C {
//	    b.Drain(aggregate)
//	}
//
// The collector package wraps this pattern with metrics.
//
// # Contention
//
// MPSC producers reserve slots by CAS on the producer index. Offer retries
// lost reservations internally. RelaxedOffer makes exactly one attempt and
// reports the outcome so the caller can tell contention from fullness:
//
//	switch q.RelaxedOffer(&v) {
//	case ringq.OfferOK:
//	case ringq.OfferFailedReservation:
//	    // Another producer won the slot - retry now
//	case ringq.OfferFull:
//	    // At capacity - apply backpressure
//	}
//
// # Drain Semantics
//
// Drain advances the consumer index before calling the visitor for each
// element. If the visitor returns an error, that element is already
// removed, Drain returns the error wrapped, and the remaining elements stay
// queued. There is no rollback.
//
// # Capacity and Size
//
// Capacity is exact: a queue created with capacity 3 holds at most 3
// elements, and Cap reports 3. Storage rounds up to the next power of 2
// internally. Capacity must be > 0; constructors panic with an error
// wrapping [ErrInvalidCapacity] otherwise.
//
// Size is a best-effort snapshot: it is always in [0, Cap()] but is not
// linearizable while producers are active.
//
// # Thread Safety
//
//   - SPSC: One producer goroutine, one consumer goroutine
//   - MPSC: Multiple producer goroutines, one consumer goroutine
//   - MPSCBuffer: Multiple producer goroutines, one draining goroutine
//
// Violating these constraints (e.g., two goroutines calling Poll) causes
// undefined behavior including data corruption.
//
// # Race Detection
//
// Element payloads are plain memory published through an atomic sequence
// word per slot. Go's race detector cannot observe that acquire-release
// pairing and may report false positives. Concurrent tests are skipped
// when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package ringq
