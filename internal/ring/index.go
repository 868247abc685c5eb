// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"math"

	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// Index is a monotonic 64-bit counter isolated on its own cache lines.
//
// Two adjacent Index values never share a line, so a write to the producer
// index does not invalidate the line holding the consumer index.
//
// The zero value is an index at 0.
type Index struct {
	_ cpu.CacheLinePad
	v atomix.Uint64
	_ padWord
	_ cpu.CacheLinePad
}

// Get returns the index without ordering (owner reads).
func (x *Index) Get() uint64 {
	return x.v.LoadRelaxed()
}

// GetAcquire returns the index with acquire ordering.
// Pairs with SetOrdered or a successful CompareAndSwap on another core.
func (x *Index) GetAcquire() uint64 {
	return x.v.LoadAcquire()
}

// SetOrdered stores v with release ordering.
// Single writer only.
func (x *Index) SetOrdered(v uint64) {
	x.v.StoreRelease(v)
}

// CompareAndSwap advances the index from old to next if it still holds old.
// Used only where several writers contend for the index.
func (x *Index) CompareAndSwap(old, next uint64) bool {
	return x.v.CompareAndSwapAcqRel(old, next)
}

// Distance returns a point-in-time count of producer - consumer.
//
// The consumer index is read before and after the producer index; the
// snapshot is retried until both consumer reads agree. The result is not
// linearizable while producers are active.
func Distance(producer, consumer *Index) int {
	after := consumer.GetAcquire()
	for {
		before := after
		p := producer.GetAcquire()
		after = consumer.GetAcquire()
		if before != after {
			continue
		}
		// A consumer may overtake a producer index that has not been
		// stored yet (slot published first).
		if p <= after {
			return 0
		}
		if n := p - after; n < math.MaxInt {
			return int(n)
		}
		return math.MaxInt
	}
}
