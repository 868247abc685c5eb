// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

import (
	"errors"
	"testing"
	"unsafe"
)

// TestProducerCacheOnlyInSPSC checks that the cached consumer index is
// carried by SPSC alone; multi-producer variants are exactly the shared core.
func TestProducerCacheOnlyInSPSC(t *testing.T) {
	coreSize := unsafe.Sizeof(core[int]{})
	if got := unsafe.Sizeof(MPSC[int]{}); got != coreSize {
		t.Errorf("MPSC size: got %d, want %d", got, coreSize)
	}
	if got := unsafe.Sizeof(MPSCBuffer[int]{}); got != coreSize {
		t.Errorf("MPSCBuffer size: got %d, want %d", got, coreSize)
	}
	if got, want := unsafe.Sizeof(SPSC[int]{}), coreSize+unsafe.Sizeof(uint64(0)); got != want {
		t.Errorf("SPSC size: got %d, want %d", got, want)
	}
}

// TestSPSCCachedHeadRefresh checks that the producer refreshes its view of
// the consumer only when the cached view says the queue is full.
func TestSPSCCachedHeadRefresh(t *testing.T) {
	q := NewSPSC[int](4)
	for i := range 4 {
		if err := q.Offer(&i); err != nil {
			t.Fatalf("Offer(%d): %v", i, err)
		}
	}
	if q.cachedHead != 0 {
		t.Fatalf("cachedHead after fill: got %d, want 0", q.cachedHead)
	}

	v := 4
	if err := q.Offer(&v); !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("Offer on full: got %v, want ErrWouldBlock", err)
	}

	for range 2 {
		if _, err := q.Poll(); err != nil {
			t.Fatalf("Poll: %v", err)
		}
	}
	if err := q.Offer(&v); err != nil {
		t.Fatalf("Offer after Poll: %v", err)
	}
	if q.cachedHead != 2 {
		t.Fatalf("cachedHead after refresh: got %d, want 2", q.cachedHead)
	}
}
