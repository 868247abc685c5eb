// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/ringq"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Single-goroutine Baselines
// =============================================================================

func BenchmarkSPSC_SingleOp(b *testing.B) {
	q := ringq.NewSPSC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Offer(&v)
		q.Poll()
	}
}

func BenchmarkMPSC_SingleOp(b *testing.B) {
	q := ringq.NewMPSC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Offer(&v)
		q.Poll()
	}
}

func BenchmarkMPSC_RelaxedOffer(b *testing.B) {
	q := ringq.NewMPSC[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.RelaxedOffer(&v)
		q.Poll()
	}
}

func BenchmarkChannel_SingleOp(b *testing.B) {
	ch := make(chan int, 1024)

	b.ResetTimer()
	for i := range b.N {
		ch <- i
		<-ch
	}
}

// =============================================================================
// Drain Batches
// =============================================================================

func BenchmarkDrain(b *testing.B) {
	for _, batch := range []int{16, 256} {
		b.Run(fmt.Sprintf("MPSCBuffer/batch=%d", batch), func(b *testing.B) {
			buf := ringq.NewMPSCBuffer[int](1024)
			var sum int
			visit := func(v int) error {
				sum += v
				return nil
			}

			b.ResetTimer()
			for i := 0; i < b.N; i += batch {
				for j := range batch {
					v := i + j
					buf.Offer(&v)
				}
				buf.Drain(visit)
			}
			_ = sum
		})
	}
}

// =============================================================================
// Contended Producers
// =============================================================================

func BenchmarkMPSC_Parallel(b *testing.B) {
	if ringq.RaceEnabled {
		b.Skip("skip: concurrent benchmark requires atomic slot publication")
	}
	q := ringq.NewMPSC[int](4096)
	numProducers := max(runtime.GOMAXPROCS(0)-1, 1)
	opsPerProducer := max(b.N/numProducers, 1)
	total := int64(numProducers * opsPerProducer)

	b.ResetTimer()

	var producerWg sync.WaitGroup
	var consumed atomix.Int64

	// Consumer
	done := make(chan struct{})
	go func() {
		defer close(done)
		sw := spin.Wait{}
		for consumed.Load() < total {
			n, _ := q.Drain(func(int) error { return nil })
			if n == 0 {
				sw.Once()
				continue
			}
			sw.Reset()
			consumed.Add(int64(n))
		}
	}()

	// Producers
	for p := range numProducers {
		producerWg.Add(1)
		go func(id int) {
			defer producerWg.Done()
			sw := spin.Wait{}
			base := id * opsPerProducer
			for i := range opsPerProducer {
				v := base + i
				for q.Offer(&v) != nil {
					sw.Once()
				}
				sw.Reset()
			}
		}(p)
	}

	producerWg.Wait()
	<-done
}

func BenchmarkSPSC_Stream(b *testing.B) {
	if ringq.RaceEnabled {
		b.Skip("skip: concurrent benchmark requires atomic slot publication")
	}
	q := ringq.NewSPSC[int](1024)

	b.ResetTimer()

	done := make(chan struct{})
	go func() {
		defer close(done)
		sw := spin.Wait{}
		for got := 0; got < b.N; {
			if _, err := q.Poll(); err != nil {
				sw.Once()
				continue
			}
			sw.Reset()
			got++
		}
	}()

	sw := spin.Wait{}
	for i := range b.N {
		for q.Offer(&i) != nil {
			sw.Once()
		}
		sw.Reset()
	}
	<-done
}
