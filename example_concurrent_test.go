// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples with concurrent producer/consumer goroutines.
// These trigger false positives with Go's race detector because queue
// synchronization uses atomic sequences that the detector cannot see.
// The examples are correct; they're excluded from race testing.

package ringq_test

import (
	"fmt"
	"slices"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringq"
)

// Example_resultFanIn demonstrates workers reporting results into one MPSC
// queue, each worker owning a private SPSC job queue.
func Example_resultFanIn() {
	type Result struct {
		ID     int
		Square int
	}

	const workers, jobsPerWorker = 3, 2
	inboxes := make([]*ringq.SPSC[int], workers)
	for w := range inboxes {
		inboxes[w] = ringq.NewSPSC[int](4)
	}
	results := ringq.NewMPSC[Result](8)

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(in *ringq.SPSC[int]) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for done := 0; done < jobsPerWorker; {
				n, err := in.Poll()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				r := Result{ID: n, Square: n * n}
				for results.Offer(&r) != nil {
					backoff.Wait()
				}
				done++
			}
		}(inboxes[w])
	}

	// Dispatch round-robin
	backoff := iox.Backoff{}
	for i := range workers * jobsPerWorker {
		v := i + 1
		for inboxes[i%workers].Offer(&v) != nil {
			backoff.Wait()
		}
		backoff.Reset()
	}
	wg.Wait()

	var out []Result
	results.Drain(func(r Result) error {
		out = append(out, r)
		return nil
	})
	slices.SortFunc(out, func(a, b Result) int { return a.ID - b.ID })
	for _, r := range out {
		fmt.Printf("Job %d: %d² = %d\n", r.ID, r.ID, r.Square)
	}

	// Output:
	// Job 1: 1² = 1
	// Job 2: 2² = 4
	// Job 3: 3² = 9
	// Job 4: 4² = 16
	// Job 5: 5² = 25
	// Job 6: 6² = 36
}

// Example_pipeline demonstrates a multi-stage pipeline using SPSC queues.
func Example_pipeline() {
	// Pipeline: Generate → Double → Print
	stage1to2 := ringq.NewSPSC[int](8)
	stage2to3 := ringq.NewSPSC[int](8)

	var wg sync.WaitGroup
	results := make([]int, 0, 5)

	// Stage 1: Generate numbers 1-5
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for i := 1; i <= 5; i++ {
			v := i
			for stage1to2.Offer(&v) != nil {
				backoff.Wait()
			}
			backoff.Reset()
		}
	}()

	// Stage 2: Double each number
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoffPoll := iox.Backoff{}
		backoffOffer := iox.Backoff{}
		processed := 0
		for processed < 5 {
			v, err := stage1to2.Poll()
			if err != nil {
				backoffPoll.Wait()
				continue
			}
			backoffPoll.Reset()
			doubled := v * 2
			for stage2to3.Offer(&doubled) != nil {
				backoffOffer.Wait()
			}
			backoffOffer.Reset()
			processed++
		}
	}()

	// Stage 3: Collect results
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for len(results) < 5 {
			n, _ := stage2to3.Drain(func(v int) error {
				results = append(results, v)
				return nil
			})
			if n == 0 {
				backoff.Wait()
				continue
			}
			backoff.Reset()
		}
	}()

	wg.Wait()

	for i, v := range results {
		fmt.Printf("Stage output %d: %d\n", i, v)
	}

	// Output:
	// Stage output 0: 2
	// Stage output 1: 4
	// Stage output 2: 6
	// Stage output 3: 8
	// Stage output 4: 10
}
