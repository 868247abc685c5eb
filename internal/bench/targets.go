// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench measures sustained producer/consumer throughput of the
// ringq variants against a buffered channel and a mutex-guarded queue.
package bench

import (
	"fmt"
	"slices"
	"sync"

	"github.com/eapache/queue"

	"code.hybscloud.com/ringq"
)

// Pipe is the minimal non-blocking surface a target exposes to the harness.
// Send is called from the producer goroutines, Recv from the single consumer.
type Pipe interface {
	// Send offers v. Returns ringq.ErrWouldBlock when full.
	Send(v *int) error
	// Recv removes the oldest element. Reports false when empty.
	Recv() (int, bool)
}

// Target is a named Pipe factory.
type Target struct {
	Name           string
	Description    string
	SingleProducer bool // Run forces one producer
	New            func(capacity int) Pipe
}

// recvBatch is how many elements the drain-based pipe pulls per refill.
const recvBatch = 64

// Targets returns every registered target in report order.
func Targets() []Target {
	return []Target{
		{
			Name:           "spsc",
			Description:    "ringq.SPSC, Offer/Poll",
			SingleProducer: true,
			New:            func(c int) Pipe { return queuePipe{ringq.NewSPSC[int](c)} },
		},
		{
			Name:        "mpsc",
			Description: "ringq.MPSC, Offer/Poll",
			New:         func(c int) Pipe { return queuePipe{ringq.NewMPSC[int](c)} },
		},
		{
			Name:        "mpsc-buffer",
			Description: "ringq.MPSCBuffer, Offer/DrainLimit",
			New:         func(c int) Pipe { return newBufferPipe(ringq.NewMPSCBuffer[int](c)) },
		},
		{
			Name:        "channel",
			Description: "buffered chan int with select/default",
			New:         func(c int) Pipe { return make(chanPipe, c) },
		},
		{
			Name:        "eapache",
			Description: "eapache/queue behind a sync.Mutex",
			New:         func(c int) Pipe { return newLockedPipe(c) },
		},
	}
}

// TargetNames returns the names of all targets.
func TargetNames() []string {
	var names []string
	for _, t := range Targets() {
		names = append(names, t.Name)
	}
	return names
}

// Lookup returns the targets with the given names, in the order given.
func Lookup(names ...string) ([]Target, error) {
	all := Targets()
	out := make([]Target, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(t Target) bool { return t.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("unknown target %q (known: %v)", name, TargetNames())
		}
		out = append(out, all[i])
	}
	return out, nil
}

type queuePipe struct {
	q ringq.Queue[int]
}

func (p queuePipe) Send(v *int) error { return p.q.Offer(v) }

func (p queuePipe) Recv() (int, bool) {
	v, err := p.q.Poll()
	return v, err == nil
}

// bufferPipe serves Recv from a local batch refilled by DrainLimit.
type bufferPipe struct {
	b     *ringq.MPSCBuffer[int]
	batch []int
	next  int
	visit ringq.Visitor[int]
}

func newBufferPipe(b *ringq.MPSCBuffer[int]) *bufferPipe {
	p := &bufferPipe{b: b, batch: make([]int, 0, recvBatch)}
	p.visit = func(v int) error {
		p.batch = append(p.batch, v)
		return nil
	}
	return p
}

func (p *bufferPipe) Send(v *int) error { return p.b.Offer(v) }

func (p *bufferPipe) Recv() (int, bool) {
	if p.next == len(p.batch) {
		p.batch, p.next = p.batch[:0], 0
		if n, _ := p.b.DrainLimit(p.visit, recvBatch); n == 0 {
			return 0, false
		}
	}
	v := p.batch[p.next]
	p.next++
	return v, true
}

type chanPipe chan int

func (p chanPipe) Send(v *int) error {
	select {
	case p <- *v:
		return nil
	default:
		return ringq.ErrWouldBlock
	}
}

func (p chanPipe) Recv() (int, bool) {
	select {
	case v := <-p:
		return v, true
	default:
		return 0, false
	}
}

// lockedPipe bounds an unbounded eapache queue by capacity.
type lockedPipe struct {
	mu       sync.Mutex
	q        *queue.Queue
	capacity int
}

func newLockedPipe(capacity int) *lockedPipe {
	return &lockedPipe{q: queue.New(), capacity: capacity}
}

func (p *lockedPipe) Send(v *int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.q.Length() >= p.capacity {
		return ringq.ErrWouldBlock
	}
	p.q.Add(*v)
	return nil
}

func (p *lockedPipe) Recv() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.q.Length() == 0 {
		return 0, false
	}
	return p.q.Remove().(int), true
}
