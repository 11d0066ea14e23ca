package queue

import (
	"container/heap"

	"cpu-scheduler/internal/core"
)

// LessFunc reports whether a should leave the ready pool before b.
type LessFunc func(a, b *core.Process) bool

// ------------------------------
// Internal heap implementation
// ------------------------------

type processHeap struct {
	items []*core.Process
	less  LessFunc
}

func (ph processHeap) Len() int { return len(ph.items) }

func (ph processHeap) Less(i, j int) bool { return ph.less(ph.items[i], ph.items[j]) }

func (ph processHeap) Swap(i, j int) { ph.items[i], ph.items[j] = ph.items[j], ph.items[i] }

func (ph *processHeap) Push(x interface{}) {
	ph.items = append(ph.items, x.(*core.Process))
}

func (ph *processHeap) Pop() interface{} {
	old := ph.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	ph.items = old[0 : n-1]
	return item
}

// ------------------------------
// Ready queue
// ------------------------------

// ReadyQueue holds arrived, unfinished processes. It is owned by a single
// simulation run and is not safe for concurrent use.
type ReadyQueue struct {
	heap processHeap
}

func NewReadyQueue(less LessFunc) *ReadyQueue {
	rq := &ReadyQueue{heap: processHeap{less: less}}
	heap.Init(&rq.heap)
	return rq
}

func (rq *ReadyQueue) Push(p *core.Process) {
	heap.Push(&rq.heap, p)
}

// Pop returns nil when the queue is empty.
func (rq *ReadyQueue) Pop() *core.Process {
	if rq.heap.Len() == 0 {
		return nil
	}
	return heap.Pop(&rq.heap).(*core.Process)
}

func (rq *ReadyQueue) Peek() *core.Process {
	if rq.heap.Len() == 0 {
		return nil
	}
	return rq.heap.items[0]
}

func (rq *ReadyQueue) Len() int {
	return rq.heap.Len()
}

// ShortestBurst orders by burst time, then arrival, then id.
func ShortestBurst(a, b *core.Process) bool {
	if a.Job.BurstTime != b.Job.BurstTime {
		return a.Job.BurstTime < b.Job.BurstTime
	}
	if a.Job.ArrivalTime != b.Job.ArrivalTime {
		return a.Job.ArrivalTime < b.Job.ArrivalTime
	}
	return a.Job.ID < b.Job.ID
}

// ShortestRemaining orders by remaining time; equal remaining times go to
// the process declared first.
func ShortestRemaining(a, b *core.Process) bool {
	if a.Remaining != b.Remaining {
		return a.Remaining < b.Remaining
	}
	return a.Index < b.Index
}
