package queue

import (
	"testing"

	"cpu-scheduler/internal/core"
)

func TestReadyQueueShortestBurstOrdering(t *testing.T) {
	jobs := core.NewJobs([]core.JobSpec{
		{BurstTime: 6, ArrivalTime: 0},
		{BurstTime: 2, ArrivalTime: 1},
		{BurstTime: 2, ArrivalTime: 0},
		{BurstTime: 8, ArrivalTime: 0},
	})
	rq := NewReadyQueue(ShortestBurst)
	for _, p := range core.NewProcesses(jobs) {
		rq.Push(p)
	}

	want := []int{3, 2, 1, 4}
	for i, id := range want {
		p := rq.Pop()
		if p == nil {
			t.Fatalf("pop %d: queue empty", i)
		}
		if p.Job.ID != id {
			t.Errorf("pop %d: expected job %d, got %d", i, id, p.Job.ID)
		}
	}
	if rq.Pop() != nil {
		t.Error("Expected empty queue to return nil")
	}
}

func TestReadyQueueShortestRemainingTieKeepsDeclarationOrder(t *testing.T) {
	jobs := core.NewJobs([]core.JobSpec{
		{BurstTime: 5}, {BurstTime: 3}, {BurstTime: 3},
	})
	processes := core.NewProcesses(jobs)
	processes[0].Remaining = 3

	rq := NewReadyQueue(ShortestRemaining)
	rq.Push(processes[2])
	rq.Push(processes[1])
	rq.Push(processes[0])

	if rq.Peek().Index != 0 {
		t.Errorf("Expected index 0 at the head, got %d", rq.Peek().Index)
	}
	if rq.Len() != 3 {
		t.Errorf("Expected length 3, got %d", rq.Len())
	}
	for want := 0; want < 3; want++ {
		if got := rq.Pop().Index; got != want {
			t.Errorf("Expected index %d, got %d", want, got)
		}
	}
}
