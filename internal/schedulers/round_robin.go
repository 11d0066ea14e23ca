package schedulers

import (
	"fmt"
	"log"

	"cpu-scheduler/internal/core"
)

// RoundRobin cycles over the jobs in input order, giving each arrived job at
// most TimeQuantum units per turn.
type RoundRobin struct {
	TimeQuantum int
}

func (r RoundRobin) Name() string {
	return fmt.Sprintf("Round-robin (quantum=%d)", r.TimeQuantum)
}

func (r RoundRobin) validate() error {
	if r.TimeQuantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, r.TimeQuantum)
	}
	return nil
}

func (r RoundRobin) schedule(jobs []core.Job, cpu *core.Cpu) {
	log.Println("running roundRobin algorithm with timeQuantum = ", r.TimeQuantum)

	processes := core.NewProcesses(jobs)
	left := len(processes)
	for left > 0 {
		ran := false
		for _, p := range processes {
			if p.Remaining == 0 || p.Job.ArrivalTime > cpu.Clock {
				continue
			}
			ran = true

			slice := r.TimeQuantum
			if p.Remaining < slice {
				slice = p.Remaining
			}
			cpu.Execute(p, slice)
			if p.Remaining == 0 {
				cpu.Complete(p)
				left--
			}
		}

		// nothing has arrived yet: idle until the next arrival
		if !ran {
			cpu.IdleUntil(nextArrival(processes))
		}
	}
}

// nextArrival returns the earliest arrival among unfinished processes.
func nextArrival(processes []*core.Process) int {
	next := -1
	for _, p := range processes {
		if p.Remaining == 0 {
			continue
		}
		if next == -1 || p.Job.ArrivalTime < next {
			next = p.Job.ArrivalTime
		}
	}
	return next
}
