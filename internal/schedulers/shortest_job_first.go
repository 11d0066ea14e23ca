package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/queue"
)

// ShortestJobFirst is non-preemptive: whenever the cpu frees up it takes the
// arrived job with the smallest burst time.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Name() string { return "Shortest-job-first" }

func (ShortestJobFirst) validate() error { return nil }

func (ShortestJobFirst) schedule(jobs []core.Job, cpu *core.Cpu) {
	log.Println("running sjf algorithm ...")

	pending := sortByArrival(core.NewProcesses(jobs))
	readyQueue := queue.NewReadyQueue(queue.ShortestBurst)

	next := 0
	for next < len(pending) || readyQueue.Len() > 0 {
		for next < len(pending) && pending[next].Job.ArrivalTime <= cpu.Clock {
			readyQueue.Push(pending[next])
			next++
		}

		shortestJob := readyQueue.Pop()
		if shortestJob == nil {
			cpu.IdleUntil(pending[next].Job.ArrivalTime)
			continue
		}
		cpu.Execute(shortestJob, shortestJob.Remaining)
		cpu.Complete(shortestJob)
	}
}

func sortByArrival(processes []*core.Process) []*core.Process {
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].Job.ArrivalTime < processes[j].Job.ArrivalTime
	})
	return processes
}
