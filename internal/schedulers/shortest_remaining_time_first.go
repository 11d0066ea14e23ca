package schedulers

import (
	"log"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/queue"
)

// ShortestRemainingTimeFirst is preemptive shortest-job-first. The running
// job is only preempted by a ready job with strictly less remaining time.
type ShortestRemainingTimeFirst struct{}

func (ShortestRemainingTimeFirst) Name() string { return "Shortest-remaining-time-first" }

func (ShortestRemainingTimeFirst) validate() error { return nil }

func (ShortestRemainingTimeFirst) schedule(jobs []core.Job, cpu *core.Cpu) {
	log.Println("running srtf algorithm ...")

	pending := sortByArrival(core.NewProcesses(jobs))
	readyQueue := queue.NewReadyQueue(queue.ShortestRemaining)

	var running *core.Process
	next, completed := 0, 0
	for completed < len(pending) {
		for next < len(pending) && pending[next].Job.ArrivalTime <= cpu.Clock {
			readyQueue.Push(pending[next])
			next++
		}

		if running != nil && readyQueue.Len() > 0 && readyQueue.Peek().Remaining < running.Remaining {
			cpu.Preempt(running)
			readyQueue.Push(running)
			running = nil
		}

		if running == nil {
			running = readyQueue.Pop()
			if running == nil {
				cpu.IdleUntil(pending[next].Job.ArrivalTime)
				continue
			}
			cpu.Dispatch(running)
		}

		// run until the job finishes or the next arrival can challenge it
		step := running.Remaining
		if next < len(pending) {
			if untilArrival := pending[next].Job.ArrivalTime - cpu.Clock; untilArrival < step {
				step = untilArrival
			}
		}
		cpu.Execute(running, step)

		if running.Remaining == 0 {
			cpu.CompleteWaited(running)
			running = nil
			completed++
		}
	}
}
