package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler/internal/core"
)

type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Name() string { return "First-come, first-serve" }

func (FirstComeFirstServe) validate() error { return nil }

func (FirstComeFirstServe) schedule(jobs []core.Job, cpu *core.Cpu) {
	log.Println("running fcfs algorithm ...")

	// sort jobs by arrival time
	processes := core.NewProcesses(jobs)
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].Job.ArrivalTime < processes[j].Job.ArrivalTime
	})

	runInOrder(processes, cpu)
}
