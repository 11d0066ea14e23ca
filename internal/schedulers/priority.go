package schedulers

import (
	"log"
	"sort"

	"cpu-scheduler/internal/core"
)

// Priority is static, non-preemptive priority scheduling. The whole order is
// fixed up front, so a selected job runs to completion even if a more urgent
// one arrives meanwhile.
type Priority struct{}

func (Priority) Name() string { return "Priority" }

func (Priority) validate() error { return nil }

func (Priority) schedule(jobs []core.Job, cpu *core.Cpu) {
	log.Println("running priority algorithm ...")

	processes := core.NewProcesses(jobs)
	sort.SliceStable(processes, func(i, j int) bool {
		a, b := processes[i].Job, processes[j].Job
		if a.Priority == b.Priority {
			return a.ArrivalTime < b.ArrivalTime
		}
		return a.Priority < b.Priority
	})

	runInOrder(processes, cpu)
}
