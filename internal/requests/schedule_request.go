package requests

import "cpu-scheduler/internal/core"

type Job struct {
	BurstTime   int `json:"burst_time"`
	ArrivalTime int `json:"arrival_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum *int  `json:"time_quantum,omitempty"`
}

// Quantum returns the requested time quantum, or fallback when the request
// did not set one. An explicit zero is returned as is.
func (r *ScheduleRequests) Quantum(fallback int) int {
	if r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}

// ToJobs builds the job collection; ids follow request order.
func (r *ScheduleRequests) ToJobs() []core.Job {
	specs := make([]core.JobSpec, len(r.Jobs))
	for i, job := range r.Jobs {
		specs[i] = core.JobSpec{
			BurstTime:   job.BurstTime,
			ArrivalTime: job.ArrivalTime,
			Priority:    job.Priority,
		}
	}
	return core.NewJobs(specs)
}
