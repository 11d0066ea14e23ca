package core

import (
	"errors"
	"fmt"
)

var (
	ErrNoJobs         = errors.New("no jobs supplied")
	ErrInvalidBurst   = errors.New("burst time must be positive")
	ErrInvalidArrival = errors.New("arrival time must not be negative")
)

// Job is one simulated process. BurstTime, ArrivalTime and Priority are
// inputs; the remaining fields are written by a scheduling policy.
type Job struct {
	ID          int
	BurstTime   int
	ArrivalTime int
	Priority    int // lower number = more urgent

	WaitingTime    int
	TurnaroundTime int
	CompletionTime int
	ResponseTime   int
}

// JobSpec is the (burst, arrival, priority) tuple a driver supplies.
type JobSpec struct {
	BurstTime   int
	ArrivalTime int
	Priority    int
}

// NewJobs assigns ids by input order starting at 1.
func NewJobs(specs []JobSpec) []Job {
	jobs := make([]Job, len(specs))
	for i, s := range specs {
		jobs[i] = Job{
			ID:          i + 1,
			BurstTime:   s.BurstTime,
			ArrivalTime: s.ArrivalTime,
			Priority:    s.Priority,
		}
	}
	return jobs
}

func Validate(jobs []Job) error {
	if len(jobs) == 0 {
		return ErrNoJobs
	}
	for _, job := range jobs {
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: job %d has burst time %d", ErrInvalidBurst, job.ID, job.BurstTime)
		}
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: job %d has arrival time %d", ErrInvalidArrival, job.ID, job.ArrivalTime)
		}
	}
	return nil
}

// Reset clears every computed field so a collection can be scheduled again.
func Reset(jobs []Job) {
	for i := range jobs {
		jobs[i].WaitingTime = 0
		jobs[i].TurnaroundTime = 0
		jobs[i].CompletionTime = 0
		jobs[i].ResponseTime = 0
	}
}
