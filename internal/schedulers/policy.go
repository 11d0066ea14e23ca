package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpu-scheduler/internal/core"
)

var (
	ErrUnknownPolicy  = errors.New("unrecognized scheduling policy")
	ErrInvalidQuantum = errors.New("time quantum must be positive")
)

// Policy is one of the five scheduling disciplines. The unexported methods
// keep the set closed to this package.
type Policy interface {
	Name() string
	validate() error
	schedule(jobs []core.Job, cpu *core.Cpu)
}

// Run schedules jobs in place under policy and returns the cpu that ran
// them. Nothing is written to jobs when the input or the policy is invalid.
func Run(jobs []core.Job, policy Policy) (*core.Cpu, error) {
	if policy == nil {
		return nil, ErrUnknownPolicy
	}
	if err := policy.validate(); err != nil {
		return nil, err
	}
	if err := core.Validate(jobs); err != nil {
		return nil, err
	}

	core.Reset(jobs)
	cpu := core.NewCpu()
	policy.schedule(jobs, cpu)
	return cpu, nil
}

// ParsePolicy maps a selector name to its policy. timeQuantum is only used
// for round robin.
func ParsePolicy(name string, timeQuantum int) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return FirstComeFirstServe{}, nil
	case "priority":
		return Priority{}, nil
	case "rr", "round_robin":
		policy := RoundRobin{TimeQuantum: timeQuantum}
		if err := policy.validate(); err != nil {
			return nil, err
		}
		return policy, nil
	case "sjf", "sjf_np":
		return ShortestJobFirst{}, nil
	case "srtf", "sjf_p", "sjf_preemptive":
		return ShortestRemainingTimeFirst{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// AllPolicies lists every policy in menu order.
func AllPolicies(timeQuantum int) []Policy {
	return []Policy{
		FirstComeFirstServe{},
		Priority{},
		RoundRobin{TimeQuantum: timeQuantum},
		ShortestJobFirst{},
		ShortestRemainingTimeFirst{},
	}
}

// runInOrder is the non-preemptive running clock shared by fcfs and
// priority: each job starts when both the cpu and the job are ready.
func runInOrder(processes []*core.Process, cpu *core.Cpu) {
	for _, p := range processes {
		cpu.IdleUntil(p.Job.ArrivalTime)
		cpu.Execute(p, p.Remaining)
		cpu.Complete(p)
	}
}
