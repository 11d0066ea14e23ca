package core

import (
	"errors"
	"testing"
)

func TestNewJobsAssignsSequentialIds(t *testing.T) {
	jobs := NewJobs([]JobSpec{{BurstTime: 4}, {BurstTime: 2, ArrivalTime: 1, Priority: 3}})
	for i, job := range jobs {
		if job.ID != i+1 {
			t.Errorf("Expected id %d, got %d", i+1, job.ID)
		}
	}
	if jobs[1].Priority != 3 || jobs[1].ArrivalTime != 1 {
		t.Errorf("Expected attributes to be copied, got %+v", jobs[1])
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrNoJobs) {
		t.Errorf("Expected ErrNoJobs, got %v", err)
	}
	if err := Validate(NewJobs([]JobSpec{{BurstTime: -1}})); !errors.Is(err, ErrInvalidBurst) {
		t.Errorf("Expected ErrInvalidBurst, got %v", err)
	}
	if err := Validate(NewJobs([]JobSpec{{BurstTime: 1, ArrivalTime: -3}})); !errors.Is(err, ErrInvalidArrival) {
		t.Errorf("Expected ErrInvalidArrival, got %v", err)
	}
	if err := Validate(NewJobs([]JobSpec{{BurstTime: 1}})); err != nil {
		t.Errorf("Expected valid jobs, got %v", err)
	}
}

func TestCpuAccounting(t *testing.T) {
	jobs := NewJobs([]JobSpec{{BurstTime: 3, ArrivalTime: 2}})
	p := NewProcesses(jobs)[0]
	cpu := NewCpu()

	cpu.IdleUntil(2)
	cpu.IdleUntil(1) // never moves backwards
	cpu.Execute(p, 1)
	cpu.Execute(p, 2)
	cpu.Complete(p)

	if len(cpu.Slices) != 1 || cpu.Slices[0] != (TimeSlice{JobID: 1, Start: 2, Stop: 5}) {
		t.Errorf("Expected a single merged slice 2-5, got %+v", cpu.Slices)
	}
	metric := cpu.Metric()
	if metric.TotalTime != 5 || metric.IdleTime != 2 || metric.UtilizationTime != 3 {
		t.Errorf("unexpected metric %+v", metric)
	}
	if jobs[0].WaitingTime != 0 || jobs[0].TurnaroundTime != 3 || jobs[0].CompletionTime != 5 {
		t.Errorf("unexpected job result %+v", jobs[0])
	}
	if p.Remaining != 0 {
		t.Errorf("Expected no remaining time, got %d", p.Remaining)
	}
}

func TestCpuReadyBookkeeping(t *testing.T) {
	jobs := NewJobs([]JobSpec{{BurstTime: 2}, {BurstTime: 1, ArrivalTime: 1}})
	processes := NewProcesses(jobs)
	long, short := processes[0], processes[1]
	cpu := NewCpu()

	cpu.Dispatch(long)
	cpu.Execute(long, 1)
	cpu.Preempt(long)

	cpu.Dispatch(short)
	cpu.Execute(short, 1)
	cpu.CompleteWaited(short)

	cpu.Dispatch(long)
	cpu.Execute(long, 1)
	cpu.CompleteWaited(long)

	if jobs[0].WaitingTime != 1 || jobs[0].TurnaroundTime != 3 || jobs[0].CompletionTime != 3 {
		t.Errorf("unexpected long job result %+v", jobs[0])
	}
	if jobs[1].WaitingTime != 0 || jobs[1].TurnaroundTime != 1 || jobs[1].ResponseTime != 0 {
		t.Errorf("unexpected short job result %+v", jobs[1])
	}
	if len(cpu.Slices) != 3 {
		t.Errorf("Expected 3 slices, got %+v", cpu.Slices)
	}
}
