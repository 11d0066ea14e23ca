package core

// Process is the mutable simulation state of one job. It is kept apart from
// Job so the input attributes are never used as scratch space.
type Process struct {
	Index      int // position in the job collection, used as the declaration-order tie-break
	Job        *Job
	Remaining  int
	ReadySince int
	Waited     int
	Started    bool
}

func NewProcesses(jobs []Job) []*Process {
	processes := make([]*Process, len(jobs))
	for i := range jobs {
		processes[i] = &Process{
			Index:      i,
			Job:        &jobs[i],
			Remaining:  jobs[i].BurstTime,
			ReadySince: jobs[i].ArrivalTime,
		}
	}
	return processes
}

// TimeSlice is one contiguous run of a job on the cpu.
type TimeSlice struct {
	JobID int
	Start int
	Stop  int
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated core driven by an integer clock.
type Cpu struct {
	Clock  int
	Slices []TimeSlice

	utilizationTime int
	idleTime        int
}

func NewCpu() *Cpu {
	return &Cpu{Slices: make([]TimeSlice, 0)}
}

// IdleUntil moves the clock forward to t, accounting the gap as idle time.
func (c *Cpu) IdleUntil(t int) {
	if c.Clock < t {
		c.idleTime += t - c.Clock
		c.Clock = t
	}
}

// Execute runs the process for d units starting at the current clock.
func (c *Cpu) Execute(p *Process, d int) {
	if d <= 0 {
		return
	}
	if !p.Started {
		p.Started = true
		p.Job.ResponseTime = c.Clock - p.Job.ArrivalTime
	}

	last := len(c.Slices) - 1
	if last >= 0 && c.Slices[last].JobID == p.Job.ID && c.Slices[last].Stop == c.Clock {
		c.Slices[last].Stop += d
	} else {
		c.Slices = append(c.Slices, TimeSlice{JobID: p.Job.ID, Start: c.Clock, Stop: c.Clock + d})
	}

	c.Clock += d
	c.utilizationTime += d
	p.Remaining -= d
}

// Complete records the finished job at the current clock.
func (c *Cpu) Complete(p *Process) {
	job := p.Job
	job.CompletionTime = c.Clock
	job.TurnaroundTime = job.CompletionTime - job.ArrivalTime
	job.WaitingTime = job.TurnaroundTime - job.BurstTime
}

// Dispatch charges p with the time it sat in the ready pool since ReadySince.
func (c *Cpu) Dispatch(p *Process) {
	p.Waited += c.Clock - p.ReadySince
}

// Preempt puts p back in the ready pool at the current clock.
func (c *Cpu) Preempt(p *Process) {
	p.ReadySince = c.Clock
}

// CompleteWaited records the finished job from its ready-pool bookkeeping
// instead of deriving waiting time from the clock.
func (c *Cpu) CompleteWaited(p *Process) {
	job := p.Job
	job.CompletionTime = c.Clock
	job.WaitingTime = p.Waited
	job.TurnaroundTime = job.WaitingTime + job.BurstTime
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.Clock,
		UtilizationTime: c.utilizationTime,
		IdleTime:        c.idleTime,
	}
}
