package schedulers

import (
	"log"

	"github.com/google/uuid"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// Schedule runs one policy over the request's jobs.
func Schedule(request *requests.ScheduleRequests, policy Policy) (responses.ScheduleResponse, error) {
	return ScheduleJobs(request.ToJobs(), policy)
}

// ScheduleAll runs every policy over the request's jobs.
func ScheduleAll(request *requests.ScheduleRequests, timeQuantum int) ([]responses.ScheduleResponse, error) {
	return ScheduleAllJobs(request.ToJobs(), timeQuantum)
}

// ScheduleJobs runs one policy over jobs in place.
func ScheduleJobs(jobs []core.Job, policy Policy) (responses.ScheduleResponse, error) {
	cpu, err := Run(jobs, policy)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return generateResponse(policy, jobs, cpu)
}

// ScheduleAllJobs runs every policy, each on its own copy of jobs.
func ScheduleAllJobs(jobs []core.Job, timeQuantum int) ([]responses.ScheduleResponse, error) {
	policies := AllPolicies(timeQuantum)
	all := make([]responses.ScheduleResponse, 0, len(policies))
	for _, policy := range policies {
		response, err := ScheduleJobs(append([]core.Job(nil), jobs...), policy)
		if err != nil {
			return nil, err
		}
		all = append(all, response)
	}
	return all, nil
}

func generateResponse(policy Policy, jobs []core.Job, cpu *core.Cpu) (responses.ScheduleResponse, error) {
	averageWaitingTime, averageResponseTime, averageTimeAroundTime, err := util.CalculateAverage(jobs)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	metric := cpu.Metric()
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(jobs)) / float64(metric.TotalTime)
	}

	var response = responses.ScheduleResponse{
		RunId:                 uuid.New().String(),
		Algorithm:             policy.Name(),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               generateProcessDetails(jobs),
		Gantt:                 generateGantt(cpu.Slices),
	}
	log.Printf("response is: %+v", response)
	return response, nil
}

func generateProcessDetails(jobs []core.Job) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, len(jobs))
	for i, job := range jobs {
		details[i] = responses.ProcessResponse{
			ProcessId:      job.ID,
			BurstTime:      job.BurstTime,
			ArrivalTime:    job.ArrivalTime,
			Priority:       job.Priority,
			WaitingTime:    job.WaitingTime,
			TurnAroundTime: job.TurnaroundTime,
			CompletionTime: job.CompletionTime,
			ResponseTime:   job.ResponseTime,
		}
	}
	return details
}

func generateGantt(slices []core.TimeSlice) []responses.GanttSlice {
	gantt := make([]responses.GanttSlice, len(slices))
	for i, s := range slices {
		gantt[i] = responses.GanttSlice{ProcessId: s.JobID, Start: s.Start, Stop: s.Stop}
	}
	return gantt
}
