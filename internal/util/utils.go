package util

import (
	"errors"

	"cpu-scheduler/internal/core"
)

var ErrNoData = errors.New("no jobs to average")

func CalculateAverage(jobs []core.Job) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64, err error) {
	if len(jobs) == 0 {
		err = ErrNoData
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, job := range jobs {
		waitingTimeSum += float64(job.WaitingTime)
		responseTimeSum += float64(job.ResponseTime)
		turnAroundTimeSum += float64(job.TurnaroundTime)
	}

	jobCount := float64(len(jobs))

	averageWaitingTime = waitingTimeSum / jobCount
	averageResponseTime = responseTimeSum / jobCount
	averageTurnAroundTime = turnAroundTimeSum / jobCount
	return
}
