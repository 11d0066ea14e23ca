package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	BurstTime      int `json:"burst_time"`
	ArrivalTime    int `json:"arrival_time"`
	Priority       int `json:"priority"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
}

type GanttSlice struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
	Gantt                 []GanttSlice      `json:"gantt"`
}
