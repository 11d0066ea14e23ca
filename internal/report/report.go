package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

// job ids start at 1, so 0 marks an idle stretch of the cpu
const idleCell = 0

// Render writes the title, Gantt chart and schedule table of one run.
func Render(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, response.Algorithm)
	outputGantt(w, response.Gantt)
	outputSchedule(w, response)
}

// RenderComparison writes one summary row per algorithm.
func RenderComparison(w io.Writer, all []responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Utilization", "Throughput"})
	for _, r := range all {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.CpuThroughput),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt prints one cell per slice; idle gaps get a "-" cell.
func outputGantt(w io.Writer, gantt []responses.GanttSlice) {
	cells := make([]responses.GanttSlice, 0, len(gantt))
	clock := 0
	for _, slice := range gantt {
		if slice.Start > clock {
			cells = append(cells, responses.GanttSlice{ProcessId: idleCell, Start: clock, Stop: slice.Start})
		}
		cells = append(cells, slice)
		clock = slice.Stop
	}

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range cells {
		label := fmt.Sprint(cells[i].ProcessId)
		if cells[i].ProcessId == idleCell {
			label = "-"
		}
		padding := strings.Repeat(" ", (8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range cells {
		_, _ = fmt.Fprint(w, fmt.Sprint(cells[i].Start), "\t")
		if len(cells)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(cells[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, len(response.Details))
	for i, d := range response.Details {
		rows[i] = []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
}
