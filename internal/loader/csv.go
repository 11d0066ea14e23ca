package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cpu-scheduler/internal/core"
)

var ErrInvalidRow = errors.New("invalid job row")

// LoadJobs reads rows of burst,arrival[,priority]. Blank lines and lines
// starting with '#' are skipped; ids follow row order.
func LoadJobs(r io.Reader) ([]core.Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	specs := make([]core.JobSpec, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 2 or 3", ErrInvalidRow, i+1, len(row))
		}

		values := make([]int, 3)
		for j := range row {
			v, err := strconv.Atoi(strings.TrimSpace(row[j]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRow, i+1, err)
			}
			values[j] = v
		}
		specs = append(specs, core.JobSpec{
			BurstTime:   values[0],
			ArrivalTime: values[1],
			Priority:    values[2],
		})
	}

	return core.NewJobs(specs), nil
}

func LoadJobsFile(path string) ([]core.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening scheduling file", err)
	}
	defer f.Close()

	return LoadJobs(f)
}
