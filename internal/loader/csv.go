package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jar0582/procsched/internal/sched"
)

var csvFields = []string{"id", "burst", "arrival", "priority"}

// ReadCSV parses "id,burst,arrival[,priority]" rows.
func ReadCSV(r io.Reader) ([]sched.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		procs []sched.Process
		first = true
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV: %w", ErrInvalidFile, err)
		}
		line, _ := reader.FieldPos(0)

		if first && isHeader(row) {
			first = false
			continue
		}
		first = false

		p, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidFile, line, err)
		}
		procs = append(procs, p)
	}
	return procs, nil
}

func isHeader(row []string) bool {
	head := strings.ToLower(strings.TrimSpace(row[0]))
	return head == "id" || head == "process" || head == "pid"
}

func parseRow(row []string) (sched.Process, error) {
	if len(row) != 3 && len(row) != 4 {
		return sched.Process{}, fmt.Errorf("want 3 or 4 fields (%s), got %d", strings.Join(csvFields, ","), len(row))
	}

	p := sched.Process{ID: strings.TrimSpace(row[0])}
	targets := []*int64{&p.Burst, &p.Arrival, &p.Priority}
	for i, field := range row[1:] {
		n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return sched.Process{}, fmt.Errorf("%s %q is not an integer", csvFields[i+1], field)
		}
		*targets[i] = n
	}
	return p, nil
}
