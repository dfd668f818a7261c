package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jar0582/procsched/internal/sched"
)

func threeSet(t *testing.T) sched.ProcessSet {
	t.Helper()
	set, err := sched.NewProcessSet([]sched.Process{
		{ID: "P1", Burst: 2, Arrival: 0},
		{ID: "P2", Burst: 6, Arrival: 1},
		{ID: "P3", Burst: 6, Arrival: 2},
	})
	require.NoError(t, err)
	return set
}

func TestSlots_FillsIdleGaps(t *testing.T) {
	got := slots([]sched.Segment{{ID: "P1", Start: 2, End: 4}, {ID: "P2", Start: 4, End: 5}, {ID: "P1", Start: 7, End: 8}})

	assert.Equal(t, []ganttSlot{
		{label: "idle", start: 0, stop: 2},
		{label: "P1", start: 2, stop: 4},
		{label: "P2", start: 4, stop: 5},
		{label: "idle", start: 5, stop: 7},
		{label: "P1", start: 7, stop: 8},
	}, got)
}

func TestWriteTable(t *testing.T) {
	rr, err := sched.RoundRobin(threeSet(t), 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteTable(&buf, sched.FCFS(threeSet(t)), rr)
	out := buf.String()

	assert.Contains(t, out, "First-come, first-serve")
	assert.Contains(t, out, "Round-robin (quantum 3)")
	assert.Contains(t, out, strings.Repeat("=", titleWidth)+"\n")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "|   P1   |   P2   |   P3   |")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "Waiting and turnaround times")
	assert.Contains(t, out, "2.33") // FCFS average waiting
	assert.Contains(t, out, "Average")
	assert.Contains(t, out, "CPU utilisation 100.0%, idle 0, makespan 14")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sched.FCFS(threeSet(t))))

	var got []ScheduleResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)

	resp := got[0]
	assert.Equal(t, "fcfs", resp.Algorithm)
	assert.Equal(t, int64(14), resp.TotalTime)
	assert.InDelta(t, 7.0, resp.AverageTurnAroundTime, 1e-9)
	assert.Equal(t, ProcessResponse{
		ProcessID: "P3", Burst: 6, ArrivalTime: 2, StartTime: 8, FinishTime: 14,
		WaitingTime: 6, TurnAroundTime: 12, ResponseTime: 6,
	}, resp.Details[2])
	assert.Equal(t, SegmentResponse{ProcessID: "P2", Start: 2, End: 8}, resp.Timeline[1])
	assert.NotContains(t, buf.String(), "quantum")
}
