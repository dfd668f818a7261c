package report

import (
	"encoding/json"
	"io"

	"github.com/jar0582/procsched/internal/sched"
)

type (
	// ProcessResponse is the per-process part of a ScheduleResponse.
	ProcessResponse struct {
		ProcessID      string `json:"process_id"`
		Burst          int64  `json:"burst"`
		ArrivalTime    int64  `json:"arrival_time"`
		Priority       int64  `json:"priority"`
		StartTime      int64  `json:"start_time"`
		FinishTime     int64  `json:"finish_time"`
		WaitingTime    int64  `json:"waiting_time"`
		TurnAroundTime int64  `json:"turn_around_time"`
		ResponseTime   int64  `json:"response_time"`
	}

	// SegmentResponse is one execution interval.
	SegmentResponse struct {
		ProcessID string `json:"process_id"`
		Start     int64  `json:"start"`
		End       int64  `json:"end"`
	}

	// ScheduleResponse is the machine readable form of a sched.Result.
	ScheduleResponse struct {
		Algorithm             string            `json:"algorithm"`
		Quantum               int64             `json:"quantum,omitempty"`
		Preemptive            bool              `json:"preemptive"`
		TotalTime             int64             `json:"total_time"`
		IdleTime              int64             `json:"idle_time"`
		AverageWaitingTime    float64           `json:"average_waiting_time"`
		AverageResponseTime   float64           `json:"average_response_time"`
		AverageTurnAroundTime float64           `json:"average_turn_around_time"`
		CpuUtilization        float64           `json:"cpu_utilization"`
		CpuThroughput         float64           `json:"cpu_throughput"`
		Details               []ProcessResponse `json:"details"`
		Timeline              []SegmentResponse `json:"timeline"`
	}
)

// NewScheduleResponse converts a result into its JSON form.
func NewScheduleResponse(r sched.Result) ScheduleResponse {
	s := sched.Summarize(r)
	resp := ScheduleResponse{
		Algorithm:             string(r.Algorithm),
		Quantum:               r.Quantum,
		Preemptive:            r.Preemptive,
		TotalTime:             s.Makespan,
		IdleTime:              s.IdleTime,
		AverageWaitingTime:    s.AvgWaiting,
		AverageResponseTime:   s.AvgResponse,
		AverageTurnAroundTime: s.AvgTurnaround,
		CpuUtilization:        s.Utilization,
		CpuThroughput:         s.Throughput,
		Details:               make([]ProcessResponse, len(r.Entries)),
		Timeline:              make([]SegmentResponse, len(r.Segments)),
	}
	for i, e := range r.Entries {
		resp.Details[i] = ProcessResponse{
			ProcessID:      e.ID,
			Burst:          e.Burst,
			ArrivalTime:    e.Arrival,
			Priority:       e.Priority,
			StartTime:      e.Start,
			FinishTime:     e.Finish,
			WaitingTime:    e.Waiting,
			TurnAroundTime: e.Turnaround,
			ResponseTime:   e.Response,
		}
	}
	for i, seg := range r.Segments {
		resp.Timeline[i] = SegmentResponse{ProcessID: seg.ID, Start: seg.Start, End: seg.End}
	}
	return resp
}

// NewScheduleResponses converts every result, keeping their order.
func NewScheduleResponses(results []sched.Result) []ScheduleResponse {
	out := make([]ScheduleResponse, len(results))
	for i, r := range results {
		out[i] = NewScheduleResponse(r)
	}
	return out
}

// WriteJSON writes the results as an indented JSON array.
func WriteJSON(w io.Writer, results ...sched.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewScheduleResponses(results))
}
