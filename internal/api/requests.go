package api

import "github.com/jar0582/procsched/internal/sched"

type (
	// ProcessRequest is one process of a ScheduleRequest.
	ProcessRequest struct {
		ProcessID   string `json:"process_id"`
		Burst       int64  `json:"burst"`
		ArrivalTime int64  `json:"arrival_time"`
		Priority    int64  `json:"priority"`
	}

	// ScheduleRequest is the body of every schedule endpoint. Quantum falls
	// back to the server default and Algorithms is only read by the
	// multi-algorithm endpoint.
	ScheduleRequest struct {
		Quantum    int64            `json:"quantum"`
		Algorithms []string         `json:"algorithms"`
		Processes  []ProcessRequest `json:"processes"`
	}
)

func (r ScheduleRequest) processSet() (sched.ProcessSet, error) {
	procs := make([]sched.Process, len(r.Processes))
	for i, p := range r.Processes {
		procs[i] = sched.Process{
			ID:       p.ProcessID,
			Burst:    p.Burst,
			Arrival:  p.ArrivalTime,
			Priority: p.Priority,
		}
	}
	return sched.NewProcessSet(procs)
}
