package sched

// Summary holds the aggregate statistics of one run.
type Summary struct {
	Processes     int
	AvgWaiting    float64
	AvgTurnaround float64
	AvgResponse   float64
	Makespan      int64 // last finish
	BusyTime      int64
	IdleTime      int64
	Utilization   float64 // busy / makespan
	Throughput    float64 // processes per time unit
	Dispatches    int
}

// Summarize derives the aggregate statistics of r.
func Summarize(r Result) Summary {
	s := Summary{Processes: len(r.Entries)}
	if s.Processes == 0 {
		return s
	}

	var wait, turnaround, response int64
	for _, e := range r.Entries {
		wait += e.Waiting
		turnaround += e.Turnaround
		response += e.Response
		s.BusyTime += e.Burst
		if e.Finish > s.Makespan {
			s.Makespan = e.Finish
		}
	}

	n := float64(s.Processes)
	s.AvgWaiting = float64(wait) / n
	s.AvgTurnaround = float64(turnaround) / n
	s.AvgResponse = float64(response) / n
	s.IdleTime = s.Makespan - s.BusyTime
	if s.Makespan > 0 {
		s.Utilization = float64(s.BusyTime) / float64(s.Makespan)
		s.Throughput = n / float64(s.Makespan)
	}
	s.Dispatches = len(r.Segments)
	return s
}
