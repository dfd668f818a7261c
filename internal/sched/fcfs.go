package sched

// FCFS runs processes in arrival order, each to completion.
func FCFS(set ProcessSet) Result {
	tasks := newTasks(set)

	var (
		clock int64
		tl    timeline
	)
	for _, t := range byArrival(tasks) {
		if clock < t.Arrival {
			clock = t.Arrival
		}
		t.dispatch(clock)
		t.finish = clock + t.Burst
		t.remaining = 0
		tl.span(t.ID, clock, t.finish)
		clock = t.finish
	}

	return Result{
		Algorithm: AlgorithmFCFS,
		Entries:   entries(tasks),
		Segments:  tl.result(),
	}
}
