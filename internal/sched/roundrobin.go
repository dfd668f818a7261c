package sched

// RoundRobin time-slices the CPU with a fixed quantum over a FIFO ready
// queue. Processes that arrive while a slice runs are queued before the
// preempted process goes back to the tail.
func RoundRobin(set ProcessSet, quantum int64) (Result, error) {
	if err := validateQuantum(quantum); err != nil {
		return Result{}, err
	}

	var (
		tasks    = newTasks(set)
		arrivals = byArrival(tasks)
		queue    = make([]*task, 0, len(tasks))
		next     int
		done     int
		now      int64
		tl       timeline
	)
	admit := func() {
		for next < len(arrivals) && arrivals[next].Arrival <= now {
			queue = append(queue, arrivals[next])
			next++
		}
	}

	for done < len(tasks) {
		admit()
		if len(queue) == 0 {
			now = arrivals[next].Arrival
			continue
		}

		t := queue[0]
		queue = queue[1:]
		t.dispatch(now)

		slice := min(quantum, t.remaining)
		tl.span(t.ID, now, now+slice)
		now += slice
		t.remaining -= slice

		if t.remaining == 0 {
			t.finish = now
			done++
			continue
		}
		admit()
		queue = append(queue, t)
	}

	return Result{
		Algorithm:  AlgorithmRoundRobin,
		Quantum:    quantum,
		Preemptive: true,
		Entries:    entries(tasks),
		Segments:   tl.result(),
	}, nil
}
