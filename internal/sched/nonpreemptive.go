package sched

// SJF dispatches the arrived process with the shortest burst and runs it to
// completion. Ties go to the earlier arrival, then to the earlier position.
func SJF(set ProcessSet) Result {
	return runToCompletion(AlgorithmSJF, set, shorterBurst)
}

// Priority dispatches the arrived process with the lowest priority number
// and runs it to completion. There is no aging.
func Priority(set ProcessSet) Result {
	return runToCompletion(AlgorithmPriority, set, higherPriority)
}

// runToCompletion is the shared loop of the non-preemptive selection
// algorithms: pick the best ready process by less, run it, repeat.
func runToCompletion(alg Algorithm, set ProcessSet, less func(a, b *task) bool) Result {
	var (
		tasks    = newTasks(set)
		arrivals = byArrival(tasks)
		ready    = newReadyQueue(less)
		next     int
		done     int
		clock    int64
		tl       timeline
	)
	for done < len(tasks) {
		for next < len(arrivals) && arrivals[next].Arrival <= clock {
			ready.push(arrivals[next])
			next++
		}
		if ready.Len() == 0 {
			// idle until the next arrival
			clock = arrivals[next].Arrival
			continue
		}

		t := ready.pop()
		t.dispatch(clock)
		t.finish = clock + t.Burst
		t.remaining = 0
		tl.span(t.ID, clock, t.finish)
		clock = t.finish
		done++
	}

	return Result{
		Algorithm: alg,
		Entries:   entries(tasks),
		Segments:  tl.result(),
	}
}
