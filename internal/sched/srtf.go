package sched

// SRTF simulates shortest-remaining-time-first in unit ticks. At every tick
// the ready process with the least remaining time runs; ties go to the
// earlier arrival, then to the earlier position.
func SRTF(set ProcessSet) Result {
	var (
		tasks    = newTasks(set)
		arrivals = byArrival(tasks)
		ready    = newReadyQueue(lessRemaining)
		current  *task
		next     int
		done     int
		now      int64
		tl       timeline
	)
	for done < len(tasks) {
		for next < len(arrivals) && arrivals[next].Arrival <= now {
			ready.push(arrivals[next])
			next++
		}
		if ready.Len() == 0 {
			current = nil
			now = arrivals[next].Arrival
			continue
		}

		t := ready.peek()
		if t != current {
			tl.switchTo(t.ID, now)
			t.dispatch(now)
			current = t
		}
		t.remaining--
		now++

		if t.remaining == 0 {
			ready.pop()
			t.finish = now
			tl.close(now)
			current = nil
			done++
		} else {
			ready.fix(t)
		}
	}

	return Result{
		Algorithm:  AlgorithmSRTF,
		Preemptive: true,
		Entries:    entries(tasks),
		Segments:   tl.result(),
	}
}
