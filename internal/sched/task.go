package sched

import "sort"

// task is the private per-run scratch record of a process.
type task struct {
	Process
	remaining int64
	started   bool
	start     int64
	finish    int64
	index     int // position in a readyQueue
}

// newTasks builds fresh scratch records for every process of the set.
func newTasks(set ProcessSet) []*task {
	tasks := make([]*task, len(set.procs))
	for i, p := range set.procs {
		tasks[i] = &task{Process: p, remaining: p.Burst, index: -1}
	}
	return tasks
}

// byArrival returns tasks ordered by arrival, stable on Seq.
func byArrival(tasks []*task) []*task {
	out := make([]*task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Arrival != out[j].Arrival {
			return out[i].Arrival < out[j].Arrival
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

func (t *task) dispatch(at int64) {
	if !t.started {
		t.started = true
		t.start = at
	}
}

// entry derives the timing metrics of a finished task.
func (t *task) entry() Entry {
	turnaround := t.finish - t.Arrival
	return Entry{
		ID:         t.ID,
		Seq:        t.Seq,
		Burst:      t.Burst,
		Arrival:    t.Arrival,
		Priority:   t.Priority,
		Start:      t.start,
		Finish:     t.finish,
		Waiting:    turnaround - t.Burst,
		Turnaround: turnaround,
		Response:   t.start - t.Arrival,
	}
}

// entries returns the entries of tasks in Seq order. tasks must be the slice
// returned by newTasks.
func entries(tasks []*task) []Entry {
	out := make([]Entry, len(tasks))
	for i, t := range tasks {
		if t.remaining != 0 {
			panic("sched: task " + t.ID + " left unfinished")
		}
		out[i] = t.entry()
	}
	return out
}
