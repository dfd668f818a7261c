package sched

import (
	"fmt"
	"sort"
)

type (
	// Entry is the outcome for one process in one run.
	Entry struct {
		ID         string
		Seq        int
		Burst      int64
		Arrival    int64
		Priority   int64
		Start      int64 // first dispatch
		Finish     int64
		Waiting    int64
		Turnaround int64
		Response   int64
	}

	// Segment is a half-open interval [Start, End) during which ID held the CPU.
	Segment struct {
		ID    string
		Start int64
		End   int64
	}

	// Result is everything one algorithm run produces.
	Result struct {
		Algorithm  Algorithm
		Quantum    int64 // Round-Robin only
		Preemptive bool
		Entries    []Entry   // ascending Seq
		Segments   []Segment // ascending Start
	}
)

// Duration of the segment.
func (s Segment) Duration() int64 { return s.End - s.Start }

// Heading names the run, including the quantum for Round-Robin.
func (r Result) Heading() string {
	if r.Algorithm == AlgorithmRoundRobin {
		return fmt.Sprintf("%s (quantum %d)", r.Algorithm.Title(), r.Quantum)
	}
	return r.Algorithm.Title()
}

// Entry looks up the entry of the process with the given identifier.
func (r Result) Entry(id string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// SegmentsOf returns the segments owned by id in time order.
func (r Result) SegmentsOf(id string) []Segment {
	var out []Segment
	for _, s := range r.Segments {
		if s.ID == id {
			out = append(out, s)
		}
	}
	return out
}

// ByStart returns the entries ordered by first dispatch, ties on Seq.
func (r Result) ByStart() []Entry {
	out := make([]Entry, len(r.Entries))
	copy(out, r.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}
