package sched

// timeline assembles execution segments. A segment stays open while the
// same process keeps the CPU.
type timeline struct {
	segments []Segment
	open     bool
}

// span records a closed run [start, end) of id.
func (tl *timeline) span(id string, start, end int64) {
	if tl.open {
		panic("sched: span recorded while a segment is open")
	}
	tl.segments = append(tl.segments, Segment{ID: id, Start: start, End: end})
}

// switchTo closes the open segment, if any, and opens one for id at the given instant.
func (tl *timeline) switchTo(id string, at int64) {
	tl.close(at)
	tl.segments = append(tl.segments, Segment{ID: id, Start: at})
	tl.open = true
}

// close ends the open segment at the given instant.
func (tl *timeline) close(at int64) {
	if !tl.open {
		return
	}
	last := &tl.segments[len(tl.segments)-1]
	if at <= last.Start {
		panic("sched: empty segment for " + last.ID)
	}
	last.End = at
	tl.open = false
}

func (tl *timeline) result() []Segment {
	if tl.open {
		panic("sched: timeline still has an open segment")
	}
	return tl.segments
}
