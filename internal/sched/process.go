package sched

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// MaxHorizon bounds every simulated instant. A set is rejected when its
// latest arrival plus its total burst could pass it, which keeps all clock
// arithmetic far from int64 overflow and SRTF's unit ticks finite.
const MaxHorizon int64 = 1 << 24

// Process describes one job handed to the scheduler.
type Process struct {
	ID       string
	Burst    int64
	Arrival  int64
	Priority int64 // lower value wins
	Seq      int   // position in the set, assigned by NewProcessSet
}

// ProcessSet is an immutable, validated list of processes.
type ProcessSet struct {
	procs []Process
}

// NewProcessSet validates processes and returns a set that the algorithms
// can consume. All violations are reported at once.
func NewProcessSet(processes []Process) (ProcessSet, error) {
	if len(processes) == 0 {
		return ProcessSet{}, fmt.Errorf("%w: process set is empty", ErrInvalidInput)
	}

	var (
		errs  []error
		seen  = make(map[string]int, len(processes))
		procs = make([]Process, len(processes))

		latest, total int64
		inRange       = true
	)
	for i, p := range processes {
		p.Seq = i
		procs[i] = p

		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%w: process #%d: identifier is empty", ErrInvalidInput, i+1))
		} else if first, ok := seen[p.ID]; ok {
			errs = append(errs, fmt.Errorf("%w: process %q: duplicate identifier (first seen at #%d)", ErrInvalidInput, p.ID, first+1))
		} else {
			seen[p.ID] = i
		}
		if p.Burst <= 0 {
			errs = append(errs, fmt.Errorf("%w: process %q: burst must be positive, got %d", ErrInvalidInput, p.ID, p.Burst))
		}
		if p.Arrival < 0 {
			errs = append(errs, fmt.Errorf("%w: process %q: arrival must not be negative, got %d", ErrInvalidInput, p.ID, p.Arrival))
		}

		if p.Burst > MaxHorizon {
			errs = append(errs, fmt.Errorf("%w: process %q: burst must not exceed %d, got %d", ErrInvalidInput, p.ID, MaxHorizon, p.Burst))
			inRange = false
		}
		if p.Arrival > MaxHorizon {
			errs = append(errs, fmt.Errorf("%w: process %q: arrival must not exceed %d, got %d", ErrInvalidInput, p.ID, MaxHorizon, p.Arrival))
			inRange = false
		}
		if inRange && p.Burst > 0 {
			total += p.Burst
			latest = max(latest, p.Arrival)
		}
	}
	if inRange && latest+total > MaxHorizon {
		errs = append(errs, fmt.Errorf("%w: latest arrival %d plus total burst %d exceeds the horizon of %d", ErrInvalidInput, latest, total, MaxHorizon))
	}
	if len(errs) > 0 {
		return ProcessSet{}, errors.Join(errs...)
	}

	return ProcessSet{procs: procs}, nil
}

// Len returns the number of processes in the set.
func (s ProcessSet) Len() int { return len(s.procs) }

// Processes returns a copy of the processes in input order.
func (s ProcessSet) Processes() []Process {
	out := make([]Process, len(s.procs))
	copy(out, s.procs)
	return out
}

// TotalBurst is the CPU time the whole set needs.
func (s ProcessSet) TotalBurst() int64 {
	var total int64
	for _, p := range s.procs {
		total += p.Burst
	}
	return total
}

func validateQuantum(quantum int64) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", ErrInvalidInput, quantum)
	}
	return nil
}
