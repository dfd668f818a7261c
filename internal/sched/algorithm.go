package sched

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrUnknownAlgorithm is returned for algorithm names that are not supported.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm names a scheduling discipline.
type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "fcfs"
	AlgorithmSJF        Algorithm = "sjf"
	AlgorithmPriority   Algorithm = "priority"
	AlgorithmSRTF       Algorithm = "srtf"
	AlgorithmRoundRobin Algorithm = "rr"
)

// Algorithms lists every supported discipline in presentation order.
var Algorithms = []Algorithm{
	AlgorithmFCFS,
	AlgorithmSJF,
	AlgorithmPriority,
	AlgorithmSRTF,
	AlgorithmRoundRobin,
}

var titles = map[Algorithm]string{
	AlgorithmFCFS:       "First-come, first-serve",
	AlgorithmSJF:        "Shortest-job-first",
	AlgorithmPriority:   "Priority",
	AlgorithmSRTF:       "Shortest-remaining-time-first",
	AlgorithmRoundRobin: "Round-robin",
}

// Title is the human readable name of the algorithm.
func (a Algorithm) Title() string {
	if t, ok := titles[a]; ok {
		return t
	}
	return string(a)
}

// Preemptive reports whether the algorithm can suspend a running process.
func (a Algorithm) Preemptive() bool {
	return a == AlgorithmSRTF || a == AlgorithmRoundRobin
}

// ParseAlgorithm accepts the canonical names plus a few common aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "fifo":
		return AlgorithmFCFS, nil
	case "sjf":
		return AlgorithmSJF, nil
	case "priority", "prio":
		return AlgorithmPriority, nil
	case "srtf", "srt":
		return AlgorithmSRTF, nil
	case "rr", "round-robin", "roundrobin":
		return AlgorithmRoundRobin, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ParseAlgorithms parses a list of names, dropping duplicates.
func ParseAlgorithms(names []string) ([]Algorithm, error) {
	var (
		out  []Algorithm
		seen = make(map[Algorithm]bool)
	)
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		alg, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if !seen[alg] {
			seen[alg] = true
			out = append(out, alg)
		}
	}
	return out, nil
}

// Run executes a single algorithm. quantum is only read by Round-Robin.
func Run(alg Algorithm, set ProcessSet, quantum int64) (Result, error) {
	switch alg {
	case AlgorithmFCFS:
		return FCFS(set), nil
	case AlgorithmSJF:
		return SJF(set), nil
	case AlgorithmPriority:
		return Priority(set), nil
	case AlgorithmSRTF:
		return SRTF(set), nil
	case AlgorithmRoundRobin:
		return RoundRobin(set, quantum)
	}
	return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// RunAll executes the given algorithms concurrently over the same set and
// returns their results in the order requested. With no algorithms it runs
// all of them.
func RunAll(ctx context.Context, set ProcessSet, quantum int64, algs ...Algorithm) ([]Result, error) {
	if len(algs) == 0 {
		algs = Algorithms
	}
	for _, alg := range algs {
		if alg == AlgorithmRoundRobin {
			if err := validateQuantum(quantum); err != nil {
				return nil, err
			}
		}
	}

	results := make([]Result, len(algs))
	g, ctx := errgroup.WithContext(ctx)
	for i, alg := range algs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Run(alg, set, quantum)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
