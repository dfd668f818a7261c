// Package sched simulates single-CPU process scheduling. It implements
// FCFS, non-preemptive SJF, non-preemptive priority dispatch, SRTF and
// Round-Robin as pure functions over a validated ProcessSet.
//
// Every algorithm builds its own scratch records from the read-only set, so
// results of different runs never share state and the set can be reused
// (or scheduled concurrently, see RunAll) without copying.
package sched
