package sched

import "container/heap"

// readyQueue is a min-heap of tasks ordered by less.
type readyQueue struct {
	items []*task
	less  func(a, b *task) bool
}

func newReadyQueue(less func(a, b *task) bool) *readyQueue {
	q := &readyQueue{less: less}
	heap.Init(q)
	return q
}

func (q readyQueue) Len() int { return len(q.items) }

func (q readyQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }

func (q readyQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

func (q *readyQueue) Push(x any) {
	t := x.(*task)
	t.index = len(q.items)
	q.items = append(q.items, t)
}

func (q *readyQueue) Pop() any {
	old := q.items
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	q.items = old[:n-1]
	return t
}

func (q *readyQueue) push(t *task) { heap.Push(q, t) }

func (q *readyQueue) pop() *task { return heap.Pop(q).(*task) }

// peek returns the minimum without removing it.
func (q *readyQueue) peek() *task { return q.items[0] }

// fix restores heap order after t's key changed.
func (q *readyQueue) fix(t *task) { heap.Fix(q, t.index) }

// Selection keys. Every key falls back to arrival and then to Seq, which
// makes the order total and the algorithms deterministic.

func shorterBurst(a, b *task) bool {
	if a.Burst != b.Burst {
		return a.Burst < b.Burst
	}
	return earlierArrival(a, b)
}

func higherPriority(a, b *task) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return earlierArrival(a, b)
}

func lessRemaining(a, b *task) bool {
	if a.remaining != b.remaining {
		return a.remaining < b.remaining
	}
	return earlierArrival(a, b)
}

func earlierArrival(a, b *task) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Seq < b.Seq
}
