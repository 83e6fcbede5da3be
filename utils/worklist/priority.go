package worklist

import "github.com/seml-dk/ibex/utils/pq"

// Priority is a working set popping elements in order of a caller-supplied
// priority function, lowest rank first. Elements already pending are not
// enqueued twice.
type Priority[T comparable] struct {
	queue pq.PriorityQueue[T]
}

// Prioritized creates a priority working set. The rank function is
// consulted on every comparison, so changes in rank for elements not yet
// queued take effect immediately.
func Prioritized[T comparable](rank func(T) int) *Priority[T] {
	w := &Priority[T]{}
	w.queue = pq.Empty(func(a, b T) bool {
		return rank(a) < rank(b)
	})
	return w
}

func (w *Priority[T]) Add(el T) {
	w.queue.Add(el)
}

func (w *Priority[T]) GetNext() T {
	return w.queue.GetNext()
}

func (w *Priority[T]) IsEmpty() bool {
	return w.queue.IsEmpty()
}
