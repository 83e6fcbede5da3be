package worklist

import "fmt"

// New creates a working set of the given kind: "fifo", "lifo" or
// "priority". Priority working sets require a rank function; the other
// kinds ignore it.
func New[T comparable](kind string, rank func(T) int) (WorkingSet[T], error) {
	switch kind {
	case "", "fifo":
		return Empty[T](), nil
	case "lifo":
		return EmptyStack[T](), nil
	case "priority":
		if rank == nil {
			return nil, fmt.Errorf("a priority working set requires a rank function")
		}
		return Prioritized(rank), nil
	default:
		return nil, fmt.Errorf("unknown working set kind %q", kind)
	}
}
