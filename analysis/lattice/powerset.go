package lattice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Set is a member of the powerset lattice over elements of type T. The
// join is set union and the partial order is set inclusion. Powersets over
// a finite universe have finite height, so widening falls back to the
// join; *possible* dataflow domains are instances of this lattice.
type Set[T any] struct {
	mp *immutable.Map[T, struct{}]
}

// MakeSet creates a powerset element containing the given elements. The
// hasher may be nil for key types hashable by the immutable package.
func MakeSet[T any](hasher immutable.Hasher[T], elements ...T) Set[T] {
	b := immutable.NewMapBuilder[T, struct{}](hasher)
	for _, x := range elements {
		b.Set(x, struct{}{})
	}
	return Set[T]{mp: b.Map()}
}

// Add returns a set extended with the given element.
func (e Set[T]) Add(x T) Set[T] {
	return Set[T]{mp: e.mp.Set(x, struct{}{})}
}

// Remove returns a set with the given element removed.
func (e Set[T]) Remove(x T) Set[T] {
	return Set[T]{mp: e.mp.Delete(x)}
}

// Contains checks for membership of the given element.
func (e Set[T]) Contains(x T) bool {
	_, found := e.mp.Get(x)
	return found
}

// Size returns the cardinality of the set.
func (e Set[T]) Size() int {
	return e.mp.Len()
}

// All returns the elements of the set in unspecified order.
func (e Set[T]) All() []T {
	res := make([]T, 0, e.mp.Len())
	itr := e.mp.Iterator()
	for !itr.Done() {
		x, _, _ := itr.Next()
		res = append(res, x)
	}
	return res
}

// ForEach calls do on every element of the set.
func (e Set[T]) ForEach(do func(x T)) {
	itr := e.mp.Iterator()
	for !itr.Done() {
		x, _, _ := itr.Next()
		do(x)
	}
}

// Filter returns the subset of elements satisfying the predicate.
func (e Set[T]) Filter(pred func(x T) bool) Set[T] {
	res := e.mp
	itr := e.mp.Iterator()
	for !itr.Done() {
		x, _, _ := itr.Next()
		if !pred(x) {
			res = res.Delete(x)
		}
	}
	return Set[T]{mp: res}
}

// Leq computes e1 ⊑ e2, i.e. set inclusion.
func (e1 Set[T]) Leq(e2 Set[T]) bool {
	if e1.mp.Len() > e2.mp.Len() {
		return false
	}
	itr := e1.mp.Iterator()
	for !itr.Done() {
		x, _, _ := itr.Next()
		if !e2.Contains(x) {
			return false
		}
	}
	return true
}

// Eq computes e1 = e2.
func (e1 Set[T]) Eq(e2 Set[T]) bool {
	return e1.mp.Len() == e2.mp.Len() && e1.Leq(e2)
}

// Join computes e1 ⊔ e2, i.e. set union.
func (e1 Set[T]) Join(e2 Set[T]) Set[T] {
	if e1.mp.Len() < e2.mp.Len() {
		e1, e2 = e2, e1
	}
	res := e1.mp
	itr := e2.mp.Iterator()
	for !itr.Done() {
		x, _, _ := itr.Next()
		res = res.Set(x, struct{}{})
	}
	return Set[T]{mp: res}
}

// Meet computes e1 ⊓ e2, i.e. set intersection.
func (e1 Set[T]) Meet(e2 Set[T]) Set[T] {
	if e1.mp.Len() > e2.mp.Len() {
		e1, e2 = e2, e1
	}
	res := e1.mp
	itr := e1.mp.Iterator()
	for !itr.Done() {
		x, _, _ := itr.Next()
		if !e2.Contains(x) {
			res = res.Delete(x)
		}
	}
	return Set[T]{mp: res}
}

// Widen computes e1 ∇ e2. Powersets over a finite universe have finite
// height, so widening falls back to the join.
func (e1 Set[T]) Widen(e2 Set[T]) Set[T] {
	return e1.Join(e2)
}

func (e Set[T]) String() string {
	strs := make([]string, 0, e.mp.Len())
	itr := e.mp.Iterator()
	for !itr.Done() {
		x, _, _ := itr.Next()
		strs = append(strs, fmt.Sprintf("%v", x))
	}
	sort.Strings(strs)
	return colorize.Element("{") + strings.Join(strs, ", ") + colorize.Element("}")
}
