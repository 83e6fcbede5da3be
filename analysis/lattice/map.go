package lattice

import (
	"fmt"
	"sort"
	"strings"

	"github.com/benbjohnson/immutable"
)

// Map is a member of the functional lattice with keys of type K and values
// in the lattice of E. All lattice operations are lifted pointwise; a key
// without a binding is read as bottom. Bindings should therefore never map
// a key to a bottom value — use Remove instead.
//
// Map is the store type used by the fixpoint engine to carry results for
// inner nodes nested within outer graph nodes.
type Map[K any, E Element[E]] struct {
	mp *immutable.Map[K, E]
}

// MakeMap creates an empty functional lattice element. The hasher may be
// nil for key types hashable by the immutable package.
func MakeMap[K any, E Element[E]](hasher immutable.Hasher[K]) Map[K, E] {
	return Map[K, E]{mp: immutable.NewMap[K, E](hasher)}
}

// Get retrieves the value bound at the given key, if any.
func (e Map[K, E]) Get(x K) (E, bool) {
	return e.mp.Get(x)
}

// GetOr retrieves the value bound at the given key, falling back to the
// provided default.
func (e Map[K, E]) GetOr(x K, def E) E {
	if v, found := e.mp.Get(x); found {
		return v
	}
	return def
}

// Update returns a map with an updated binding for the given key.
func (e Map[K, E]) Update(x K, v E) Map[K, E] {
	return Map[K, E]{mp: e.mp.Set(x, v)}
}

// Remove returns a map without a binding for the given key.
func (e Map[K, E]) Remove(x K) Map[K, E] {
	return Map[K, E]{mp: e.mp.Delete(x)}
}

// Len returns the number of bindings.
func (e Map[K, E]) Len() int {
	return e.mp.Len()
}

// ForEach calls do on every binding of the map.
func (e Map[K, E]) ForEach(do func(key K, state E)) {
	itr := e.mp.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		do(k, v)
	}
}

// Leq computes e1 ⊑ e2 pointwise.
func (e1 Map[K, E]) Leq(e2 Map[K, E]) bool {
	itr := e1.mp.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		v2, found := e2.mp.Get(k)
		if !found || !v.Leq(v2) {
			return false
		}
	}
	return true
}

// Eq computes e1 = e2 pointwise.
func (e1 Map[K, E]) Eq(e2 Map[K, E]) bool {
	return e1.mp.Len() == e2.mp.Len() && e1.Leq(e2) && e2.Leq(e1)
}

// Join computes e1 ⊔ e2 pointwise: bindings present on both sides are
// joined, bindings present on one side are kept.
func (e1 Map[K, E]) Join(e2 Map[K, E]) Map[K, E] {
	res := e1.mp
	itr := e2.mp.Iterator()
	for !itr.Done() {
		k, v2, _ := itr.Next()
		if v1, found := res.Get(k); found {
			res = res.Set(k, v1.Join(v2))
		} else {
			res = res.Set(k, v2)
		}
	}
	return Map[K, E]{mp: res}
}

// Widen computes e1 ∇ e2 pointwise, where e1 is the previous
// approximation: bindings present on both sides are widened, bindings
// present on one side are kept.
func (e1 Map[K, E]) Widen(e2 Map[K, E]) Map[K, E] {
	res := e1.mp
	itr := e2.mp.Iterator()
	for !itr.Done() {
		k, v2, _ := itr.Next()
		if v1, found := res.Get(k); found {
			res = res.Set(k, v1.Widen(v2))
		} else {
			res = res.Set(k, v2)
		}
	}
	return Map[K, E]{mp: res}
}

func (e Map[K, E]) String() string {
	strs := make([]string, 0, e.mp.Len())
	itr := e.mp.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		strs = append(strs, fmt.Sprintf("%s ↦ %s", colorize.Key(fmt.Sprintf("%v", k)), v))
	}
	if len(strs) == 0 {
		return "[]"
	}
	sort.Strings(strs)
	return "[" + strings.Join(strs, ", ") + "]"
}
