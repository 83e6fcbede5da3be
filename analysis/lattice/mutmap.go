package lattice

import "github.com/benbjohnson/immutable"

// A MutMap is a mutable cell holding a functional map element. It
// satisfies the same lattice contract as Map through the cell, and exists
// for semantic functions that populate inner-node results by side effect:
// the fixpoint engine hands a fresh cell to every semantic computation and
// afterwards treats it as a lattice value.
type MutMap[K any, E Element[E]] struct {
	m Map[K, E]
}

// MakeMutMap creates an empty mutable store cell. The hasher may be nil
// for key types hashable by the immutable package.
func MakeMutMap[K any, E Element[E]](hasher immutable.Hasher[K]) *MutMap[K, E] {
	return &MutMap[K, E]{m: MakeMap[K, E](hasher)}
}

// Put binds the given key in place.
func (s *MutMap[K, E]) Put(x K, v E) {
	s.m = s.m.Update(x, v)
}

// Get retrieves the value bound at the given key, if any.
func (s *MutMap[K, E]) Get(x K) (E, bool) {
	return s.m.Get(x)
}

// Len returns the number of bindings.
func (s *MutMap[K, E]) Len() int {
	return s.m.Len()
}

// Snapshot returns the current contents as an immutable map element.
func (s *MutMap[K, E]) Snapshot() Map[K, E] {
	return s.m
}

// ForEach calls do on every binding of the store.
func (s *MutMap[K, E]) ForEach(do func(key K, state E)) {
	s.m.ForEach(do)
}

// Leq computes s1 ⊑ s2 pointwise.
func (s1 *MutMap[K, E]) Leq(s2 *MutMap[K, E]) bool {
	return s1.m.Leq(s2.m)
}

// Eq computes s1 = s2 pointwise.
func (s1 *MutMap[K, E]) Eq(s2 *MutMap[K, E]) bool {
	return s1.m.Eq(s2.m)
}

// Join computes s1 ⊔ s2 pointwise into a fresh cell.
func (s1 *MutMap[K, E]) Join(s2 *MutMap[K, E]) *MutMap[K, E] {
	return &MutMap[K, E]{m: s1.m.Join(s2.m)}
}

// Widen computes s1 ∇ s2 pointwise into a fresh cell, where s1 holds the
// previous approximation.
func (s1 *MutMap[K, E]) Widen(s2 *MutMap[K, E]) *MutMap[K, E] {
	return &MutMap[K, E]{m: s1.m.Widen(s2.m)}
}

func (s *MutMap[K, E]) String() string {
	return s.m.String()
}
