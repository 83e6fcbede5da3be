package lattice

import (
	"fmt"

	"github.com/seml-dk/ibex/utils"

	"github.com/fatih/color"
)

var colorize = struct {
	Element func(...interface{}) string
	Const   func(...interface{}) string
	Key     func(...interface{}) string
	Bound   func(...interface{}) string
}{
	Element: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgCyan).SprintFunc())(is...)
	},
	Const: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiWhite).SprintFunc())(is...)
	},
	Key: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgYellow).SprintFunc())(is...)
	},
	Bound: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
}

// Element is the capability set required of abstract states consumed by the
// fixpoint engine. Implementations must satisfy the usual lattice laws:
// Join is commutative, associative and idempotent with respect to Eq, Leq
// is the partial order it induces, and Widen is an upper bound operator
// such that any ascending chain interspersed with widening stabilizes after
// finitely many steps.
type Element[E any] interface {
	// Leq computes e ⊑ other.
	Leq(other E) bool
	// Eq computes e = other.
	Eq(other E) bool
	// Join computes the least upper bound e ⊔ other.
	Join(other E) E
	// Widen computes e ∇ next, where e is the previous approximation and
	// next the following one. The result is an upper bound of both.
	Widen(next E) E

	fmt.Stringer
}

// A Store is a functional lattice mapping inner nodes of type N to abstract
// states of type S. Beyond the element operations, inherited pointwise, it
// supports enumeration of its bindings.
type Store[N, S, F any] interface {
	Element[F]

	// ForEach calls do on every binding of the store.
	ForEach(do func(key N, state S))
}
