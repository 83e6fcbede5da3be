package lattice

import "strconv"

// Interval is a member of the interval lattice over the integers extended
// with ±∞. Any interval consists of two bounds, `low` and `high`; the
// bottom element is represented as [∞, -∞].
type Interval struct {
	low  IntervalBound
	high IntervalBound
}

// MakeInterval creates an interval with possibly infinite bounds.
func MakeInterval(low, high IntervalBound) Interval {
	return Interval{low: low, high: high}
}

// FiniteInterval creates an interval with finite bounds.
func FiniteInterval(low, high int) Interval {
	return Interval{low: FiniteBound(low), high: FiniteBound(high)}
}

// IntervalBot creates the empty interval ⊥ = [∞, -∞].
func IntervalBot() Interval {
	return Interval{low: PlusInfinity{}, high: MinusInfinity{}}
}

// IntervalTop creates the unbounded interval ⊤ = [-∞, ∞].
func IntervalTop() Interval {
	return Interval{low: MinusInfinity{}, high: PlusInfinity{}}
}

func (e Interval) String() string {
	if e.IsBot() {
		return colorize.Element("⊥")
	}
	return "[" + e.low.String() + ", " + e.high.String() + "]"
}

// IsBot checks whether the interval is empty.
func (e Interval) IsBot() bool {
	return e.low.Gt(e.high)
}

// IsTop checks that the interval is equal to ⊤ = [-∞, ∞].
func (e Interval) IsTop() bool {
	return e == IntervalTop()
}

// Bounds unpacks the interval bounds. Querying the bounds of the empty
// interval is a bug, so it panics.
func (e Interval) Bounds() (low, high IntervalBound) {
	if e.IsBot() {
		panic("empty interval has no bounds")
	}
	return e.low, e.high
}

// Eq computes e1 = e2.
func (e1 Interval) Eq(e2 Interval) bool {
	return e1.Leq(e2) && e2.Leq(e1)
}

// Leq computes e1 ⊑ e2.
func (e1 Interval) Leq(e2 Interval) bool {
	if e1.IsBot() {
		return true
	}
	return e1.low.Geq(e2.low) && e1.high.Leq(e2.high)
}

// Join computes e1 ⊔ e2. The resulting interval takes the lowest of the
// lower bounds, and the highest of the upper bounds.
func (e1 Interval) Join(e2 Interval) Interval {
	switch {
	case e1.IsBot():
		return e2
	case e2.IsBot():
		return e1
	}

	var low, high IntervalBound
	if e1.low.Leq(e2.low) {
		low = e1.low
	} else {
		low = e2.low
	}
	if e1.high.Geq(e2.high) {
		high = e1.high
	} else {
		high = e2.high
	}
	return Interval{low: low, high: high}
}

// Meet computes e1 ⊓ e2.
func (e1 Interval) Meet(e2 Interval) Interval {
	switch {
	case e1.IsBot() || e2.IsBot(),
		e1.high.Lt(e2.low) || e2.high.Lt(e1.low):
		return IntervalBot()
	}

	var low, high IntervalBound
	if e1.low.Geq(e2.low) {
		low = e1.low
	} else {
		low = e2.low
	}
	if e1.high.Leq(e2.high) {
		high = e1.high
	} else {
		high = e2.high
	}
	return Interval{low: low, high: high}
}

// Widen computes e1 ∇ e2, where e1 is the previous approximation. A lower
// bound that decreased jumps to -∞, an upper bound that increased jumps to
// ∞. This caps every ascending chain at two widening steps.
func (e1 Interval) Widen(e2 Interval) Interval {
	switch {
	case e1.IsBot():
		return e2
	case e2.IsBot():
		return e1
	}

	low, high := e1.low, e1.high
	if e2.low.Lt(e1.low) {
		low = MinusInfinity{}
	}
	if e2.high.Gt(e1.high) {
		high = PlusInfinity{}
	}
	return Interval{low: low, high: high}
}

// Add translates both bounds of the interval by the given offset.
func (e Interval) Add(offset int) Interval {
	if e.IsBot() {
		return e
	}
	return Interval{
		low:  e.low.Plus(FiniteBound(offset)),
		high: e.high.Plus(FiniteBound(offset)),
	}
}

// IntervalBound is an interface implemented by all interval lattice bounds
// i.e., any FiniteBound value, PlusInfinity and MinusInfinity.
type IntervalBound interface {
	String() string

	// IsInfinite checks whether the interval bound is infinite.
	IsInfinite() bool

	// Eq checks for interval bound equality.
	Eq(IntervalBound) bool
	// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℤ.
	Leq(IntervalBound) bool
	// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℤ.
	Geq(IntervalBound) bool
	// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℤ.
	Lt(IntervalBound) bool
	// Gt computes b1 > b2. The semantics is ∞ > c > -∞, where c ∈ ℤ.
	Gt(IntervalBound) bool

	// Plus computes b1 + b2. Adding infinities of opposite signs panics.
	Plus(IntervalBound) IntervalBound
}

type (
	// FiniteBound is used to represent finite limits of an interval value.
	FiniteBound int
	// PlusInfinity represents ∞.
	PlusInfinity struct{}
	// MinusInfinity represents -∞.
	MinusInfinity struct{}
)

// IsInfinite is false for the finite bound.
func (FiniteBound) IsInfinite() bool {
	return false
}

func (b FiniteBound) String() string {
	return colorize.Bound(strconv.Itoa((int)(b)))
}

// Eq compares for equality with another bound. Two finite bounds
// are equal if their underlying values are equal.
func (b1 FiniteBound) Eq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 == b2
	}
	return false
}

// Leq computes b1 ≤ b2. The semantics is -∞ ≤ c ≤ ∞, where c ∈ ℤ.
func (b1 FiniteBound) Leq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 <= b2
	case PlusInfinity:
		return true
	}
	return false
}

// Geq computes b1 ≥ b2. The semantics is ∞ ≥ c ≥ -∞, where c ∈ ℤ.
func (b1 FiniteBound) Geq(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 >= b2
	case MinusInfinity:
		return true
	}
	return false
}

// Lt computes b1 < b2. The semantics is -∞ < c < ∞, where c ∈ ℤ.
func (b1 FiniteBound) Lt(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 < b2
	case PlusInfinity:
		return true
	}
	return false
}

// Gt computes b1 > b2. The semantics is ∞ > c > -∞, where c ∈ ℤ.
func (b1 FiniteBound) Gt(b2 IntervalBound) bool {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 > b2
	case MinusInfinity:
		return true
	}
	return false
}

// Plus computes b1 + b2.
func (b1 FiniteBound) Plus(b2 IntervalBound) IntervalBound {
	switch b2 := b2.(type) {
	case FiniteBound:
		return b1 + b2
	case PlusInfinity:
		return PlusInfinity{}
	case MinusInfinity:
		return MinusInfinity{}
	}
	return nil
}

// IsInfinite is true for ∞.
func (PlusInfinity) IsInfinite() bool {
	return true
}

func (PlusInfinity) String() string {
	return colorize.Bound("∞")
}

// Eq checks for equality with ∞.
func (PlusInfinity) Eq(b2 IntervalBound) bool {
	_, ok := b2.(PlusInfinity)
	return ok
}

// Leq computes ∞ ≤ b2, true only for b2 = ∞.
func (b1 PlusInfinity) Leq(b2 IntervalBound) bool {
	return b1.Eq(b2)
}

// Geq computes ∞ ≥ b2, which always holds.
func (PlusInfinity) Geq(IntervalBound) bool {
	return true
}

// Lt computes ∞ < b2, which never holds.
func (PlusInfinity) Lt(IntervalBound) bool {
	return false
}

// Gt computes ∞ > b2, true for any b2 ≠ ∞.
func (b1 PlusInfinity) Gt(b2 IntervalBound) bool {
	return !b1.Eq(b2)
}

// Plus computes ∞ + b2. Adding -∞ panics.
func (b1 PlusInfinity) Plus(b2 IntervalBound) IntervalBound {
	switch b2.(type) {
	case MinusInfinity:
		panic("∞ + -∞")
	}
	return b1
}

// IsInfinite is true for -∞.
func (MinusInfinity) IsInfinite() bool {
	return true
}

func (MinusInfinity) String() string {
	return colorize.Bound("-∞")
}

// Eq checks for equality with -∞.
func (MinusInfinity) Eq(b2 IntervalBound) bool {
	_, ok := b2.(MinusInfinity)
	return ok
}

// Leq computes -∞ ≤ b2, which always holds.
func (MinusInfinity) Leq(IntervalBound) bool {
	return true
}

// Geq computes -∞ ≥ b2, true only for b2 = -∞.
func (b1 MinusInfinity) Geq(b2 IntervalBound) bool {
	return b1.Eq(b2)
}

// Lt computes -∞ < b2, true for any b2 ≠ -∞.
func (b1 MinusInfinity) Lt(b2 IntervalBound) bool {
	return !b1.Eq(b2)
}

// Gt computes -∞ > b2, which never holds.
func (MinusInfinity) Gt(IntervalBound) bool {
	return false
}

// Plus computes -∞ + b2. Adding ∞ panics.
func (b1 MinusInfinity) Plus(b2 IntervalBound) IntervalBound {
	switch b2.(type) {
	case PlusInfinity:
		panic("-∞ + ∞")
	}
	return b1
}
