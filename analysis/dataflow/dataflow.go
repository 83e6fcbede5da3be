package dataflow

import (
	"fmt"

	L "github.com/seml-dk/ibex/analysis/lattice"
	"github.com/seml-dk/ibex/utils"
)

// A Definition is a dataflow fact recording that a variable may hold the
// value produced by the assignment at a given program point.
type Definition struct {
	Var string
	At  string
}

func (d Definition) String() string {
	return fmt.Sprintf("%s@%s", d.Var, d.At)
}

// Domain is a forward *possible* dataflow domain: a set of definition
// facts whose join is set union. An assignment to a variable kills every
// fact for that variable and generates a fresh one.
type Domain struct {
	facts L.Set[Definition]
}

// Empty creates a domain with no facts, the bottom of the lattice.
func Empty() Domain {
	return Domain{facts: L.MakeSet[Definition](utils.CompHasher[Definition]{})}
}

// Assign kills every fact for the given variable and generates the fact
// recording the assignment at the given program point.
func (d Domain) Assign(variable, at string) Domain {
	killed := d.facts.Filter(func(f Definition) bool {
		return f.Var != variable
	})
	return Domain{facts: killed.Add(Definition{Var: variable, At: at})}
}

// Forget drops every fact for the given variable.
func (d Domain) Forget(variable string) Domain {
	return Domain{facts: d.facts.Filter(func(f Definition) bool {
		return f.Var != variable
	})}
}

// Facts returns the definition facts in unspecified order.
func (d Domain) Facts() []Definition {
	return d.facts.All()
}

// DefinitionsOf returns the facts recorded for the given variable.
func (d Domain) DefinitionsOf(variable string) []Definition {
	var res []Definition
	d.facts.ForEach(func(f Definition) {
		if f.Var == variable {
			res = append(res, f)
		}
	})
	return res
}

// Leq computes d1 ⊑ d2.
func (d1 Domain) Leq(d2 Domain) bool {
	return d1.facts.Leq(d2.facts)
}

// Eq computes d1 = d2.
func (d1 Domain) Eq(d2 Domain) bool {
	return d1.facts.Eq(d2.facts)
}

// Join computes d1 ⊔ d2, the union of the fact sets.
func (d1 Domain) Join(d2 Domain) Domain {
	return Domain{facts: d1.facts.Join(d2.facts)}
}

// Widen computes d1 ∇ d2. The fact universe of a single graph is finite,
// so widening falls back to the join.
func (d1 Domain) Widen(d2 Domain) Domain {
	return Domain{facts: d1.facts.Widen(d2.facts)}
}

func (d Domain) String() string {
	return d.facts.String()
}
