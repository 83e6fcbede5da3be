package graph

// A DAG decomposition of a graph based on strongly connected components.
// The nodes in component i are guaranteed to only have edges to nodes in
// components with index j <= i.
type SCCDecomposition[T any] struct {
	Components [][]T
	comp       Mapper[T]
	Original   Graph[T]
}

// An alias for component type (in case representation changes)
type SCC = int

// ComponentOf returns the index of the component the node is a part of,
// or -1 if the node was not reachable during decomposition.
func (scc SCCDecomposition[T]) ComponentOf(node T) SCC {
	if comp, hasComp := scc.comp.Get(node); hasComp {
		return comp.(int)
	}

	return -1
}

// SCC computes the strongly connected components of the subgraph reachable
// from the provided start nodes.
func (G Graph[T]) SCC(startNodes []T) SCCDecomposition[T] {
	// Recursive Tarjan variant; see
	// https://github.com/kth-competitive-programming/kactl/blob/main/content/graph/SCC.h

	val, comp := G.mapFactory(), G.mapFactory()
	time := 0
	var z, cont []T
	var components [][]T

	var rec func(T)
	rec = func(node T) {
		time++
		low := time
		val.Set(node, low)
		stackH := len(z)
		z = append(z, node)

		for _, e := range G.Edges(node) {
			if _, hasComp := comp.Get(e); !hasComp {
				if _, visited := val.Get(e); !visited {
					rec(e)
				}

				eLow, _ := val.Get(e)
				if eLow.(int) < low {
					low = eLow.(int)
				}
			}
		}

		if oldLow, _ := val.Get(node); low == oldLow.(int) {
			for len(z) > stackH {
				x := z[len(z)-1]
				z = z[:len(z)-1]
				comp.Set(x, len(components))
				cont = append(cont, x)
			}

			components = append(components, cont)
			cont = nil
		}

		val.Set(node, low)
	}

	for _, node := range startNodes {
		if _, hasComp := comp.Get(node); !hasComp {
			rec(node)
		}
	}

	return SCCDecomposition[T]{
		Components: components,
		comp:       comp,
		Original:   G,
	}
}

// TopologicalTiers assigns every reachable node a rank such that ranks
// respect the topological order of the component DAG: a node in a component
// with edges into another component always ranks before the nodes of the
// target component. Nodes of the same component share a rank.
func (scc SCCDecomposition[T]) TopologicalTiers() func(node T) int {
	n := len(scc.Components)
	return func(node T) int {
		if comp := scc.ComponentOf(node); comp != -1 {
			// Components are emitted in reverse topological order.
			return n - comp - 1
		}
		// Unreachable nodes are processed first so that newly discovered
		// regions of the graph are explored eagerly.
		return -1
	}
}

// ToGraph returns a graph based on the SCC decomposition.
// Nodes are component indices (int).
func (scc SCCDecomposition[T]) ToGraph() Graph[SCC] {
	return OfHashable(func(compIdx SCC) (ret []SCC) {
		seen := map[int]bool{}
		for _, node := range scc.Components[compIdx] {
			for _, edge := range scc.Original.Edges(node) {
				ncomp := scc.ComponentOf(edge)
				if compIdx != ncomp && !seen[ncomp] {
					seen[ncomp] = true
					ret = append(ret, ncomp)
				}
			}
		}
		return
	})
}
