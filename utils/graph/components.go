package graph

import (
	uf "github.com/spakin/disjoint"
)

// WeakComponents partitions the subgraph reachable from the given start
// nodes into weakly connected components: edge direction is ignored, two
// nodes share a component when an undirected path connects them.
// Components are numbered in first-visit order of their first node.
func (G Graph[T]) WeakComponents(startNodes []T) [][]T {
	sets := G.mapFactory()
	var order []T

	elementOf := func(node T) *uf.Element {
		if el, found := sets.Get(node); found {
			return el.(*uf.Element)
		}
		el := uf.NewElement()
		el.Data = node
		sets.Set(node, el)
		order = append(order, node)
		return el
	}

	G.BFSV(func(node T) bool {
		ne := elementOf(node)
		for _, succ := range G.Edges(node) {
			uf.Union(ne, elementOf(succ))
		}
		return false
	}, startNodes...)

	index := map[*uf.Element]int{}
	var components [][]T
	for _, node := range order {
		el, _ := sets.Get(node)
		root := el.(*uf.Element).Find()
		i, found := index[root]
		if !found {
			i = len(components)
			index[root] = i
			components = append(components, nil)
		}
		components[i] = append(components[i], node)
	}

	return components
}
