package fixpoint

import (
	"fmt"

	"github.com/seml-dk/ibex/utils/dot"
	"github.com/seml-dk/ibex/utils/graph"
)

// Visualize builds a renderable dot model of the given graph. Weakly
// connected components are rendered as separate clusters. The label
// function may be nil, in which case nodes are labeled with their %v
// representation.
func Visualize[N comparable, S, F any](g Graph[N, S, F], label func(n N) string) *dot.DotGraph {
	return visualize(g, label, nil)
}

// VisualizeResult builds a renderable dot model of the given graph where
// every node also displays its computed abstract state.
func VisualizeResult[N comparable, S fmt.Stringer, F any](
	g Graph[N, S, F],
	result map[N]S,
	label func(n N) string,
) *dot.DotGraph {
	return visualize(g, label, func(n N) (string, bool) {
		state, found := result[n]
		if !found {
			return "", false
		}
		return state.String(), true
	})
}

func visualize[N comparable, S, F any](
	g Graph[N, S, F],
	label func(n N) string,
	stateOf func(n N) (string, bool),
) *dot.DotGraph {
	if label == nil {
		label = func(n N) string { return fmt.Sprintf("%v", n) }
	}

	dg := &dot.DotGraph{
		Name:  "FixpointGraph",
		Title: fmt.Sprintf("%d nodes", len(g.Nodes())),
		Options: map[string]string{
			"rankdir": "TB",
		},
	}

	nodes := make(map[N]*dot.DotNode, len(g.Nodes()))
	mkNode := func(n N) *dot.DotNode {
		attrs := dot.DotAttrs{"label": label(n)}
		if stateOf != nil {
			if state, found := stateOf(n); found {
				attrs["label"] = fmt.Sprintf("%s\n%s", label(n), state)
			} else {
				attrs["style"] = "dashed"
			}
		}
		dn := &dot.DotNode{ID: label(n), Attrs: attrs}
		nodes[n] = dn
		return dn
	}

	G := graph.OfHashable(func(n N) []N { return g.Successors(n) })
	components := G.WeakComponents(g.Nodes())

	if len(components) > 1 {
		for i, component := range components {
			cluster := dot.NewDotCluster(fmt.Sprintf("%d", i))
			for _, n := range component {
				cluster.Nodes = append(cluster.Nodes, mkNode(n))
			}
			dg.Clusters = append(dg.Clusters, cluster)
		}
	} else {
		for _, n := range g.Nodes() {
			dg.Nodes = append(dg.Nodes, mkNode(n))
		}
	}

	for _, n := range g.Nodes() {
		for _, succ := range g.Successors(n) {
			dg.Edges = append(dg.Edges, &dot.DotEdge{
				From: nodes[n],
				To:   nodes[succ],
			})
		}
	}

	return dg
}
