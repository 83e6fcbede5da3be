package fixpoint

import (
	"fmt"
	"log"

	L "github.com/seml-dk/ibex/analysis/lattice"
	"github.com/seml-dk/ibex/utils/graph"
	"github.com/seml-dk/ibex/utils/worklist"
)

// DefaultWideningThreshold is the default number of fixpoint iterations on
// a given node after which joins get replaced with widenings.
const DefaultWideningThreshold = 5

// Log, when set, receives diagnostic messages from fixpoint computations.
// It plays no role in correctness.
var Log *log.Logger

func logf(format string, args ...interface{}) {
	if Log != nil {
		Log.Printf(format, args...)
	}
}

// A SemanticFunc computes the semantics of the given node, assuming that
// the entry state is entry. Results of semantic computations on inner
// nodes must be saved inside store. If the computation needs information
// regarding other graphs, cg can be queried.
//
// Semantic functions must be deterministic: identical (node, entry) pairs
// must yield identical post-states and store populations.
type SemanticFunc[N comparable, S, F any] func(node N, entry S, cg CallGraph, store F) (S, error)

// approximation pairs the post-state of an outer node with the store of
// its inner node results. The two members are always stored together.
type approximation[S, F any] struct {
	post  S
	inner F
}

// Fixpoint computes a fixpoint over the given graph. It returns a map
// associating every reachable node to the abstract state computed by the
// semantic function; the map has entries also for inner nodes, harvested
// from the intermediate stores.
//
// The computation uses Join to compose results obtained at different
// iterations, up to widenAfter * |predecessors| times per node, after
// which Widen is used instead; widenAfter = 0 means joins are used
// throughout. It starts at the nodes in startingPoints, using their mapped
// values as entry states, and processes nodes in the order dictated by ws.
// cg is handed to every semantic computation.
//
// On failure no partial result is returned: approximations computed before
// the failing node are discarded with the call.
func Fixpoint[N comparable, S L.Element[S], F L.Store[N, S, F]](
	g Graph[N, S, F],
	startingPoints map[N]S,
	cg CallGraph,
	ws worklist.WorkingSet[N],
	widenAfter int,
	semantics SemanticFunc[N, S, F],
) (result map[N]S, err error) {
	// at is the node being processed, reported with unexpected failures.
	var at N
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("%w: %v: %v", ErrUnexpectedFailure, at, r)
		}
	}()

	for n := range startingPoints {
		if !g.Contains(n) {
			return nil, nodeError(ErrUnknownNode, n)
		}
	}
	// Seed in graph order so that runs over order-sensitive working sets
	// are reproducible.
	for _, n := range g.Nodes() {
		if _, isStart := startingPoints[n]; isStart {
			ws.Add(n)
		}
	}

	counters := make(map[N]int)
	table := make(map[N]approximation[S, F])

	for !ws.IsEmpty() {
		current := ws.GetNext()
		at = current

		if !g.Contains(current) {
			return nil, nodeError(ErrUnknownNode, current)
		}

		entry, hasEntry, err := entryState(g, current, startingPoints, table)
		if err != nil {
			return nil, err
		}
		if !hasEntry {
			return nil, nodeError(ErrMissingEntryState, current)
		}

		newInner := g.MakeStore(entry)
		newPost, serr := semantics(current, entry, cg, newInner)
		if serr != nil {
			logf("evaluation of the semantics of %v failed: %v", current, serr)
			return nil, nodeErrorCause(ErrTransferFailure, current, serr)
		}

		old, stored := table[current]
		if stored {
			cerr := guard(ErrCombinationFailure, current, func() {
				if widenAfter == 0 {
					newPost = newPost.Join(old.post)
					newInner = newInner.Join(old.inner)
					return
				}

				// The threshold scales with the number of predecessors:
				// with more than one, it would be reached faster.
				k, found := counters[current]
				if !found {
					k = widenAfter * len(g.Predecessors(current))
				}
				counters[current] = k - 1
				if k > 0 {
					newPost = newPost.Join(old.post)
					newInner = newInner.Join(old.inner)
				} else {
					newPost = old.post.Widen(newPost)
					newInner = old.inner.Widen(newInner)
				}
			})
			if cerr != nil {
				return nil, cerr
			}
		}

		if !stored || !newPost.Leq(old.post) || !newInner.Leq(old.inner) {
			table[current] = approximation[S, F]{newPost, newInner}
			for _, succ := range g.Successors(current) {
				ws.Add(succ)
			}
		}
	}

	result = make(map[N]S, len(table))
	for n, apx := range table {
		at = n
		result[n] = apx.post
		apx.inner.ForEach(func(inner N, state S) {
			result[inner] = state
		})
	}

	return result, nil
}

// entryState computes the entry state of the current node by joining its
// prescribed starting state, if any, with the edge-traversed post-states
// of all predecessors with a stored approximation. hasEntry is false when
// neither exists.
func entryState[N comparable, S L.Element[S], F L.Store[N, S, F]](
	g Graph[N, S, F],
	current N,
	startingPoints map[N]S,
	table map[N]approximation[S, F],
) (entry S, hasEntry bool, err error) {
	entry, hasEntry = startingPoints[current]

	for _, pred := range g.Predecessors(current) {
		apx, found := table[pred]
		if !found {
			// This might not have been computed yet.
			continue
		}

		edge, found := g.EdgeConnecting(pred, current)
		if !found {
			return entry, false, fmt.Errorf("%w: %v: no edge connects predecessor %v",
				ErrEntryStateFailure, current, pred)
		}
		state, terr := edge.Traverse(apx.post)
		if terr != nil {
			return entry, false, nodeErrorCause(ErrEntryStateFailure, current, terr)
		}

		if !hasEntry {
			entry, hasEntry = state, true
		} else if gerr := guard(ErrEntryStateFailure, current, func() {
			entry = entry.Join(state)
		}); gerr != nil {
			return entry, false, gerr
		}
	}

	return entry, hasEntry, nil
}

// ReversePostorder builds a priority working set for the given graph in
// which nodes are ranked by the topological order of the strongly
// connected component DAG, starting from the given entry nodes. Nodes in
// the same component share a rank, and nodes unreachable from the entries
// rank first. This pop order typically reaches join points only after
// their forward predecessors have stabilized.
func ReversePostorder[N comparable, S, F any](g Graph[N, S, F], entries ...N) worklist.WorkingSet[N] {
	if len(entries) == 0 {
		entries = g.Nodes()
	}
	G := graph.OfHashable(func(n N) []N { return g.Successors(n) })
	return worklist.Prioritized(G.SCC(entries).TopologicalTiers())
}
