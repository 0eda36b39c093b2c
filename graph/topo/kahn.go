package topo

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/relational/graphkit/graph"
)

// CycleError reports that a graph could not be topologically sorted because
// it contains at least one directed cycle. It carries the node identifiers
// that could not be placed, in ascending order: every node on a cycle and
// every node reachable from one.
type CycleError[K comparable] struct {
	Nodes []K
}

func (e *CycleError[K]) Error() string {
	return fmt.Sprintf("topo: cycle detected among %d node(s)", len(e.Nodes))
}

// TopologicalSort returns a topological ordering of g's nodes using Kahn's
// algorithm: every edge (u, v) has u appearing before v in the result. Ties
// among nodes with equal in-degree are broken by ascending K order, per the
// total order K is required to support here, making the result deterministic
// across runs for a given graph. If g contains a directed cycle, a
// *CycleError is returned and the returned slice is nil.
func TopologicalSort[K constraints.Ordered, N any, W any](g *graph.Graph[K, N, W]) ([]K, error) {
	inDegree := make(map[K]int)
	for _, u := range g.AllNodes() {
		inDegree[u] = g.InDegree(u)
	}

	ready := make([]K, 0)
	for u, d := range inDegree {
		if d == 0 {
			ready = append(ready, u)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	order := make([]K, 0, len(inDegree))
	for len(ready) > 0 {
		u := ready[0]
		ready = ready[1:]
		order = append(order, u)

		succ, err := g.Successors(u)
		if err != nil {
			return nil, err
		}

		frontier := make([]K, 0)
		for _, n := range succ {
			inDegree[n.Node]--
			if inDegree[n.Node] == 0 {
				frontier = append(frontier, n.Node)
			}
		}
		sort.Slice(frontier, func(i, j int) bool { return frontier[i] < frontier[j] })

		ready = mergeSortedAscending(ready, frontier)
	}

	if len(order) != len(inDegree) {
		var cyclic []K
		for u, d := range inDegree {
			if d > 0 {
				cyclic = append(cyclic, u)
			}
		}
		sort.Slice(cyclic, func(i, j int) bool { return cyclic[i] < cyclic[j] })
		return nil, &CycleError[K]{Nodes: cyclic}
	}

	return order, nil
}

// mergeSortedAscending merges two already-ascending slices into one ascending
// slice, keeping the zero-in-degree worklist sorted without re-sorting it in
// full on every iteration.
func mergeSortedAscending[K constraints.Ordered](a, b []K) []K {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]K, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] <= b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
