package topo

import (
	"golang.org/x/tools/container/intsets"

	"github.com/relational/graphkit/graph"
)

// StronglyConnectedComponents returns the strongly connected components of g
// using Tarjan's algorithm. g is treated as directed; for an Undirected
// graph, every edge is already stored symmetrically so the result degenerates
// to the connected components.
//
// Every node of g appears in exactly one returned component. Components are
// returned in reverse topological order of the condensation (sinks first), a
// direct consequence of Tarjan's single-pass DFS. A node with a self-loop and
// no other cycle partners still forms its own singleton component.
//
// This is an iterative reimplementation of the classic recursive
// strongconnect routine, using an explicit work stack so arbitrarily deep
// graphs cannot overflow the call stack.
func StronglyConnectedComponents[K comparable, N any, W any](g *graph.Graph[K, N, W]) [][]K {
	t := &tarjan[K, N, W]{
		g:       g,
		index:   make(map[K]int),
		lowlink: make(map[K]int),
		onStack: &intsets.Sparse{},
	}
	for _, v := range g.AllNodes() {
		if _, seen := t.index[v]; seen {
			continue
		}
		t.run(v)
	}
	return t.sccs
}

type tarjanFrame[K comparable, W any] struct {
	node K
	succ []graph.Neighbor[K, W]
	pos  int
}

type tarjan[K comparable, N any, W any] struct {
	g *graph.Graph[K, N, W]

	counter int
	index   map[K]int
	lowlink map[K]int
	onStack *intsets.Sparse

	stack []K
	sccs  [][]K
}

func (t *tarjan[K, N, W]) enter(u K) *tarjanFrame[K, W] {
	t.index[u] = t.counter
	t.lowlink[u] = t.counter
	t.onStack.Insert(t.counter)
	t.counter++
	t.stack = append(t.stack, u)

	succ, _ := t.g.Successors(u)
	return &tarjanFrame[K, W]{node: u, succ: succ}
}

// run performs Tarjan's strongconnect over the component reachable from root,
// iteratively: work holds the DFS call stack as explicit frames, each
// tracking how far its successor enumeration has progressed.
func (t *tarjan[K, N, W]) run(root K) {
	work := []*tarjanFrame[K, W]{t.enter(root)}

	for len(work) > 0 {
		top := work[len(work)-1]

		if top.pos < len(top.succ) {
			w := top.succ[top.pos].Node
			top.pos++

			if _, seen := t.index[w]; !seen {
				work = append(work, t.enter(w))
				continue
			}
			if t.onStack.Has(t.index[w]) && t.index[w] < t.lowlink[top.node] {
				t.lowlink[top.node] = t.index[w]
			}
			continue
		}

		// All of top's successors are processed; pop it.
		work = work[:len(work)-1]
		if len(work) > 0 {
			parent := work[len(work)-1]
			if t.lowlink[top.node] < t.lowlink[parent.node] {
				t.lowlink[parent.node] = t.lowlink[top.node]
			}
		}

		if t.lowlink[top.node] == t.index[top.node] {
			var scc []K
			for {
				n := len(t.stack) - 1
				w := t.stack[n]
				t.stack = t.stack[:n]
				t.onStack.Remove(t.index[w])
				scc = append(scc, w)
				if w == top.node {
					break
				}
			}
			t.sccs = append(t.sccs, scc)
		}
	}
}
