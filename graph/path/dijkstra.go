// Package path computes shortest paths over a graph.Graph using Dijkstra's
// algorithm, generalized over the caller's own notion of edge-weight
// accumulation and comparison rather than assuming float64 costs.
package path

import (
	"container/heap"
	"errors"

	"github.com/relational/graphkit/graph"
)

// ErrNotFound is returned by ShortestPath when no path connects from to to.
var ErrNotFound = errors.New("path: no path found")

// Ordering is the three-way result of comparing two accumulated weights.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
)

// ShortestPath returns the lowest-cost path from -> to in g, together with
// its total cost, using Dijkstra's algorithm. Callers supply the weight
// algebra themselves: zero is the identity cost, add combines an
// accumulated cost with one more edge weight, and compare orders two
// accumulated costs. This lets W be anything from an int hop count to a
// float64 latency to a custom cost type, so long as add is monotonic and
// never produces a cost less than either operand (Dijkstra's correctness
// depends on costs along a path never decreasing).
//
// If from is absent from g, a *graph.MissingNodeError is returned. If to is
// unreachable from from, ErrNotFound is returned. The returned path always
// begins with from and ends with to; if from == to it is the single-node
// path with cost zero.
//
// The time complexity is O(|E|.log|V|), following the standard binary-heap
// implementation.
func ShortestPath[K comparable, N any, W any](
	g *graph.Graph[K, N, W],
	from, to K,
	zero W,
	add func(acc, edge W) W,
	compare func(a, b W) Ordering,
) ([]K, W, error) {
	if !g.HasNode(from) {
		var z W
		return nil, z, &graph.MissingNodeError[K]{Node: from}
	}

	dist := map[K]W{from: zero}
	prev := make(map[K]K)
	visited := make(map[K]bool)

	q := &priorityQueue[K, W]{compare: compare}
	heap.Push(q, distanceNode[K, W]{node: from, dist: zero})

	for q.Len() != 0 {
		cur := heap.Pop(q).(distanceNode[K, W])
		u := cur.node
		if visited[u] {
			continue
		}
		if best, ok := dist[u]; ok && compare(cur.dist, best) == Greater {
			continue
		}
		visited[u] = true
		if u == to {
			break
		}

		succ, err := g.Successors(u)
		if err != nil {
			var z W
			return nil, z, err
		}
		for _, n := range succ {
			if visited[n.Node] {
				continue
			}
			joint := add(dist[u], n.Weight)
			if existing, ok := dist[n.Node]; !ok || compare(joint, existing) == Less {
				dist[n.Node] = joint
				prev[n.Node] = u
				heap.Push(q, distanceNode[K, W]{node: n.Node, dist: joint})
			}
		}
	}

	finalDist, ok := dist[to]
	if !ok {
		var z W
		return nil, z, ErrNotFound
	}

	path := []K{to}
	for cur := to; cur != from; {
		p, ok := prev[cur]
		if !ok {
			var z W
			return nil, z, ErrNotFound
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, finalDist, nil
}

type distanceNode[K comparable, W any] struct {
	node K
	dist W
}

// priorityQueue implements a no-dec (lazy-deletion) priority queue: stale
// entries left behind by a cheaper update are skipped on pop rather than
// removed in place.
type priorityQueue[K comparable, W any] struct {
	items   []distanceNode[K, W]
	compare func(a, b W) Ordering
}

func (q *priorityQueue[K, W]) Len() int { return len(q.items) }
func (q *priorityQueue[K, W]) Less(i, j int) bool {
	return q.compare(q.items[i].dist, q.items[j].dist) == Less
}
func (q *priorityQueue[K, W]) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }
func (q *priorityQueue[K, W]) Push(x any)    { q.items = append(q.items, x.(distanceNode[K, W])) }
func (q *priorityQueue[K, W]) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
