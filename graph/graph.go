// Package graph provides a generic directed/undirected graph data structure
// parameterized over a node identifier type K, a node payload type N, and an
// edge weight type W.
//
// A Graph is a value produced by New (or by a generator in graphkit/graph/gen)
// and evolved by mutating methods. Algorithms operating on a Graph (see
// graphkit/graph/traverse, graphkit/graph/topo, graphkit/graph/path,
// graphkit/graph/bipartite) never mutate the graph they are given; they
// consume a snapshot and return value results.
package graph

// Orientation distinguishes directed from undirected graphs. It is fixed at
// construction and never changes for the lifetime of a Graph value.
type Orientation int

const (
	// Directed graphs store each edge only in the direction it was added.
	Directed Orientation = iota
	// Undirected graphs store every edge symmetrically: adding (u, v, w)
	// also adds (v, u, w).
	Undirected
)

// String returns a human-readable name for o.
func (o Orientation) String() string {
	switch o {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "unknown orientation"
	}
}

// Graph is a directed or undirected graph with nodes identified by values of
// type K, carrying payloads of type N, with edges weighted by values of type
// W. The zero value is not usable; construct one with New.
type Graph[K comparable, N any, W any] struct {
	orientation Orientation
	onMissing   OnMissingEndpoint

	nodes     map[K]N
	nodeOrder []K

	out map[K]*edgeMap[K, W]
	in  map[K]*edgeMap[K, W]
}

// New returns an empty Graph with the given orientation and options applied.
func New[K comparable, N any, W any](orientation Orientation, opts ...Option) *Graph[K, N, W] {
	cfg := Options{OnMissingEndpoint: ErrorOnMissingEndpoint}
	for _, o := range opts {
		o(&cfg)
	}
	return &Graph[K, N, W]{
		orientation: orientation,
		onMissing:   cfg.OnMissingEndpoint,
		nodes:       make(map[K]N),
		out:         make(map[K]*edgeMap[K, W]),
		in:          make(map[K]*edgeMap[K, W]),
	}
}

// Orientation reports whether g is directed or undirected.
func (g *Graph[K, N, W]) Orientation() Orientation {
	return g.orientation
}

// IsDirected reports whether g is a directed graph.
func (g *Graph[K, N, W]) IsDirected() bool {
	return g.orientation == Directed
}

// Order returns the number of nodes in g.
func (g *Graph[K, N, W]) Order() int {
	return len(g.nodes)
}

// Size returns the number of edges in g. For an undirected graph, each
// undirected edge, stored as two symmetric directed entries, counts once;
// a self-loop u-u is stored as a single entry in out[u] (setting the same
// (from, to) pair twice is not two entries) and so counts once on its own,
// never folded into the pairwise halving applied to ordinary edges.
func (g *Graph[K, N, W]) Size() int {
	n := 0
	selfLoops := 0
	for u, m := range g.out {
		n += m.len()
		if _, ok := m.get(u); ok {
			selfLoops++
		}
	}
	if g.orientation == Undirected {
		return (n-selfLoops)/2 + selfLoops
	}
	return n
}

// Clone returns a deep copy of g. Algorithms never need this internally
// (they do not mutate their input) but it is useful for callers and tests
// that want an independent fixture derived from an existing graph.
func (g *Graph[K, N, W]) Clone() *Graph[K, N, W] {
	clone := &Graph[K, N, W]{
		orientation: g.orientation,
		onMissing:   g.onMissing,
		nodes:       make(map[K]N, len(g.nodes)),
		nodeOrder:   append([]K(nil), g.nodeOrder...),
		out:         make(map[K]*edgeMap[K, W], len(g.out)),
		in:          make(map[K]*edgeMap[K, W], len(g.in)),
	}
	for id, data := range g.nodes {
		clone.nodes[id] = data
	}
	for u, m := range g.out {
		clone.out[u] = m.clone()
	}
	for u, m := range g.in {
		clone.in[u] = m.clone()
	}
	return clone
}
