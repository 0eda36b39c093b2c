// Package graphkit is a thin façade over graphkit's subpackages (graph,
// graph/traverse, graph/topo, graph/path, graph/bipartite, graph/gen): it
// re-exports the common constructors and algorithms as top-level names so a
// caller working the golden path can import this one package instead of
// six. Anything not re-exported here, such as the lower-level adjacency
// accessors, is still reachable through the subpackages directly.
package graphkit

import (
	"math/rand"

	"golang.org/x/exp/constraints"

	"github.com/relational/graphkit/graph"
	"github.com/relational/graphkit/graph/bipartite"
	"github.com/relational/graphkit/graph/gen"
	"github.com/relational/graphkit/graph/path"
	"github.com/relational/graphkit/graph/topo"
	"github.com/relational/graphkit/graph/traverse"
)

// Graph is a directed or undirected graph with nodes identified by values of
// type K, carrying payloads of type N, with edges weighted by values of
// type W. See graph.Graph for the full method set.
type Graph[K comparable, N any, W any] = graph.Graph[K, N, W]

// Orientation distinguishes directed from undirected graphs.
type Orientation = graph.Orientation

const (
	Directed   = graph.Directed
	Undirected = graph.Undirected
)

// Option configures a Graph at construction time.
type Option = graph.Option

// OnMissingEndpoint controls AddEdge's behavior when an endpoint is absent.
type OnMissingEndpoint = graph.OnMissingEndpoint

const (
	ErrorOnMissingEndpoint = graph.ErrorOnMissingEndpoint
	AutoInsertEndpoint     = graph.AutoInsertEndpoint
)

// WithOnMissingEndpoint configures how AddEdge treats a missing endpoint.
func WithOnMissingEndpoint(mode OnMissingEndpoint) Option {
	return graph.WithOnMissingEndpoint(mode)
}

// New returns an empty Graph with the given orientation.
func New[K comparable, N any, W any](orientation Orientation, opts ...Option) *Graph[K, N, W] {
	return graph.New[K, N, W](orientation, opts...)
}

// ErrMissingNode is returned (wrapped) whenever an operation references a
// node absent from the graph.
var ErrMissingNode = graph.ErrMissingNode

// Neighbor pairs a neighboring node identifier with the weight of the edge
// joining it.
type Neighbor[K comparable, W any] = graph.Neighbor[K, W]

// Strategy selects between breadth-first and depth-first traversal order.
type Strategy = traverse.Strategy

const (
	BreadthFirst = traverse.BreadthFirst
	DepthFirst   = traverse.DepthFirst
)

// Walk visits every node reachable from start, in the given traversal
// order, and returns the visited nodes in visitation order.
func Walk[K comparable, N any, W any](start K, g *Graph[K, N, W], strategy Strategy) ([]K, error) {
	return traverse.Walk(start, g, strategy)
}

// WalkUntil is Walk, but stops as soon as predicate returns true for the
// most recently visited node, which is then the last element of the result.
func WalkUntil[K comparable, N any, W any](start K, g *Graph[K, N, W], strategy Strategy, predicate func(K) bool) ([]K, error) {
	return traverse.WalkUntil(start, g, strategy, predicate)
}

// CycleError reports that a graph could not be topologically sorted because
// it contains at least one directed cycle.
type CycleError[K comparable] = topo.CycleError[K]

// TopologicalSort returns a topological ordering of g's nodes using Kahn's
// algorithm, or a *CycleError if g contains a directed cycle.
func TopologicalSort[K constraints.Ordered, N any, W any](g *Graph[K, N, W]) ([]K, error) {
	return topo.TopologicalSort(g)
}

// StronglyConnectedComponents returns the strongly connected components of
// g using Tarjan's algorithm.
func StronglyConnectedComponents[K comparable, N any, W any](g *Graph[K, N, W]) [][]K {
	return topo.StronglyConnectedComponents(g)
}

// Ordering is the three-way result of comparing two accumulated edge
// weights, as supplied to ShortestPath.
type Ordering = path.Ordering

const (
	Less    = path.Less
	Equal   = path.Equal
	Greater = path.Greater
)

// ErrNotFound is returned by ShortestPath when no path connects from to to.
var ErrNotFound = path.ErrNotFound

// ShortestPath returns the lowest-cost path from -> to in g using
// Dijkstra's algorithm, given the caller's weight algebra (zero, add,
// compare).
func ShortestPath[K comparable, N any, W any](
	g *Graph[K, N, W],
	from, to K,
	zero W,
	add func(acc, edge W) W,
	compare func(a, b W) Ordering,
) ([]K, W, error) {
	return path.ShortestPath(g, from, to, zero, add, compare)
}

// Matching is a bidirectional pairing between proposers of type P and
// receivers of type R produced by StableMarriage.
type Matching[P comparable, R comparable] = bipartite.Matching[P, R]

// StableMarriage computes a proposer-optimal stable matching between a
// proposer side and a receiver side using the Gale-Shapley algorithm.
func StableMarriage[P comparable, R comparable](proposerPrefs map[P][]R, receiverPrefs map[R][]P) Matching[P, R] {
	return bipartite.StableMarriage(proposerPrefs, receiverPrefs)
}

// ErrInvalidArgument reports that a generator was called with an argument
// outside its valid domain.
type ErrInvalidArgument = gen.ErrInvalidArgument

// Empty returns a graph of n isolated nodes with no edges.
func Empty(n int) (*Graph[int, struct{}, int], error) { return gen.Empty(n) }

// Complete returns the undirected complete graph on n nodes.
func Complete(n int) (*Graph[int, struct{}, int], error) { return gen.Complete(n) }

// CompleteWithOrientation returns the complete graph on n nodes with the
// given orientation.
func CompleteWithOrientation(n int, o Orientation) (*Graph[int, struct{}, int], error) {
	return gen.CompleteWithOrientation(n, o)
}

// Cycle returns the undirected cycle graph on n nodes, or the empty graph
// if n < 3.
func Cycle(n int) (*Graph[int, struct{}, int], error) { return gen.Cycle(n) }

// Path returns the undirected path graph on n nodes.
func Path(n int) (*Graph[int, struct{}, int], error) { return gen.Path(n) }

// Star returns the undirected star graph on n nodes.
func Star(n int) (*Graph[int, struct{}, int], error) { return gen.Star(n) }

// Wheel returns the undirected wheel graph on n nodes.
func Wheel(n int) (*Graph[int, struct{}, int], error) { return gen.Wheel(n) }

// CompleteBipartite returns the undirected complete bipartite graph with a
// left-side nodes and b right-side nodes.
func CompleteBipartite(a, b int) (*Graph[int, struct{}, int], error) {
	return gen.CompleteBipartite(a, b)
}

// BinaryTree returns the undirected complete binary tree of the given
// depth.
func BinaryTree(depth int) (*Graph[int, struct{}, int], error) { return gen.BinaryTree(depth) }

// Grid2D returns the undirected 4-connected lattice graph on a w-by-h grid.
func Grid2D(w, h int) (*Graph[int, struct{}, int], error) { return gen.Grid2D(w, h) }

// Petersen returns the Petersen graph.
func Petersen() (*Graph[int, struct{}, int], error) { return gen.Petersen() }

// ErdosRenyiGNP returns a random undirected Gilbert-model graph on n nodes
// with independent edge probability p. If src is nil, the global
// math/rand source is used.
func ErdosRenyiGNP(n int, p float64, src *rand.Rand) (*Graph[int, struct{}, int], error) {
	return gen.ErdosRenyiGNP(n, p, src)
}

// RandomDAG returns a deterministic pseudo-random directed acyclic graph on
// n nodes, seeded by seed.
func RandomDAG(n int, seed int64) (*Graph[int, struct{}, int], error) {
	return gen.RandomDAG(n, seed)
}
