package gen

import "github.com/relational/graphkit/graph"

func newUnitGraph(n int, o graph.Orientation) *graph.Graph[int, struct{}, int] {
	g := graph.New[int, struct{}, int](o)
	for i := 0; i < n; i++ {
		g.AddNode(i, struct{}{})
	}
	return g
}

func connect(g *graph.Graph[int, struct{}, int], u, v int) {
	// AddEdge cannot fail here: both endpoints were inserted by
	// newUnitGraph before any edge is added.
	_ = g.AddEdge(u, v, 1)
}

// Empty returns a graph of n isolated nodes with no edges.
func Empty(n int) (*graph.Graph[int, struct{}, int], error) {
	if n < 0 {
		return nil, invalidArgument("n=%d must be non-negative", n)
	}
	return newUnitGraph(n, graph.Undirected), nil
}

// Complete returns the undirected complete graph on n nodes: every pair of
// distinct nodes is connected, for n(n-1)/2 edges.
func Complete(n int) (*graph.Graph[int, struct{}, int], error) {
	return CompleteWithOrientation(n, graph.Undirected)
}

// CompleteWithOrientation returns the complete graph on n nodes with the
// given orientation. A Directed complete graph has both (i, j) and (j, i)
// for every i != j, for n(n-1) edges.
func CompleteWithOrientation(n int, o graph.Orientation) (*graph.Graph[int, struct{}, int], error) {
	if n < 0 {
		return nil, invalidArgument("n=%d must be non-negative", n)
	}
	g := newUnitGraph(n, o)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			connect(g, i, j)
			if o == graph.Directed {
				connect(g, j, i)
			}
		}
	}
	return g, nil
}

// Cycle returns the undirected cycle graph on n nodes with edges (i, (i+1)
// mod n). Fewer than 3 nodes cannot form a simple cycle, so n < 3 yields the
// empty graph.
func Cycle(n int) (*graph.Graph[int, struct{}, int], error) {
	if n < 0 {
		return nil, invalidArgument("n=%d must be non-negative", n)
	}
	if n < 3 {
		return Empty(0)
	}
	g := newUnitGraph(n, graph.Undirected)
	for i := 0; i < n; i++ {
		connect(g, i, (i+1)%n)
	}
	return g, nil
}

// Path returns the undirected path graph on n nodes with edges (i, i+1) for
// 0 <= i < n-1.
func Path(n int) (*graph.Graph[int, struct{}, int], error) {
	if n < 0 {
		return nil, invalidArgument("n=%d must be non-negative", n)
	}
	g := newUnitGraph(n, graph.Undirected)
	for i := 0; i < n-1; i++ {
		connect(g, i, i+1)
	}
	return g, nil
}

// Star returns the undirected star graph on n nodes: node 0 is connected to
// every node 1..n-1.
func Star(n int) (*graph.Graph[int, struct{}, int], error) {
	if n < 0 {
		return nil, invalidArgument("n=%d must be non-negative", n)
	}
	g := newUnitGraph(n, graph.Undirected)
	for i := 1; i < n; i++ {
		connect(g, 0, i)
	}
	return g, nil
}

// Wheel returns the undirected wheel graph on n nodes: the union of Star(n)
// and a cycle over the n-1 rim nodes {1, ..., n-1}.
func Wheel(n int) (*graph.Graph[int, struct{}, int], error) {
	if n < 0 {
		return nil, invalidArgument("n=%d must be non-negative", n)
	}
	g := newUnitGraph(n, graph.Undirected)
	for i := 1; i < n; i++ {
		connect(g, 0, i)
	}
	rim := n - 1
	if rim >= 3 {
		for i := 1; i < n; i++ {
			next := (i-1+1)%rim + 1
			connect(g, i, next)
		}
	}
	return g, nil
}

// CompleteBipartite returns the undirected complete bipartite graph with a
// left-side nodes 0..a-1 and b right-side nodes a..a+b-1, every left node
// connected to every right node.
func CompleteBipartite(a, b int) (*graph.Graph[int, struct{}, int], error) {
	if a < 0 || b < 0 {
		return nil, invalidArgument("a=%d, b=%d must be non-negative", a, b)
	}
	g := newUnitGraph(a+b, graph.Undirected)
	for i := 0; i < a; i++ {
		for j := a; j < a+b; j++ {
			connect(g, i, j)
		}
	}
	return g, nil
}

// BinaryTree returns the undirected complete binary tree of the given depth
// (a single root at depth 0), with 2^(depth+1)-1 nodes. Node i's children
// are 2i+1 and 2i+2.
func BinaryTree(depth int) (*graph.Graph[int, struct{}, int], error) {
	if depth < 0 {
		return nil, invalidArgument("depth=%d must be non-negative", depth)
	}
	n := (1 << uint(depth+1)) - 1
	g := newUnitGraph(n, graph.Undirected)
	for i := 0; i < n; i++ {
		for _, c := range [2]int{2*i + 1, 2*i + 2} {
			if c < n {
				connect(g, i, c)
			}
		}
	}
	return g, nil
}

// Grid2D returns the undirected 4-connected lattice graph on a w-by-h grid,
// node (x, y) identified by y*w+x.
func Grid2D(w, h int) (*graph.Graph[int, struct{}, int], error) {
	if w < 0 || h < 0 {
		return nil, invalidArgument("w=%d, h=%d must be non-negative", w, h)
	}
	id := func(x, y int) int { return y*w + x }
	g := newUnitGraph(w*h, graph.Undirected)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				connect(g, id(x, y), id(x+1, y))
			}
			if y+1 < h {
				connect(g, id(x, y), id(x, y+1))
			}
		}
	}
	return g, nil
}

// Petersen returns the Petersen graph: an outer pentagon on nodes 0-4, an
// inner pentagram on nodes 5-9, and spokes i <-> i+5 for i in 0..4.
func Petersen() (*graph.Graph[int, struct{}, int], error) {
	g := newUnitGraph(10, graph.Undirected)
	for i := 0; i < 5; i++ {
		connect(g, i, (i+1)%5)
	}
	for i := 0; i < 5; i++ {
		connect(g, 5+i, 5+(i+2)%5)
	}
	for i := 0; i < 5; i++ {
		connect(g, i, i+5)
	}
	return g, nil
}
