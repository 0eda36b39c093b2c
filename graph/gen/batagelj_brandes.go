// ErdosRenyiGNP constructs a Gilbert-model random graph: the generator
// described by Batagelj and Brandes,
// http://algo.uni-konstanz.de/publications/bb-eglrn-05.pdf, which places
// each of the n(n-1)/2 possible edges independently with probability p in
// O(n+m) expected time, rather than the naive O(n^2) coin-flip-per-pair
// approach.
package gen

import (
	"math"
	"math/rand"

	"github.com/relational/graphkit/graph"
)

// ErdosRenyiGNP returns a random undirected graph on n nodes in which each
// of the n(n-1)/2 possible edges is present independently with probability
// p. If src is nil, the global math/rand source is used.
func ErdosRenyiGNP(n int, p float64, src *rand.Rand) (*graph.Graph[int, struct{}, int], error) {
	if n < 0 {
		return nil, invalidArgument("n=%d must be non-negative", n)
	}
	if p < 0 || p > 1 {
		return nil, invalidArgument("p=%v must be in [0, 1]", p)
	}

	g := newUnitGraph(n, graph.Undirected)
	if p == 0 || n < 2 {
		return g, nil
	}

	r := rand.Float64
	if src != nil {
		r = src.Float64
	}

	lp := math.Log(1 - p)
	for v, w := 1, -1; v < n; {
		w += 1 + int(math.Log(1-r())/lp)
		for w >= v && v < n {
			w -= v
			v++
		}
		if v < n {
			connect(g, w, v)
		}
	}
	return g, nil
}

// RandomDAG returns a deterministic pseudo-random directed acyclic graph on
// n nodes: for every pair i < j, the edge i -> j is included iff
// (31*i + 17*j + seed) mod 10 < 3. Because every edge runs from a lower to
// a higher node index, the result is acyclic by construction, and the same
// (n, seed) pair always yields the same graph.
func RandomDAG(n int, seed int64) (*graph.Graph[int, struct{}, int], error) {
	if n < 0 {
		return nil, invalidArgument("n=%d must be non-negative", n)
	}
	g := newUnitGraph(n, graph.Directed)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := (31*int64(i) + 17*int64(j) + seed) % 10
			if v < 0 {
				v += 10
			}
			if v < 3 {
				connect(g, i, j)
			}
		}
	}
	return g, nil
}
