package graphkit_test

import (
	"testing"

	"github.com/relational/graphkit"
)

func TestFacadeEndToEnd(t *testing.T) {
	g, err := graphkit.Grid2D(3, 3)
	if err != nil {
		t.Fatalf("Grid2D: %v", err)
	}

	order, err := graphkit.TopologicalSort(g)
	if err == nil {
		t.Fatalf("expected a cycle error on an undirected grid, got order %v", order)
	}

	walked, err := graphkit.Walk(0, g, graphkit.BreadthFirst)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(walked) != g.Order() {
		t.Fatalf("Walk visited %d nodes, want %d", len(walked), g.Order())
	}

	intAdd := func(acc, edge int) int { return acc + edge }
	intCompare := func(a, b int) graphkit.Ordering {
		switch {
		case a < b:
			return graphkit.Less
		case a > b:
			return graphkit.Greater
		default:
			return graphkit.Equal
		}
	}
	path, cost, err := graphkit.ShortestPath(g, 0, 8, 0, intAdd, intCompare)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if cost != 4 || len(path) != 5 {
		t.Fatalf("ShortestPath cost=%d len(path)=%d, want 4,5", cost, len(path))
	}

	dag, err := graphkit.RandomDAG(6, 11)
	if err != nil {
		t.Fatalf("RandomDAG: %v", err)
	}
	if _, err := graphkit.TopologicalSort(dag); err != nil {
		t.Fatalf("TopologicalSort on a generated DAG should succeed: %v", err)
	}

	sccs := graphkit.StronglyConnectedComponents(dag)
	if len(sccs) != dag.Order() {
		t.Fatalf("a DAG should have exactly one singleton component per node, got %d components for %d nodes", len(sccs), dag.Order())
	}

	m := graphkit.StableMarriage(
		map[int][]int{1: {101, 102}, 2: {102, 101}},
		map[int][]int{101: {2, 1}, 102: {1, 2}},
	)
	if partner, ok := m.GetPartner(1); !ok || partner != 101 {
		t.Fatalf("GetPartner(1) = (%d, %v), want (101, true)", partner, ok)
	}
}
