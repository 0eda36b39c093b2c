package topo_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relational/graphkit/graph"
	"github.com/relational/graphkit/graph/topo"
)

func buildDiamond(t *testing.T) *graph.Graph[int, struct{}, int] {
	t.Helper()
	g := graph.New[int, struct{}, int](graph.Directed)
	for _, n := range []int{0, 1, 2, 3} {
		g.AddNode(n, struct{}{})
	}
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 0, 2, 1)
	mustAddEdge(t, g, 1, 3, 1)
	mustAddEdge(t, g, 2, 3, 1)
	return g
}

func TestTopologicalSortOrdersEveryEdge(t *testing.T) {
	g := buildDiamond(t)
	order, err := topo.TopologicalSort(g)
	if err != nil {
		t.Fatalf("TopologicalSort: %v", err)
	}

	position := make(map[int]int, len(order))
	for i, n := range order {
		position[n] = i
	}

	edges := [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}
	for _, e := range edges {
		if position[e[0]] >= position[e[1]] {
			t.Fatalf("edge %d->%d not respected in order %v", e[0], e[1], order)
		}
	}
}

func TestTopologicalSortDeterministicTieBreak(t *testing.T) {
	g := buildDiamond(t)

	first, err := topo.TopologicalSort(g)
	if err != nil {
		t.Fatalf("TopologicalSort: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := topo.TopologicalSort(g)
		if err != nil {
			t.Fatalf("TopologicalSort: %v", err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("TopologicalSort() not deterministic across runs (-first +again):\n%s", diff)
		}
	}

	want := []int{0, 1, 2, 3}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Fatalf("TopologicalSort() mismatch (-want +got):\n%s", diff)
	}
}

func TestTopologicalSortCycleDetection(t *testing.T) {
	g := graph.New[int, struct{}, int](graph.Directed)
	for _, n := range []int{0, 1, 2} {
		g.AddNode(n, struct{}{})
	}
	mustAddEdge(t, g, 0, 1, 1)
	mustAddEdge(t, g, 1, 2, 1)
	mustAddEdge(t, g, 2, 0, 1)

	_, err := topo.TopologicalSort(g)
	if err == nil {
		t.Fatal("expected an error for a cyclic graph, got nil")
	}
	var cycleErr *topo.CycleError[int]
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected *CycleError, got %T: %v", err, err)
	}
	if len(cycleErr.Nodes) != 3 {
		t.Fatalf("expected all 3 nodes reported as cyclic, got %v", cycleErr.Nodes)
	}
}

func TestTopologicalSortEmptyGraph(t *testing.T) {
	g := graph.New[int, struct{}, int](graph.Directed)
	order, err := topo.TopologicalSort(g)
	if err != nil {
		t.Fatalf("TopologicalSort: %v", err)
	}
	if len(order) != 0 {
		t.Fatalf("expected empty order, got %v", order)
	}
}
