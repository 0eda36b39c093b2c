package path_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/relational/graphkit/graph"
	"github.com/relational/graphkit/graph/path"
)

func intOrdering(a, b int) path.Ordering {
	switch {
	case a < b:
		return path.Less
	case a > b:
		return path.Greater
	default:
		return path.Equal
	}
}

func intAdd(acc, edge int) int { return acc + edge }

func buildGrid2D(t *testing.T, w, h int) *graph.Graph[int, struct{}, int] {
	t.Helper()
	g := graph.New[int, struct{}, int](graph.Undirected)
	id := func(x, y int) int { return y*w + x }
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.AddNode(id(x, y), struct{}{})
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				if err := g.AddEdge(id(x, y), id(x+1, y), 1); err != nil {
					t.Fatalf("AddEdge: %v", err)
				}
			}
			if y+1 < h {
				if err := g.AddEdge(id(x, y), id(x, y+1), 1); err != nil {
					t.Fatalf("AddEdge: %v", err)
				}
			}
		}
	}
	return g
}

func TestShortestPathGrid2D(t *testing.T) {
	g := buildGrid2D(t, 3, 3)

	got, cost, err := path.ShortestPath(g, 0, 8, 0, intAdd, intOrdering)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if cost != 4 {
		t.Fatalf("cost = %d, want 4", cost)
	}
	if len(got) != 5 {
		t.Fatalf("path length = %d, want 5: %v", len(got), got)
	}
	if got[0] != 0 || got[len(got)-1] != 8 {
		t.Fatalf("path does not run from 0 to 8: %v", got)
	}
}

func TestShortestPathSameNode(t *testing.T) {
	g := buildGrid2D(t, 3, 3)
	got, cost, err := path.ShortestPath(g, 4, 4, 0, intAdd, intOrdering)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if cost != 0 {
		t.Fatalf("cost = %d, want 0", cost)
	}
	if diff := cmp.Diff([]int{4}, got); diff != "" {
		t.Fatalf("ShortestPath() path mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestPathUnreachable(t *testing.T) {
	g := graph.New[int, struct{}, int](graph.Directed)
	g.AddNode(0, struct{}{})
	g.AddNode(1, struct{}{})

	_, _, err := path.ShortestPath(g, 0, 1, 0, intAdd, intOrdering)
	if !errors.Is(err, path.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShortestPathMissingStart(t *testing.T) {
	g := graph.New[int, struct{}, int](graph.Directed)
	g.AddNode(1, struct{}{})

	_, _, err := path.ShortestPath(g, 0, 1, 0, intAdd, intOrdering)
	if !errors.Is(err, graph.ErrMissingNode) {
		t.Fatalf("expected ErrMissingNode, got %v", err)
	}
}

func TestShortestPathPrefersLowerWeight(t *testing.T) {
	g := graph.New[int, struct{}, int](graph.Directed)
	for _, n := range []int{0, 1, 2, 3} {
		g.AddNode(n, struct{}{})
	}
	mustAddWeightedEdge(t, g, 0, 1, 1)
	mustAddWeightedEdge(t, g, 1, 3, 1)
	mustAddWeightedEdge(t, g, 0, 2, 1)
	mustAddWeightedEdge(t, g, 2, 3, 10)

	got, cost, err := path.ShortestPath(g, 0, 3, 0, intAdd, intOrdering)
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	if cost != 2 {
		t.Fatalf("cost = %d, want 2", cost)
	}
	want := []int{0, 1, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ShortestPath() path mismatch (-want +got):\n%s", diff)
	}
}

func mustAddWeightedEdge(t *testing.T, g *graph.Graph[int, struct{}, int], from, to, w int) {
	t.Helper()
	if err := g.AddEdge(from, to, w); err != nil {
		t.Fatalf("AddEdge(%d, %d): %v", from, to, err)
	}
}
