package graph

// HasNode reports whether id names a node in g.
func (g *Graph[K, N, W]) HasNode(id K) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeData returns the payload stored for id and whether id exists in g.
func (g *Graph[K, N, W]) NodeData(id K) (N, bool) {
	data, ok := g.nodes[id]
	return data, ok
}

// AddNode inserts id with payload data, or replaces the payload of id if it
// already exists. Replacing a node preserves every edge incident to it.
func (g *Graph[K, N, W]) AddNode(id K, data N) {
	if _, ok := g.nodes[id]; !ok {
		g.nodeOrder = append(g.nodeOrder, id)
	}
	g.nodes[id] = data
}

// RemoveNode deletes id and every edge incident to it, on both sides of the
// adjacency.
func (g *Graph[K, N, W]) RemoveNode(id K) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)
	for i, x := range g.nodeOrder {
		if x == id {
			g.nodeOrder = append(g.nodeOrder[:i], g.nodeOrder[i+1:]...)
			break
		}
	}

	if m, ok := g.out[id]; ok {
		for _, v := range m.order {
			g.in[v].delete(id)
		}
	}
	delete(g.out, id)

	if m, ok := g.in[id]; ok {
		for _, u := range m.order {
			g.out[u].delete(id)
		}
	}
	delete(g.in, id)
}

// AddEdge inserts or replaces the weighted edge from -> to. Both endpoints
// must already exist unless the graph was constructed with
// WithOnMissingEndpoint(AutoInsertEndpoint), in which case missing endpoints
// are inserted with their zero-value payload. When the graph is Undirected,
// the symmetric edge to -> from is inserted atomically with the same weight.
func (g *Graph[K, N, W]) AddEdge(from, to K, weight W) error {
	if err := g.ensureEndpoint(from); err != nil {
		return err
	}
	if err := g.ensureEndpoint(to); err != nil {
		return err
	}

	g.setDirectedEdge(from, to, weight)
	if g.orientation == Undirected {
		g.setDirectedEdge(to, from, weight)
	}
	return nil
}

func (g *Graph[K, N, W]) ensureEndpoint(id K) error {
	if g.HasNode(id) {
		return nil
	}
	if g.onMissing == AutoInsertEndpoint {
		var zero N
		g.AddNode(id, zero)
		return nil
	}
	return missingNode(id)
}

func (g *Graph[K, N, W]) setDirectedEdge(from, to K, weight W) {
	if g.out[from] == nil {
		g.out[from] = newEdgeMap[K, W]()
	}
	g.out[from].set(to, weight)

	if g.in[to] == nil {
		g.in[to] = newEdgeMap[K, W]()
	}
	g.in[to].set(from, weight)
}

// RemoveEdge deletes the edge from -> to. When the graph is Undirected, the
// symmetric edge to -> from is removed as well. Removing an edge that does
// not exist is a no-op.
func (g *Graph[K, N, W]) RemoveEdge(from, to K) {
	g.removeDirectedEdge(from, to)
	if g.orientation == Undirected {
		g.removeDirectedEdge(to, from)
	}
}

func (g *Graph[K, N, W]) removeDirectedEdge(from, to K) {
	if m, ok := g.out[from]; ok {
		m.delete(to)
	}
	if m, ok := g.in[to]; ok {
		m.delete(from)
	}
}

// HasEdge reports whether an edge from -> to exists in g.
func (g *Graph[K, N, W]) HasEdge(from, to K) bool {
	m, ok := g.out[from]
	if !ok {
		return false
	}
	_, ok = m.get(to)
	return ok
}

// Weight returns the weight of the edge from -> to and whether it exists.
func (g *Graph[K, N, W]) Weight(from, to K) (W, bool) {
	m, ok := g.out[from]
	if !ok {
		var zero W
		return zero, false
	}
	return m.get(to)
}

// AllNodes returns every node identifier in g. Enumeration order is
// unspecified but stable across repeated calls on the same Graph value: it
// follows node insertion order.
func (g *Graph[K, N, W]) AllNodes() []K {
	return append([]K(nil), g.nodeOrder...)
}

// Neighbor pairs a neighboring node identifier with the weight of the edge
// joining it.
type Neighbor[K comparable, W any] struct {
	Node   K
	Weight W
}

// Successors returns the out-neighbors of u together with their edge
// weights, in the order those edges were added, or ErrMissingNode (via
// MissingNodeError) if u is not in g.
func (g *Graph[K, N, W]) Successors(u K) ([]Neighbor[K, W], error) {
	if !g.HasNode(u) {
		return nil, missingNode(u)
	}
	m, ok := g.out[u]
	if !ok {
		return nil, nil
	}
	return m.neighbors(), nil
}

// Predecessors returns the in-neighbors of u together with their edge
// weights, in the order those edges were added, or ErrMissingNode (via
// MissingNodeError) if u is not in g.
func (g *Graph[K, N, W]) Predecessors(u K) ([]Neighbor[K, W], error) {
	if !g.HasNode(u) {
		return nil, missingNode(u)
	}
	m, ok := g.in[u]
	if !ok {
		return nil, nil
	}
	return m.neighbors(), nil
}

// InDegree returns the number of edges terminating at u.
func (g *Graph[K, N, W]) InDegree(u K) int {
	m, ok := g.in[u]
	if !ok {
		return 0
	}
	return m.len()
}

// OutDegree returns the number of edges originating at u.
func (g *Graph[K, N, W]) OutDegree(u K) int {
	m, ok := g.out[u]
	if !ok {
		return 0
	}
	return m.len()
}
