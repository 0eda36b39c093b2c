package graph

// edgeMap is an insertion-order-preserving map from node identifier to edge
// weight. Plain Go maps iterate in randomized order, which would violate the
// "stable within a single graph value" enumeration guarantee; edgeMap
// guarantees that Successors/Predecessors always enumerate in the order
// entries were inserted (an entry deleted and set again moves to the end), per the
// insertion-order fallback spec §9 calls for wherever no tie-break is
// otherwise specified.
type edgeMap[K comparable, W any] struct {
	weight map[K]W
	order  []K
}

func newEdgeMap[K comparable, W any]() *edgeMap[K, W] {
	return &edgeMap[K, W]{weight: make(map[K]W)}
}

func (m *edgeMap[K, W]) set(k K, w W) {
	if _, ok := m.weight[k]; !ok {
		m.order = append(m.order, k)
	}
	m.weight[k] = w
}

func (m *edgeMap[K, W]) get(k K) (W, bool) {
	w, ok := m.weight[k]
	return w, ok
}

func (m *edgeMap[K, W]) delete(k K) {
	if _, ok := m.weight[k]; !ok {
		return
	}
	delete(m.weight, k)
	for i, x := range m.order {
		if x == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *edgeMap[K, W]) len() int {
	return len(m.weight)
}

func (m *edgeMap[K, W]) neighbors() []Neighbor[K, W] {
	out := make([]Neighbor[K, W], 0, len(m.order))
	for _, k := range m.order {
		out = append(out, Neighbor[K, W]{Node: k, Weight: m.weight[k]})
	}
	return out
}

func (m *edgeMap[K, W]) clone() *edgeMap[K, W] {
	c := &edgeMap[K, W]{
		weight: make(map[K]W, len(m.weight)),
		order:  append([]K(nil), m.order...),
	}
	for k, w := range m.weight {
		c.weight[k] = w
	}
	return c
}
