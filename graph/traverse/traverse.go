// Package traverse implements breadth-first and depth-first visitation of a
// graph.Graph through a single generic entry point parameterized by a
// Strategy.
package traverse

import "github.com/relational/graphkit/graph"

// Strategy selects how Walk enumerates a graph's nodes.
type Strategy int

const (
	// BreadthFirst visits nodes layer by layer using a FIFO queue.
	BreadthFirst Strategy = iota
	// DepthFirst visits nodes pre-order using an explicit stack.
	DepthFirst
)

// Walk returns the sequence of node identifiers visited starting from start,
// in visitation order, each appearing exactly once. Nodes unreachable from
// start are not emitted. The relative order among a node's neighbors follows
// the enumeration order of g.Successors.
func Walk[K comparable, N any, W any](start K, g *graph.Graph[K, N, W], strategy Strategy) ([]K, error) {
	return WalkUntil(start, g, strategy, func(K) bool { return false })
}

// WalkUntil behaves like Walk but halts the traversal the first time
// predicate(node) is true, returning the prefix of the visitation order up
// to and including that node.
func WalkUntil[K comparable, N any, W any](start K, g *graph.Graph[K, N, W], strategy Strategy, predicate func(K) bool) ([]K, error) {
	if !g.HasNode(start) {
		return nil, graph.ErrMissingNode
	}

	visited := map[K]bool{start: true}
	order := []K{}

	switch strategy {
	case BreadthFirst:
		queue := []K{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			order = append(order, u)
			if predicate(u) {
				return order, nil
			}
			succ, err := g.Successors(u)
			if err != nil {
				return nil, err
			}
			for _, n := range succ {
				if visited[n.Node] {
					continue
				}
				visited[n.Node] = true
				queue = append(queue, n.Node)
			}
		}
	case DepthFirst:
		// A node is marked when it is popped, not when it is pushed, so a
		// node still waiting on the stack is visited first from a deeper
		// node that reaches it, as a pre-order walk requires.
		done := make(map[K]bool)
		stack := []K{start}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if done[u] {
				continue
			}
			done[u] = true
			order = append(order, u)
			if predicate(u) {
				return order, nil
			}
			succ, err := g.Successors(u)
			if err != nil {
				return nil, err
			}
			// Push in reverse so the first successor in enumeration
			// order is the first one popped, preserving the contract
			// that neighbor order follows Successors' order.
			for i := len(succ) - 1; i >= 0; i-- {
				n := succ[i]
				if done[n.Node] {
					continue
				}
				stack = append(stack, n.Node)
			}
		}
	}

	return order, nil
}
