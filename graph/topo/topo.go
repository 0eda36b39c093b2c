// Package topo provides topological sort (Kahn's algorithm) and strongly
// connected component decomposition (Tarjan's algorithm) over a graph.Graph.
package topo
