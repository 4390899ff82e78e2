package graph

import "fmt"

// TopoSort returns a topological ordering of the graph using Kahn's
// algorithm. Ties between ready nodes are broken by node insertion order,
// keeping the output reproducible as long as the caller creates nodes in a
// stable order. An error is returned if the graph contains a cycle.
func TopoSort(g *Graph) ([]string, error) {
	indegree := make(map[string]int, g.NodeCount())
	for _, id := range g.nodes {
		indegree[id] = 0
	}
	for _, from := range g.nodes {
		for _, to := range g.succ[from] {
			indegree[to]++
		}
	}

	// Seed the ready queue in insertion order; appending newly freed nodes
	// to the tail keeps the insertion-order tie-break stable.
	var ready []string
	for _, id := range g.nodes {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, g.NodeCount())
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, id)

		for _, to := range g.succ[id] {
			indegree[to]--
			if indegree[to] == 0 {
				ready = append(ready, to)
			}
		}
	}

	if len(order) != g.NodeCount() {
		return nil, fmt.Errorf("graph contains a cycle: scheduled %d of %d nodes", len(order), g.NodeCount())
	}

	return order, nil
}

// IsAcyclic reports whether the graph has no directed cycles
func IsAcyclic(g *Graph) bool {
	_, err := TopoSort(g)
	return err == nil
}
