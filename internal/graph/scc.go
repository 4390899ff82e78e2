package graph

import "sort"

// SCCs returns the strongly connected components of the graph using
// Tarjan's algorithm. Components are emitted in a deterministic order for a
// fixed node insertion order; nodes within each component are sorted
// lexicographically.
func SCCs(g *Graph) [][]string {
	index := 0
	indices := make(map[string]int, g.NodeCount())
	lowlink := make(map[string]int, g.NodeCount())
	onStack := make(map[string]bool, g.NodeCount())
	var stack []string
	var components [][]string

	var strongConnect func(id string)
	strongConnect = func(id string) {
		indices[id] = index
		lowlink[id] = index
		index++
		stack = append(stack, id)
		onStack[id] = true

		for _, next := range g.succ[id] {
			if _, seen := indices[next]; !seen {
				strongConnect(next)
				if lowlink[next] < lowlink[id] {
					lowlink[id] = lowlink[next]
				}
			} else if onStack[next] {
				if indices[next] < lowlink[id] {
					lowlink[id] = indices[next]
				}
			}
		}

		if lowlink[id] == indices[id] {
			var component []string
			for {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[top] = false
				component = append(component, top)
				if top == id {
					break
				}
			}
			sort.Strings(component)
			components = append(components, component)
		}
	}

	for _, id := range g.nodes {
		if _, seen := indices[id]; !seen {
			strongConnect(id)
		}
	}

	return components
}

// CondensationOrder collapses each SCC into a single scheduling unit, sorts
// the condensation graph topologically, and emits the original node ids in
// SCC traversal order with ids within an SCC in lexicographic order. This is
// the fallback ordering when cycle repair cannot recover true acyclicity: it
// always makes forward progress, but it is a best-effort order, not a
// semantic fix for whatever induced the cycle.
func CondensationOrder(g *Graph) []string {
	components := SCCs(g)

	// Map each node to its component index
	nodeComponent := make(map[string]int, g.NodeCount())
	for i, component := range components {
		for _, id := range component {
			nodeComponent[id] = i
		}
	}

	// Build the condensation graph; component ids are stable because
	// Tarjan's emission order is deterministic here.
	cond := New()
	labels := make([]string, len(components))
	for i, component := range components {
		labels[i] = component[0]
		cond.AddNode(labels[i])
	}
	for _, from := range g.nodes {
		for _, to := range g.succ[from] {
			cf, ct := nodeComponent[from], nodeComponent[to]
			if cf != ct {
				cond.AddEdge(labels[cf], labels[ct], Edge{Kind: Requires, Strength: 1.0})
			}
		}
	}

	// The condensation of any directed graph is acyclic, so this cannot fail
	condOrder, _ := TopoSort(cond)

	labelComponent := make(map[string][]string, len(components))
	for i, component := range components {
		labelComponent[labels[i]] = component
	}

	order := make([]string, 0, g.NodeCount())
	for _, label := range condOrder {
		order = append(order, labelComponent[label]...)
	}
	return order
}
