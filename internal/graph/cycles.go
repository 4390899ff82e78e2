package graph

// FirstCycle returns one directed cycle as a node sequence, or nil if the
// graph is acyclic. The sequence is such that each node has an edge to the
// next and the last node has an edge back to the first.
//
// Enumeration order is fixed: DFS starts from nodes in graph insertion order
// and visits successors in edge insertion order, so the "first" cycle is
// well defined for a given construction sequence. This pins down the
// otherwise unspecified traversal order that general cycle enumeration
// would have.
func FirstCycle(g *Graph) []string {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current DFS path
		black = 2 // fully explored
	)

	color := make(map[string]int, g.NodeCount())
	var path []string
	var cycle []string

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		path = append(path, id)

		for _, next := range g.succ[id] {
			switch color[next] {
			case gray:
				// Back edge: the cycle is the path suffix starting at next
				for i, n := range path {
					if n == next {
						cycle = append(cycle, path[i:]...)
						return true
					}
				}
			case white:
				if visit(next) {
					return true
				}
			}
		}

		path = path[:len(path)-1]
		color[id] = black
		return false
	}

	for _, id := range g.nodes {
		if color[id] == white {
			if visit(id) {
				return cycle
			}
		}
	}

	return nil
}

// CycleEdges converts a cycle node sequence into its consecutive edge pairs,
// including the closing edge from the last node back to the first.
func CycleEdges(cycle []string) [][2]string {
	if len(cycle) == 0 {
		return nil
	}

	edges := make([][2]string, 0, len(cycle))
	for i := 0; i < len(cycle); i++ {
		from := cycle[i]
		to := cycle[(i+1)%len(cycle)]
		edges = append(edges, [2]string{from, to})
	}
	return edges
}
