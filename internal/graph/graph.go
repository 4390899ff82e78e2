// Package graph provides the directed dependency graph the planner schedules
// over. Nodes are stable string ids and edges are typed, weighted links kept
// in an explicit adjacency structure, so removing an edge during cycle repair
// is a structural edit rather than a pointer rewrite.
package graph

// EdgeKind classifies a dependency edge. Requires is a hard ordering
// constraint; the other kinds are advisory and only influence which edge is
// sacrificed during cycle repair.
type EdgeKind string

const (
	// Requires is a hard ordering constraint
	Requires EdgeKind = "requires"

	// Enhances marks a soft, quality-improving relationship
	Enhances EdgeKind = "enhances"

	// Tests marks a test-coverage relationship
	Tests EdgeKind = "tests"

	// Optimizes marks a performance-tuning relationship
	Optimizes EdgeKind = "optimizes"
)

// Edge carries the metadata attached to a directed link. Strength is a
// confidence weight in [0,1]: 1.0 for explicitly declared dependencies,
// lower for heuristically inferred ones.
type Edge struct {
	Kind     EdgeKind
	Strength float64
	Context  map[string]string
}

type edgeKey struct {
	from, to string
}

// Graph is a directed graph keyed by string ids. Node and edge iteration
// follow insertion order, which is what makes planning deterministic for a
// fixed input order. A Graph is not safe for concurrent mutation; each
// planning run owns its own instance.
type Graph struct {
	nodes []string
	index map[string]bool
	succ  map[string][]string
	edges map[edgeKey]Edge
}

// New creates an empty graph
func New() *Graph {
	return &Graph{
		index: make(map[string]bool),
		succ:  make(map[string][]string),
		edges: make(map[edgeKey]Edge),
	}
}

// AddNode adds a node if not already present
func (g *Graph) AddNode(id string) {
	if g.index[id] {
		return
	}
	g.index[id] = true
	g.nodes = append(g.nodes, id)
}

// HasNode reports whether the node exists
func (g *Graph) HasNode(id string) bool {
	return g.index[id]
}

// AddEdge adds a directed edge from -> to, creating the endpoints if needed.
// Re-adding an existing edge keeps the stronger of the two strengths, so an
// explicit declared dependency is never downgraded by a heuristic inference.
func (g *Graph) AddEdge(from, to string, e Edge) {
	g.AddNode(from)
	g.AddNode(to)

	key := edgeKey{from, to}
	if existing, ok := g.edges[key]; ok {
		if e.Strength > existing.Strength {
			g.edges[key] = e
		}
		return
	}

	g.edges[key] = e
	g.succ[from] = append(g.succ[from], to)
}

// RemoveEdge deletes the edge from -> to if present. Nodes are never removed.
func (g *Graph) RemoveEdge(from, to string) {
	key := edgeKey{from, to}
	if _, ok := g.edges[key]; !ok {
		return
	}
	delete(g.edges, key)

	succ := g.succ[from]
	for i, s := range succ {
		if s == to {
			g.succ[from] = append(succ[:i:i], succ[i+1:]...)
			break
		}
	}
}

// EdgeBetween returns the edge metadata for from -> to
func (g *Graph) EdgeBetween(from, to string) (Edge, bool) {
	e, ok := g.edges[edgeKey{from, to}]
	return e, ok
}

// Nodes returns all node ids in insertion order
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Successors returns the direct successors of a node in edge insertion order
func (g *Graph) Successors(id string) []string {
	succ := g.succ[id]
	out := make([]string, len(succ))
	copy(out, succ)
	return out
}

// NodeCount returns the number of nodes
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Clone returns a deep copy of the graph. Cycle repair operates on a clone
// so the caller's snapshot stays intact.
func (g *Graph) Clone() *Graph {
	c := New()
	for _, id := range g.nodes {
		c.AddNode(id)
	}
	for _, from := range g.nodes {
		for _, to := range g.succ[from] {
			c.AddEdge(from, to, g.edges[edgeKey{from, to}])
		}
	}
	return c
}
