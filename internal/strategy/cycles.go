package strategy

import (
	"fmt"

	"github.com/felixgeelhaar/respec/internal/graph"
)

// repairCycles returns an acyclic copy of the schedule graph. While a cycle
// exists it removes the weakest edge of the first cycle found, so declared
// full-strength dependencies survive whenever an inferred one can give way.
// Iteration is capped at the edge count; the input graph is not modified.
func repairCycles(g *graph.Graph) (*graph.Graph, []string) {
	repaired := g.Clone()
	var warnings []string

	limit := g.EdgeCount()
	for i := 0; i < limit; i++ {
		cycle := graph.FirstCycle(repaired)
		if cycle == nil {
			break
		}

		edges := graph.CycleEdges(cycle)
		victim := edges[0]
		strength := edgeStrength(repaired, victim)
		for _, e := range edges[1:] {
			if s := edgeStrength(repaired, e); s < strength {
				victim, strength = e, s
			}
		}

		repaired.RemoveEdge(victim[0], victim[1])
		warnings = append(warnings, fmt.Sprintf(
			"broke dependency cycle %v by removing the dependency of %q on %q (strength %.2f)",
			cycle, victim[1], victim[0], strength))
	}

	return repaired, warnings
}

// edgeStrength reads an edge's strength, defaulting to full strength when
// the edge carries no metadata
func edgeStrength(g *graph.Graph, e [2]string) float64 {
	if meta, ok := g.EdgeBetween(e[0], e[1]); ok {
		return meta.Strength
	}
	return 1.0
}

// scheduleSteps produces the execution order. The normal path is a plain
// topological sort; if residual cycles survived repair, scheduling falls
// back to ordering the condensation of strongly connected components so a
// usable order always comes out.
func scheduleSteps(g *graph.Graph) ([]string, []string) {
	order, err := graph.TopoSort(g)
	if err == nil {
		return order, nil
	}
	return graph.CondensationOrder(g), []string{
		"residual cycles remained after repair; execution order falls back to strongly connected component condensation",
	}
}
