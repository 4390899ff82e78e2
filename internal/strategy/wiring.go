package strategy

import (
	"github.com/felixgeelhaar/respec/internal/graph"
	"github.com/felixgeelhaar/respec/internal/spec"
)

// wireSteps converts the entity-level dependency graph into a step-level
// schedule graph. Edges run prerequisite -> dependent, so a topological
// ordering of the result is a valid execution order.
//
// Three rules apply, in order:
//
//  1. Architecture steps gate everything: every step that is not itself an
//     architecture step depends on every architecture step.
//  2. Entity-level ordering edges become step edges when both endpoints
//     resolve to an individual step, carrying their strength. Entities
//     folded into aggregate steps do not resolve; their ordering is
//     subsumed by the group. Advisory edge kinds never produce a step
//     edge, they only exist to inform cycle repair at the entity level.
//  3. Pattern steps come last: each depends on every entity-derived step.
func wireSteps(syn *synthesis, set *spec.Set, res *Resolution) *graph.Graph {
	g := graph.New()
	for _, st := range syn.steps {
		g.AddNode(st.ID)
	}

	// Setup before components, per architecture entity
	for i := 0; i+1 < len(syn.archSteps); i += 2 {
		g.AddEdge(syn.archSteps[i].ID, syn.archSteps[i+1].ID, graph.Edge{
			Kind:     graph.Requires,
			Strength: 1.0,
			Context:  map[string]string{"origin": "architecture"},
		})
	}

	for _, arch := range syn.archSteps {
		for _, st := range syn.entitySteps {
			g.AddEdge(arch.ID, st.ID, graph.Edge{
				Kind:     graph.Requires,
				Strength: 1.0,
				Context:  map[string]string{"origin": "architecture"},
			})
		}
		for _, st := range syn.patternSteps {
			g.AddEdge(arch.ID, st.ID, graph.Edge{
				Kind:     graph.Requires,
				Strength: 1.0,
				Context:  map[string]string{"origin": "architecture"},
			})
		}
	}

	// Entity graph edges run dependent -> dependency; the schedule edge
	// runs the other way around
	for _, dependent := range res.Graph.Nodes() {
		for _, dependency := range res.Graph.Successors(dependent) {
			if dependent == dependency {
				continue
			}
			edge, ok := res.Graph.EdgeBetween(dependent, dependency)
			if !ok || edge.Kind != graph.Requires {
				continue
			}
			from, okFrom := stepFor(syn, set, dependency)
			to, okTo := stepFor(syn, set, dependent)
			if !okFrom || !okTo || from.ID == to.ID {
				continue
			}
			g.AddEdge(from.ID, to.ID, graph.Edge{
				Kind:     edge.Kind,
				Strength: edge.Strength,
				Context:  edge.Context,
			})
		}
	}

	for _, st := range syn.entitySteps {
		for _, pattern := range syn.patternSteps {
			g.AddEdge(st.ID, pattern.ID, graph.Edge{
				Kind:     graph.Requires,
				Strength: 1.0,
				Context:  map[string]string{"origin": "pattern"},
			})
		}
	}

	return g
}

// stepFor resolves an entity name to its individual step, if it has one
func stepFor(syn *synthesis, set *spec.Set, entityName string) (*Step, bool) {
	sp, ok := set.ByName(entityName)
	if !ok {
		return nil, false
	}
	st, ok := syn.byEntity[entityKey{Type: sp.EntityType, Name: sp.EntityName}]
	return st, ok
}
