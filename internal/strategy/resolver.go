package strategy

import (
	"fmt"

	"github.com/felixgeelhaar/respec/internal/graph"
	"github.com/felixgeelhaar/respec/internal/log"
	"github.com/felixgeelhaar/respec/internal/spec"
)

// Analyzer proposes dependency edges a specification author did not declare.
// Proposals carry a strength below 1.0 so a cycle repair pass will always
// prefer removing an inferred edge over a declared one.
type Analyzer interface {
	// Name identifies the analyzer in edge context and logs
	Name() string

	// Propose returns candidate edges from the given specification to
	// other entities in the set. Implementations must not propose edges
	// to entities outside the set.
	Propose(sp spec.Specification, set *spec.Set) []ProposedEdge
}

// ProposedEdge is an analyzer's candidate dependency from the specification
// under analysis to Target
type ProposedEdge struct {
	Target   string
	Kind     graph.EdgeKind
	Strength float64
	Context  map[string]string
}

// Resolution is the resolver output: the entity-level dependency graph and
// the declared dependency names that matched nothing in the set. Edges run
// dependent -> dependency.
type Resolution struct {
	Graph      *graph.Graph
	Unresolved map[string][]string
}

// Resolver builds the entity dependency graph from declared dependencies and
// analyzer proposals
type Resolver struct {
	analyzers []Analyzer
	logger    *log.Logger
}

// NewResolver creates a Resolver with the given analyzers. Call
// DefaultAnalyzers for the standard heuristic set.
func NewResolver(logger *log.Logger, analyzers ...Analyzer) *Resolver {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Resolver{analyzers: analyzers, logger: logger}
}

// Resolve builds the dependency graph for the set. Declared dependencies
// become edges of full strength; names that match no entity in the set are
// recorded as unresolved and dropped. A declared self dependency becomes a
// reflexive edge the scheduler later ignores. Analyzer proposals never
// override a declared edge.
func (r *Resolver) Resolve(set *spec.Set) *Resolution {
	g := graph.New()
	unresolved := make(map[string][]string)

	for _, sp := range set.Specifications {
		g.AddNode(sp.EntityName)
	}

	for _, sp := range set.Specifications {
		for _, dep := range sp.Dependencies {
			if _, ok := set.ByName(dep); !ok {
				unresolved[sp.EntityName] = append(unresolved[sp.EntityName], dep)
				continue
			}
			g.AddEdge(sp.EntityName, dep, graph.Edge{
				Kind:     graph.Requires,
				Strength: 1.0,
				Context:  map[string]string{"origin": "declared"},
			})
		}
	}

	for _, sp := range set.Specifications {
		for _, analyzer := range r.analyzers {
			for _, pe := range analyzer.Propose(sp, set) {
				if pe.Target == sp.EntityName {
					continue
				}
				if !g.HasNode(pe.Target) {
					continue
				}
				g.AddEdge(sp.EntityName, pe.Target, graph.Edge{
					Kind:     pe.Kind,
					Strength: pe.Strength,
					Context:  pe.Context,
				})
			}
		}
	}

	if len(unresolved) > 0 {
		r.logger.Warn("dropped unresolved dependencies",
			"entities", len(unresolved))
	}

	return &Resolution{Graph: g, Unresolved: unresolved}
}

// UnresolvedWarnings renders the unresolved map as ordered warning strings,
// following the set's entity order
func (res *Resolution) UnresolvedWarnings(set *spec.Set) []string {
	var warnings []string
	for _, sp := range set.Specifications {
		for _, dep := range res.Unresolved[sp.EntityName] {
			warnings = append(warnings,
				fmt.Sprintf("dependency %q of entity %q matches no entity in the set and was ignored", dep, sp.EntityName))
		}
	}
	return warnings
}
