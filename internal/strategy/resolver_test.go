package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/respec/internal/graph"
	"github.com/felixgeelhaar/respec/internal/spec"
)

func TestResolveDeclaredDependencies(t *testing.T) {
	set := makeSet(
		makeSpec("alpha", spec.EntityClass, "bravo"),
		makeSpec("bravo", spec.EntityClass),
	)

	res := NewResolver(nil).Resolve(set)

	edge, ok := res.Graph.EdgeBetween("alpha", "bravo")
	require.True(t, ok)
	assert.Equal(t, graph.Requires, edge.Kind)
	assert.Equal(t, 1.0, edge.Strength)
	assert.Empty(t, res.Unresolved)
}

func TestResolveUnresolvedDependencyDropped(t *testing.T) {
	set := makeSet(
		makeSpec("alpha", spec.EntityClass, "ghost"),
	)

	res := NewResolver(nil).Resolve(set)

	assert.Equal(t, 0, res.Graph.EdgeCount())
	assert.Equal(t, []string{"ghost"}, res.Unresolved["alpha"])

	warnings := res.UnresolvedWarnings(set)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "ghost")
	assert.Contains(t, warnings[0], "alpha")
}

func TestResolveSelfDependency(t *testing.T) {
	set := makeSet(
		makeSpec("alpha", spec.EntityClass, "alpha"),
	)

	res := NewResolver(nil).Resolve(set)

	_, ok := res.Graph.EdgeBetween("alpha", "alpha")
	assert.True(t, ok)
	assert.Empty(t, res.Unresolved)
}

func TestResolveAnalyzerNeverOverridesDeclared(t *testing.T) {
	set := makeSet(
		spec.Specification{
			EntityName:   "alpha",
			EntityType:   spec.EntityClass,
			Dependencies: []string{"bravo"},
			Inputs:       []spec.Field{{Name: "token"}},
		},
		spec.Specification{
			EntityName: "bravo",
			EntityType: spec.EntityClass,
			Outputs:    []spec.Field{{Name: "token"}},
		},
	)

	res := NewResolver(nil, DefaultAnalyzers()...).Resolve(set)

	edge, ok := res.Graph.EdgeBetween("alpha", "bravo")
	require.True(t, ok)
	assert.Equal(t, 1.0, edge.Strength)
	assert.Equal(t, "declared", edge.Context["origin"])
}

func TestDataFlowAnalyzer(t *testing.T) {
	set := makeSet(
		spec.Specification{
			EntityName: "consumer",
			EntityType: spec.EntityFunction,
			Inputs:     []spec.Field{{Name: "Record", Type: "struct"}},
		},
		spec.Specification{
			EntityName: "producer",
			EntityType: spec.EntityFunction,
			Outputs:    []spec.Field{{Name: "record", Type: "struct"}},
		},
	)

	proposals := dataFlowAnalyzer{}.Propose(set.Specifications[0], set)

	require.Len(t, proposals, 1)
	assert.Equal(t, "producer", proposals[0].Target)
	assert.Equal(t, graph.Requires, proposals[0].Kind)
	assert.Equal(t, 0.7, proposals[0].Strength)
}

func TestReferenceAnalyzer(t *testing.T) {
	set := makeSet(
		spec.Specification{
			EntityName: "reporting",
			EntityType: spec.EntityModule,
			Purpose:    "Renders summaries produced by the ledger module",
		},
		spec.Specification{
			EntityName: "ledger",
			EntityType: spec.EntityModule,
		},
	)

	proposals := referenceAnalyzer{}.Propose(set.Specifications[0], set)

	require.Len(t, proposals, 1)
	assert.Equal(t, "ledger", proposals[0].Target)
	assert.Equal(t, graph.Enhances, proposals[0].Kind)
}

func TestReferenceAnalyzerTestEntities(t *testing.T) {
	set := makeSet(
		spec.Specification{
			EntityName: "ledger_test_suite",
			EntityType: spec.EntityModule,
			Purpose:    "Exercises the ledger module",
		},
		spec.Specification{
			EntityName: "ledger",
			EntityType: spec.EntityModule,
		},
	)

	proposals := referenceAnalyzer{}.Propose(set.Specifications[0], set)

	require.Len(t, proposals, 1)
	assert.Equal(t, graph.Tests, proposals[0].Kind)
}

func TestResourceAnalyzer(t *testing.T) {
	set := makeSet(
		spec.Specification{
			EntityName:  "writer",
			EntityType:  spec.EntityClass,
			Constraints: []string{"Must hold the postgres connection exclusively"},
		},
		spec.Specification{
			EntityName:  "reader",
			EntityType:  spec.EntityClass,
			Constraints: []string{"Reads from postgres replicas only"},
		},
	)

	proposals := resourceAnalyzer{}.Propose(set.Specifications[0], set)

	require.Len(t, proposals, 1)
	assert.Equal(t, "reader", proposals[0].Target)
	assert.Equal(t, graph.Optimizes, proposals[0].Kind)
	assert.Equal(t, "postgres", proposals[0].Context["resource"])
}
