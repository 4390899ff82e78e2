package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSCCsAcyclic(t *testing.T) {
	g := New()
	g.AddEdge("a", "b", Edge{Kind: Requires, Strength: 1.0})
	g.AddEdge("b", "c", Edge{Kind: Requires, Strength: 1.0})

	components := SCCs(g)
	assert.Len(t, components, 3, "acyclic graph has singleton components")
}

func TestSCCsCollapsesCycle(t *testing.T) {
	g := New()
	g.AddEdge("a", "b", Edge{Kind: Requires, Strength: 1.0})
	g.AddEdge("b", "a", Edge{Kind: Requires, Strength: 1.0})
	g.AddEdge("b", "c", Edge{Kind: Requires, Strength: 1.0})

	components := SCCs(g)
	require.Len(t, components, 2)

	var cyclic []string
	for _, component := range components {
		if len(component) == 2 {
			cyclic = component
		}
	}
	assert.Equal(t, []string{"a", "b"}, cyclic, "component members sorted lexicographically")
}

func TestCondensationOrderRespectsInterComponentEdges(t *testing.T) {
	g := New()
	// Cycle {b, z} feeds into c; a feeds into the cycle.
	g.AddEdge("a", "z", Edge{Kind: Requires, Strength: 1.0})
	g.AddEdge("z", "b", Edge{Kind: Requires, Strength: 1.0})
	g.AddEdge("b", "z", Edge{Kind: Requires, Strength: 1.0})
	g.AddEdge("z", "c", Edge{Kind: Requires, Strength: 1.0})

	order := CondensationOrder(g)
	require.Len(t, order, 4)

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	assert.Less(t, pos["a"], pos["b"])
	assert.Less(t, pos["a"], pos["z"])
	assert.Less(t, pos["b"], pos["c"])
	assert.Less(t, pos["z"], pos["c"])
	// Within the collapsed component, lexicographic order
	assert.Less(t, pos["b"], pos["z"])
}

func TestCondensationOrderEmitsEveryNodeOnce(t *testing.T) {
	g := New()
	g.AddEdge("a", "b", Edge{Kind: Requires, Strength: 1.0})
	g.AddEdge("b", "c", Edge{Kind: Requires, Strength: 1.0})
	g.AddEdge("c", "a", Edge{Kind: Requires, Strength: 1.0})
	g.AddNode("island")

	order := CondensationOrder(g)
	assert.Len(t, order, 4)

	seen := make(map[string]int)
	for _, id := range order {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "node %s emitted %d times", id, n)
	}
}
