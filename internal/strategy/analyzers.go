package strategy

import (
	"strings"

	"github.com/felixgeelhaar/respec/internal/graph"
	"github.com/felixgeelhaar/respec/internal/spec"
)

// DefaultAnalyzers returns the standard heuristic set: data-flow, name
// reference, and shared-resource affinity
func DefaultAnalyzers() []Analyzer {
	return []Analyzer{
		dataFlowAnalyzer{},
		referenceAnalyzer{},
		resourceAnalyzer{},
	}
}

// dataFlowAnalyzer proposes a dependency when an entity's input field names
// match another entity's output field names, i.e. one consumes what the
// other produces
type dataFlowAnalyzer struct{}

func (dataFlowAnalyzer) Name() string { return "data-flow" }

func (dataFlowAnalyzer) Propose(sp spec.Specification, set *spec.Set) []ProposedEdge {
	if len(sp.Inputs) == 0 {
		return nil
	}

	inputs := make(map[string]bool, len(sp.Inputs))
	for _, f := range sp.Inputs {
		if f.Name != "" {
			inputs[strings.ToLower(f.Name)] = true
		}
	}

	var proposals []ProposedEdge
	for _, other := range set.Specifications {
		if other.EntityName == sp.EntityName {
			continue
		}
		for _, out := range other.Outputs {
			if out.Name == "" || !inputs[strings.ToLower(out.Name)] {
				continue
			}
			proposals = append(proposals, ProposedEdge{
				Target:   other.EntityName,
				Kind:     graph.Requires,
				Strength: 0.7,
				Context:  map[string]string{"analyzer": "data-flow", "field": out.Name},
			})
			break
		}
	}
	return proposals
}

// referenceAnalyzer proposes a soft dependency when an entity's purpose or
// behavior text mentions another entity by name. Entities that look like
// test harnesses emit test-relationship edges instead.
type referenceAnalyzer struct{}

func (referenceAnalyzer) Name() string { return "reference" }

func (referenceAnalyzer) Propose(sp spec.Specification, set *spec.Set) []ProposedEdge {
	text := strings.ToLower(sp.Purpose + " " + sp.Behavior)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	kind := graph.Enhances
	if strings.Contains(strings.ToLower(sp.EntityName), "test") {
		kind = graph.Tests
	}

	var proposals []ProposedEdge
	for _, other := range set.Specifications {
		if other.EntityName == sp.EntityName || len(other.EntityName) < 4 {
			continue
		}
		if !strings.Contains(text, strings.ToLower(other.EntityName)) {
			continue
		}
		proposals = append(proposals, ProposedEdge{
			Target:   other.EntityName,
			Kind:     kind,
			Strength: 0.5,
			Context:  map[string]string{"analyzer": "reference"},
		})
	}
	return proposals
}

// resourceAnalyzer proposes a weak ordering hint between entities whose
// constraints mention the same resource token (a database, a cache, a file)
type resourceAnalyzer struct{}

func (resourceAnalyzer) Name() string { return "shared-resource" }

func (resourceAnalyzer) Propose(sp spec.Specification, set *spec.Set) []ProposedEdge {
	tokens := constraintTokens(sp.Constraints)
	if len(tokens) == 0 {
		return nil
	}

	var proposals []ProposedEdge
	for _, other := range set.Specifications {
		if other.EntityName == sp.EntityName {
			continue
		}
		shared := firstSharedToken(other.Constraints, tokens)
		if shared == "" {
			continue
		}
		proposals = append(proposals, ProposedEdge{
			Target:   other.EntityName,
			Kind:     graph.Optimizes,
			Strength: 0.3,
			Context:  map[string]string{"analyzer": "shared-resource", "resource": shared},
		})
	}
	return proposals
}

// constraintTokens extracts lowercase tokens of 4+ characters from
// constraint strings
func constraintTokens(constraints []string) map[string]bool {
	tokens := make(map[string]bool)
	for _, tok := range tokenize(constraints) {
		tokens[tok] = true
	}
	return tokens
}

// firstSharedToken returns the first token of the constraints, in text
// order, that appears in the given token set
func firstSharedToken(constraints []string, tokens map[string]bool) string {
	for _, tok := range tokenize(constraints) {
		if tokens[tok] {
			return tok
		}
	}
	return ""
}

func tokenize(constraints []string) []string {
	var out []string
	for _, c := range constraints {
		for _, tok := range strings.FieldsFunc(strings.ToLower(c), func(r rune) bool {
			return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
		}) {
			if len(tok) >= 4 {
				out = append(out, tok)
			}
		}
	}
	return out
}
