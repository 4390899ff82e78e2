// Package strategy turns an extracted specification set into an ordered,
// dependency-respecting implementation plan: it resolves declared and
// inferred dependencies into a graph, clusters related entities, synthesizes
// implementation steps, repairs cycles, and schedules a deterministic
// execution order.
package strategy

import "github.com/felixgeelhaar/respec/internal/spec"

// StepType classifies an implementation step
type StepType string

const (
	// StepSetup prepares project structure and configuration
	StepSetup StepType = "setup"

	// StepCore implements core components
	StepCore StepType = "core"

	// StepFeature implements feature-level functionality
	StepFeature StepType = "feature"

	// StepIntegration connects implemented components
	StepIntegration StepType = "integration"

	// StepTest implements tests
	StepTest StepType = "test"

	// StepOptimization tunes performance
	StepOptimization StepType = "optimization"

	// StepPattern applies a design pattern atop implemented components
	StepPattern StepType = "pattern"
)

// Step is the unit the scheduler orders. A step is immutable after
// synthesis except for DependsOn, which the wiring and cycle-repair passes
// populate before scheduling.
type Step struct {
	ID                 string   `json:"id"`
	Type               StepType `json:"type"`
	Description        string   `json:"description"`
	ExpectedOutput     string   `json:"expected_output"`
	ValidationCriteria []string `json:"validation_criteria"`
	DependsOn          []string `json:"depends_on"`

	// EntityName and Group record what the step was synthesized from.
	// Aggregate steps carry a group name instead of an entity name.
	EntityName string `json:"entity_name,omitempty"`
	Group      string `json:"group,omitempty"`
}

// Metadata summarizes the planning run
type Metadata struct {
	TotalSpecifications int            `json:"total_specifications"`
	SpecificationTypes  map[string]int `json:"specification_types"`
	GroupCount          int            `json:"group_count"`
	SpecFingerprint     string         `json:"spec_fingerprint,omitempty"`
}

// Strategy is the planning output: the synthesized steps, the acyclic
// dependency map over their ids, and an execution order that is a valid
// topological ordering of that map. Warnings record every non-fatal repair
// the planner performed (dropped unresolved names, removed cycle edges,
// collaborator fallbacks).
type Strategy struct {
	Steps          []Step              `json:"steps"`
	Dependencies   map[string][]string `json:"dependencies"`
	ExecutionOrder []string            `json:"execution_order"`
	Warnings       []string            `json:"warnings,omitempty"`
	Metadata       Metadata            `json:"metadata"`
}

// StepByID returns the step with the given id, if present
func (s *Strategy) StepByID(id string) (*Step, bool) {
	for i := range s.Steps {
		if s.Steps[i].ID == id {
			return &s.Steps[i], true
		}
	}
	return nil, false
}

// stepTypeFor maps an entity kind onto the step type its implementation
// step carries
func stepTypeFor(t spec.EntityType) StepType {
	switch t {
	case spec.EntityArchitecture:
		return StepSetup
	case spec.EntityPattern:
		return StepPattern
	case spec.EntityModule, spec.EntityClass:
		return StepCore
	default:
		return StepFeature
	}
}
