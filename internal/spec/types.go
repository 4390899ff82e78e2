package spec

// EntityType is the closed set of entity kinds the planner branches on.
// Unknown kinds from the extraction phase are mapped to EntityGeneric.
type EntityType string

const (
	// EntityModule is a source module or package
	EntityModule EntityType = "module"

	// EntityClass is a class or comparable stateful type
	EntityClass EntityType = "class"

	// EntityFunction is a standalone function
	EntityFunction EntityType = "function"

	// EntityArchitecture describes an overall architectural style
	EntityArchitecture EntityType = "architecture"

	// EntityPattern describes a design pattern to apply
	EntityPattern EntityType = "pattern"

	// EntityGeneric is the catch-all for kinds the planner does not
	// treat specially
	EntityGeneric EntityType = "generic"
)

// ParseEntityType maps an extraction-phase kind string onto the closed enum
func ParseEntityType(s string) EntityType {
	switch EntityType(s) {
	case EntityModule, EntityClass, EntityFunction, EntityArchitecture, EntityPattern:
		return EntityType(s)
	default:
		return EntityGeneric
	}
}

// Field describes a named, typed input or output of an entity
type Field struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Example is an illustrative usage snippet attached to a specification.
// The planner carries examples through untouched.
type Example struct {
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Content string `json:"content" yaml:"content"`
}

// Specification is one unit of implementable work extracted from source.
// Specifications are created once by the extraction phase and are read-only
// thereafter; the planner never mutates them.
type Specification struct {
	EntityName   string     `json:"entity_name" yaml:"entity_name"`
	EntityType   EntityType `json:"entity_type" yaml:"entity_type"`
	Purpose      string     `json:"purpose" yaml:"purpose"`
	Dependencies []string   `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Inputs       []Field    `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	Outputs      []Field    `json:"outputs,omitempty" yaml:"outputs,omitempty"`
	Constraints  []string   `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Behavior     string     `json:"behavior,omitempty" yaml:"behavior,omitempty"`
	Examples     []Example  `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Set is an ordered sequence of Specifications. Iteration order is the
// insertion order of the extraction phase and is part of the determinism
// contract of planning.
type Set struct {
	Specifications []Specification `json:"specifications" yaml:"specifications"`
}

// ByName returns the specification with the given entity name, if present
func (s *Set) ByName(name string) (*Specification, bool) {
	for i := range s.Specifications {
		if s.Specifications[i].EntityName == name {
			return &s.Specifications[i], true
		}
	}
	return nil, false
}

// CountByType returns the number of specifications per entity type
func (s *Set) CountByType() map[EntityType]int {
	counts := make(map[EntityType]int)
	for _, sp := range s.Specifications {
		counts[sp.EntityType]++
	}
	return counts
}
