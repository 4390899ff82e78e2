package spec

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/respec/internal/errors"
)

// Validate checks a single Specification for structural problems
func (s *Specification) Validate() error {
	if strings.TrimSpace(s.EntityName) == "" {
		return fmt.Errorf("entity name cannot be empty")
	}

	if ParseEntityType(string(s.EntityType)) != s.EntityType {
		return fmt.Errorf("entity type %q is not normalized", s.EntityType)
	}

	for i, field := range s.Inputs {
		if strings.TrimSpace(field.Name) == "" {
			return fmt.Errorf("input at index %d has empty name", i)
		}
	}

	for i, field := range s.Outputs {
		if strings.TrimSpace(field.Name) == "" {
			return fmt.Errorf("output at index %d has empty name", i)
		}
	}

	return nil
}

// Validate checks the whole Set. A duplicate entity name is fatal for the
// planning run: it is ambiguous which copy is authoritative, so the set is
// rejected rather than silently deduplicated.
func (s *Set) Validate() error {
	seen := make(map[string]bool, len(s.Specifications))

	for i, sp := range s.Specifications {
		if err := sp.Validate(); err != nil {
			return errors.New(errors.ErrCodeSpecInvalid,
				fmt.Sprintf("specification at index %d (%s) is invalid: %v", i, sp.EntityName, err))
		}

		if seen[sp.EntityName] {
			return errors.NewDuplicateEntityError(sp.EntityName)
		}
		seen[sp.EntityName] = true
	}

	return nil
}

// UnresolvedDependencies returns, per entity, the declared dependency names
// that do not identify another specification in the set. These never become
// graph edges; they are recorded for reporting only.
func (s *Set) UnresolvedDependencies() map[string][]string {
	known := make(map[string]bool, len(s.Specifications))
	for _, sp := range s.Specifications {
		known[sp.EntityName] = true
	}

	unresolved := make(map[string][]string)
	for _, sp := range s.Specifications {
		for _, dep := range sp.Dependencies {
			if !known[dep] {
				unresolved[sp.EntityName] = append(unresolved[sp.EntityName], dep)
			}
		}
	}

	return unresolved
}
