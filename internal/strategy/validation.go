package strategy

import (
	"fmt"

	"github.com/felixgeelhaar/respec/internal/errors"
)

// Validate checks the structural invariants every strategy must hold: step
// ids are unique, every referenced step exists, the execution order is a
// permutation of the step ids, and the order never schedules a step before
// one of its prerequisites.
func (s *Strategy) Validate() error {
	ids := make(map[string]bool, len(s.Steps))
	for _, st := range s.Steps {
		if st.ID == "" {
			return errors.NewStrategyInvalidError("step with empty id")
		}
		if ids[st.ID] {
			return errors.NewStrategyInvalidError(fmt.Sprintf("duplicate step id %q", st.ID))
		}
		ids[st.ID] = true
	}

	for _, st := range s.Steps {
		for _, dep := range st.DependsOn {
			if !ids[dep] {
				return errors.NewStrategyInvalidError(
					fmt.Sprintf("step %q depends on unknown step %q", st.ID, dep))
			}
		}
	}

	for id, deps := range s.Dependencies {
		if !ids[id] {
			return errors.NewStrategyInvalidError(
				fmt.Sprintf("dependency map references unknown step %q", id))
		}
		for _, dep := range deps {
			if !ids[dep] {
				return errors.NewStrategyInvalidError(
					fmt.Sprintf("dependency map references unknown step %q as a prerequisite of %q", dep, id))
			}
			if dep == id {
				return errors.NewStrategyInvalidError(
					fmt.Sprintf("step %q depends on itself", id))
			}
		}
	}

	if len(s.ExecutionOrder) != len(s.Steps) {
		return errors.NewStrategyInvalidError(fmt.Sprintf(
			"execution order has %d entries for %d steps", len(s.ExecutionOrder), len(s.Steps)))
	}

	position := make(map[string]int, len(s.ExecutionOrder))
	for i, id := range s.ExecutionOrder {
		if !ids[id] {
			return errors.NewStrategyInvalidError(
				fmt.Sprintf("execution order references unknown step %q", id))
		}
		if _, seen := position[id]; seen {
			return errors.NewStrategyInvalidError(
				fmt.Sprintf("execution order lists step %q twice", id))
		}
		position[id] = i
	}

	for id, deps := range s.Dependencies {
		for _, dep := range deps {
			if position[dep] > position[id] {
				return errors.NewCyclicDependencyError(fmt.Sprintf(
					"step %q is scheduled before its prerequisite %q", id, dep))
			}
		}
	}

	return nil
}
