// Package provider hosts the external collaborators the planner can consult.
// The planner only ever sees the narrow GroupRefiner contract, so a concrete
// strategy (an API-backed model, a static heuristic, a no-op) can be
// substituted without touching the scheduler.
package provider

import "context"

// EntitySummary is the request payload for group refinement: just enough of
// a specification for the collaborator to judge topical affinity.
type EntitySummary struct {
	EntityName   string   `json:"entity_name"`
	EntityType   string   `json:"entity_type"`
	Purpose      string   `json:"purpose"`
	Dependencies []string `json:"dependencies"`
}

// GroupRefiner proposes a topical grouping for entities the heuristic
// grouping passes could not place. The response maps proposed group names to
// entity names. Implementations must honor ctx cancellation; callers treat
// any error as "no refinement" and fall back to their heuristic grouping.
type GroupRefiner interface {
	// RefineGroups returns a mapping of group name -> entity names.
	// Entity names absent from the response stay unclassified.
	RefineGroups(ctx context.Context, entities []EntitySummary) (map[string][]string, error)

	// Name identifies the refiner for logging and error reporting
	Name() string

	// IsAvailable checks if the refiner is configured and ready to use
	IsAvailable() bool
}

// NoopRefiner never proposes any grouping. It stands in when no collaborator
// is configured and in tests that exercise the heuristic-only path.
type NoopRefiner struct{}

// RefineGroups implements GroupRefiner.RefineGroups
func (NoopRefiner) RefineGroups(ctx context.Context, entities []EntitySummary) (map[string][]string, error) {
	return map[string][]string{}, nil
}

// Name implements GroupRefiner.Name
func (NoopRefiner) Name() string { return "noop" }

// IsAvailable implements GroupRefiner.IsAvailable
func (NoopRefiner) IsAvailable() bool { return true }

// Compile-time verification
var _ GroupRefiner = NoopRefiner{}
