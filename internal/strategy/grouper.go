package strategy

import (
	"context"
	"strings"
	"time"

	"github.com/felixgeelhaar/respec/internal/log"
	"github.com/felixgeelhaar/respec/internal/provider"
	"github.com/felixgeelhaar/respec/internal/spec"
)

// commonGroup is the catch-all bucket for entities with no naming affinity
const commonGroup = "common"

// commonRefineThreshold is how large the common bucket may grow before the
// grouper asks the refinement collaborator for help
const commonRefineThreshold = 5

// defaultRefineTimeout bounds the collaborator call; planning never blocks
// on refinement longer than this
const defaultRefineTimeout = 30 * time.Second

// Group is a named cluster of specifications sharing a naming or topical
// affinity. Groups exist only during planning; they do not outlive step
// synthesis.
type Group struct {
	Name  string
	Specs []spec.Specification
}

// Grouper partitions specifications into groups using name heuristics, with
// an optional collaborator as a refinement fallback for large ungrouped
// residues.
type Grouper struct {
	refiner provider.GroupRefiner
	timeout time.Duration
	logger  *log.Logger
}

// NewGrouper creates a Grouper. A nil refiner disables refinement entirely;
// the heuristic passes then stand alone.
func NewGrouper(refiner provider.GroupRefiner, timeout time.Duration, logger *log.Logger) *Grouper {
	if timeout == 0 {
		timeout = defaultRefineTimeout
	}
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Grouper{refiner: refiner, timeout: timeout, logger: logger}
}

// Group partitions the given specifications. The heuristic passes are
// deterministic for a stable input order; the collaborator is the only
// non-deterministic input and its absence or failure never fails the run.
// Returned groups preserve creation order and contain no empty groups.
func (g *Grouper) Group(ctx context.Context, specs []spec.Specification) []Group {
	if len(specs) == 0 {
		return nil
	}

	order := []string{commonGroup}
	members := map[string][]spec.Specification{commonGroup: nil}

	for _, sp := range specs {
		assigned := false

		// Join an existing group when the entity name shares a prefix or
		// substring with the group name
		for _, name := range order {
			if name == commonGroup {
				continue
			}
			if strings.HasPrefix(sp.EntityName, name) || strings.Contains(sp.EntityName, name) {
				members[name] = append(members[name], sp)
				assigned = true
				break
			}
		}

		// Otherwise derive a candidate group from the leading name token
		if !assigned {
			parts := strings.Split(sp.EntityName, "_")
			if len(parts) > 1 && len(parts[0]) > 3 {
				name := strings.ToLower(parts[0])
				if _, ok := members[name]; !ok {
					order = append(order, name)
					members[name] = nil
				}
				members[name] = append(members[name], sp)
				assigned = true
			}
		}

		if !assigned {
			members[commonGroup] = append(members[commonGroup], sp)
		}
	}

	// A large common bucket means the heuristics found no structure; ask
	// the collaborator to propose a topical grouping for the residue.
	if len(members[commonGroup]) > commonRefineThreshold && g.refiner != nil && g.refiner.IsAvailable() {
		order = g.refine(ctx, order, members)
	}

	groups := make([]Group, 0, len(order))
	for _, name := range order {
		if len(members[name]) == 0 {
			continue
		}
		groups = append(groups, Group{Name: name, Specs: members[name]})
	}
	return groups
}

// refine sends the common-bucket residue to the collaborator and applies its
// proposed grouping. Anything the collaborator fails to classify, or the
// whole residue if the call errors or times out, stays in the common bucket.
func (g *Grouper) refine(ctx context.Context, order []string, members map[string][]spec.Specification) []string {
	residue := members[commonGroup]

	summaries := make([]provider.EntitySummary, len(residue))
	for i, sp := range residue {
		summaries[i] = provider.EntitySummary{
			EntityName:   sp.EntityName,
			EntityType:   string(sp.EntityType),
			Purpose:      sp.Purpose,
			Dependencies: sp.Dependencies,
		}
	}

	refineCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	proposed, err := g.refiner.RefineGroups(refineCtx, summaries)
	if err != nil {
		g.logger.WithError(err).Warn("group refinement failed, keeping heuristic grouping",
			"refiner", g.refiner.Name(), "residue", len(residue))
		return order
	}

	// Index the proposal by entity name; entities the collaborator left
	// out or assigned to "common" stay where they are.
	assignment := make(map[string]string)
	var proposedOrder []string
	for name, entities := range proposed {
		if name == commonGroup {
			continue
		}
		for _, entity := range entities {
			if _, taken := assignment[entity]; !taken {
				assignment[entity] = name
			}
		}
		proposedOrder = append(proposedOrder, name)
	}

	// Map iteration order is random; fix group creation order by first
	// residue entity that lands in each group.
	var remaining []spec.Specification
	created := make(map[string]bool)
	for _, sp := range residue {
		name, ok := assignment[sp.EntityName]
		if !ok {
			remaining = append(remaining, sp)
			continue
		}
		if _, exists := members[name]; !exists {
			members[name] = nil
		}
		if !created[name] && !containsString(order, name) {
			order = append(order, name)
			created[name] = true
		}
		members[name] = append(members[name], sp)
	}
	members[commonGroup] = remaining

	g.logger.Info("group refinement applied",
		"refiner", g.refiner.Name(),
		"proposed_groups", len(proposedOrder),
		"classified", len(residue)-len(remaining),
		"residue", len(remaining))

	return order
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
