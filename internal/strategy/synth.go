package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/felixgeelhaar/respec/internal/errors"
	"github.com/felixgeelhaar/respec/internal/spec"
)

// aggregateThreshold is the group size above which a group is implemented as
// one aggregate step instead of per-entity steps
const aggregateThreshold = 3

type entityKey struct {
	Type spec.EntityType
	Name string
}

// synthesis is the synthesizer output consumed by the wiring pass. byEntity
// resolves only per-entity steps; entities folded into an aggregate step are
// intentionally not resolvable, so declared dependencies on them are gated
// by the aggregate's group ordering rather than wired individually.
type synthesis struct {
	steps        []*Step
	byEntity     map[entityKey]*Step
	archSteps    []*Step
	entitySteps  []*Step
	patternSteps []*Step
	groupCount   int
}

// Synthesizer turns a specification set into implementation steps. Step ids
// are derived from the entity or group they implement, so the same input set
// always yields the same ids.
type Synthesizer struct {
	grouper *Grouper
	seen    map[string]bool
}

// NewSynthesizer creates a Synthesizer using the given grouper
func NewSynthesizer(grouper *Grouper) *Synthesizer {
	return &Synthesizer{grouper: grouper, seen: make(map[string]bool)}
}

// newStepID builds "<base>_<suffix>" where the suffix is the first 8 hex
// digits of a name-based UUID over the seed. A collision is a fatal planning
// error, never silently patched.
func (s *Synthesizer) newStepID(base, seed string) (string, error) {
	suffix := uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed)).String()[:8]
	id := fmt.Sprintf("%s_%s", base, suffix)
	if s.seen[id] {
		return "", errors.NewStepIDCollisionError(id)
	}
	s.seen[id] = true
	return id, nil
}

// Synthesize produces steps for every specification in the set:
// architecture entities become a setup step plus a components step, other
// entity kinds become per-entity or aggregate steps depending on group size,
// and pattern entities become pattern application steps.
func (s *Synthesizer) Synthesize(ctx context.Context, set *spec.Set) (*synthesis, error) {
	syn := &synthesis{byEntity: make(map[entityKey]*Step)}

	if err := s.synthesizeArchitecture(set, syn); err != nil {
		return nil, err
	}
	if err := s.synthesizeEntities(ctx, set, syn); err != nil {
		return nil, err
	}
	if err := s.synthesizePatterns(set, syn); err != nil {
		return nil, err
	}
	return syn, nil
}

func (s *Synthesizer) synthesizeArchitecture(set *spec.Set, syn *synthesis) error {
	for _, sp := range set.Specifications {
		if sp.EntityType != spec.EntityArchitecture {
			continue
		}

		setupID, err := s.newStepID("setup", "setup|"+sp.EntityName)
		if err != nil {
			return err
		}
		setup := &Step{
			ID:             setupID,
			Type:           StepSetup,
			Description:    fmt.Sprintf("Set up project structure for the %s architecture", sp.EntityName),
			ExpectedOutput: "Project skeleton with build and dependency configuration",
			ValidationCriteria: []string{
				"Project structure matches the architecture specification",
				"Build and dependency configuration is in place",
			},
			EntityName: sp.EntityName,
		}

		componentsID, err := s.newStepID("arch_components", "arch_components|"+sp.EntityName)
		if err != nil {
			return err
		}
		components := &Step{
			ID:             componentsID,
			Type:           StepCore,
			Description:    fmt.Sprintf("Implement core architectural components for %s", sp.EntityName),
			ExpectedOutput: "Core architectural components implemented",
			ValidationCriteria: []string{
				"All architectural components are implemented",
				"Components interact as the architecture specifies",
			},
			DependsOn:  []string{setup.ID},
			EntityName: sp.EntityName,
		}

		syn.steps = append(syn.steps, setup, components)
		syn.archSteps = append(syn.archSteps, setup, components)
	}
	return nil
}

func (s *Synthesizer) synthesizeEntities(ctx context.Context, set *spec.Set, syn *synthesis) error {
	// Partition by entity type, preserving first-seen type order and
	// entity order within each type
	var typeOrder []spec.EntityType
	byType := make(map[spec.EntityType][]spec.Specification)
	for _, sp := range set.Specifications {
		if sp.EntityType == spec.EntityArchitecture || sp.EntityType == spec.EntityPattern {
			continue
		}
		if _, ok := byType[sp.EntityType]; !ok {
			typeOrder = append(typeOrder, sp.EntityType)
		}
		byType[sp.EntityType] = append(byType[sp.EntityType], sp)
	}

	for _, et := range typeOrder {
		groups := s.grouper.Group(ctx, byType[et])
		syn.groupCount += len(groups)

		for _, group := range groups {
			// The common bucket is a residue, not a real group; its
			// members are always implemented individually
			if group.Name != commonGroup && len(group.Specs) > aggregateThreshold {
				if err := s.aggregateStep(et, group, syn); err != nil {
					return err
				}
				continue
			}
			for _, sp := range group.Specs {
				if err := s.entityStep(et, group.Name, sp, syn); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *Synthesizer) aggregateStep(et spec.EntityType, group Group, syn *synthesis) error {
	base := fmt.Sprintf("%s_%s", et, group.Name)
	id, err := s.newStepID(base, base)
	if err != nil {
		return err
	}

	names := make([]string, len(group.Specs))
	for i, sp := range group.Specs {
		names[i] = sp.EntityName
	}

	step := &Step{
		ID:   id,
		Type: stepTypeFor(et),
		Description: fmt.Sprintf("Implement the %s group of %s entities (%d items): %s",
			group.Name, et, len(group.Specs), joinNames(names)),
		ExpectedOutput: fmt.Sprintf("All %d %s entities in the %s group implemented", len(group.Specs), et, group.Name),
		ValidationCriteria: []string{
			"Implementations match specifications",
			"Unit tests pass",
		},
		Group: group.Name,
	}

	syn.steps = append(syn.steps, step)
	syn.entitySteps = append(syn.entitySteps, step)
	return nil
}

func (s *Synthesizer) entityStep(et spec.EntityType, groupName string, sp spec.Specification, syn *synthesis) error {
	base := fmt.Sprintf("%s_%s", et, sp.EntityName)
	id, err := s.newStepID(base, base)
	if err != nil {
		return err
	}

	desc := fmt.Sprintf("Implement %s %s", et, sp.EntityName)
	if sp.Purpose != "" {
		desc = fmt.Sprintf("%s: %s", desc, sp.Purpose)
	}

	step := &Step{
		ID:                 id,
		Type:               stepTypeFor(et),
		Description:        desc,
		ExpectedOutput:     fmt.Sprintf("%s %s implemented and covered by tests", et, sp.EntityName),
		ValidationCriteria: validationCriteriaFor(et),
		EntityName:         sp.EntityName,
		Group:              groupName,
	}

	syn.steps = append(syn.steps, step)
	syn.entitySteps = append(syn.entitySteps, step)
	syn.byEntity[entityKey{Type: et, Name: sp.EntityName}] = step
	return nil
}

func (s *Synthesizer) synthesizePatterns(set *spec.Set, syn *synthesis) error {
	for _, sp := range set.Specifications {
		if sp.EntityType != spec.EntityPattern {
			continue
		}

		base := fmt.Sprintf("pattern_%s", sp.EntityName)
		id, err := s.newStepID(base, base)
		if err != nil {
			return err
		}

		step := &Step{
			ID:             id,
			Type:           StepPattern,
			Description:    fmt.Sprintf("Apply the %s pattern across implemented components", sp.EntityName),
			ExpectedOutput: fmt.Sprintf("%s pattern applied consistently", sp.EntityName),
			ValidationCriteria: []string{
				"Pattern is applied consistently across components",
				"Existing behavior is preserved",
			},
			EntityName: sp.EntityName,
		}

		syn.steps = append(syn.steps, step)
		syn.patternSteps = append(syn.patternSteps, step)
		syn.byEntity[entityKey{Type: spec.EntityPattern, Name: sp.EntityName}] = step
	}
	return nil
}

// validationCriteriaFor returns the per-kind acceptance criteria for an
// individual entity step
func validationCriteriaFor(et spec.EntityType) []string {
	switch et {
	case spec.EntityClass:
		return []string{
			"All methods are implemented correctly",
			"Class interfaces are consistent with the specification",
		}
	case spec.EntityFunction:
		return []string{
			"Function handles the specified input cases",
			"Function produces the specified outputs",
		}
	case spec.EntityModule:
		return []string{
			"Module exports the specified interface",
			"Module imports resolve correctly",
		}
	default:
		return []string{
			"Implementations match specifications",
			"Unit tests pass",
		}
	}
}

func joinNames(names []string) string {
	const max = 5
	if len(names) <= max {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(names[:max], ", "), len(names)-max)
}
