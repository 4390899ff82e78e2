package strategy

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/respec/internal/graph"
	"github.com/felixgeelhaar/respec/internal/log"
	"github.com/felixgeelhaar/respec/internal/provider"
	"github.com/felixgeelhaar/respec/internal/spec"
)

// GenerateOptions configures a planning run. The zero value plans with the
// default analyzers, no refinement collaborator, and the global logger.
type GenerateOptions struct {
	// Refiner is consulted when heuristic grouping leaves a large
	// ungrouped residue. Nil disables refinement.
	Refiner provider.GroupRefiner

	// RefineTimeout bounds a single refinement call
	RefineTimeout time.Duration

	// Analyzers override the default dependency inference heuristics
	Analyzers []Analyzer

	// Logger overrides the global logger
	Logger *log.Logger

	// Fingerprint is recorded in strategy metadata to tie the output to
	// the specification set it was planned from
	Fingerprint string
}

// Generate plans an implementation strategy for the specification set.
//
// The pipeline runs resolution, grouping, synthesis, wiring, cycle repair,
// and scheduling in sequence. Only structural defects in the input abort
// planning (duplicate entity names, step id collisions); everything else
// degrades to a warning on the returned strategy.
func Generate(ctx context.Context, set *spec.Set, opts GenerateOptions) (*Strategy, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}

	analyzers := opts.Analyzers
	if analyzers == nil {
		analyzers = DefaultAnalyzers()
	}

	res := NewResolver(logger, analyzers...).Resolve(set)
	warnings := res.UnresolvedWarnings(set)

	grouper := NewGrouper(opts.Refiner, opts.RefineTimeout, logger)
	syn, err := NewSynthesizer(grouper).Synthesize(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("planning failed: %w", err)
	}

	stepGraph := wireSteps(syn, set, res)

	repaired, repairWarnings := repairCycles(stepGraph)
	warnings = append(warnings, repairWarnings...)

	order, scheduleWarnings := scheduleSteps(repaired)
	warnings = append(warnings, scheduleWarnings...)

	deps := dependencyMap(repaired)

	steps := make([]Step, len(syn.steps))
	for i, st := range syn.steps {
		st.DependsOn = deps[st.ID]
		steps[i] = *st
	}

	logger.Info("strategy generated",
		"specifications", len(set.Specifications),
		"steps", len(steps),
		"groups", syn.groupCount,
		"warnings", len(warnings))

	return &Strategy{
		Steps:          steps,
		Dependencies:   deps,
		ExecutionOrder: order,
		Warnings:       warnings,
		Metadata: Metadata{
			TotalSpecifications: len(set.Specifications),
			SpecificationTypes:  typeCounts(set),
			GroupCount:          syn.groupCount,
			SpecFingerprint:     opts.Fingerprint,
		},
	}, nil
}

// dependencyMap inverts the schedule graph into step id -> prerequisite ids.
// Every node gets an entry, so consumers can distinguish "no prerequisites"
// from "unknown step".
func dependencyMap(g *graph.Graph) map[string][]string {
	deps := make(map[string][]string, g.NodeCount())
	for _, id := range g.Nodes() {
		deps[id] = []string{}
	}
	for _, from := range g.Nodes() {
		for _, to := range g.Successors(from) {
			deps[to] = append(deps[to], from)
		}
	}
	return deps
}

func typeCounts(set *spec.Set) map[string]int {
	counts := make(map[string]int)
	for t, n := range set.CountByType() {
		counts[string(t)] = n
	}
	return counts
}
