package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStrategy() *Strategy {
	return &Strategy{
		Steps: []Step{
			{ID: "setup_1", Type: StepSetup, Description: "setup"},
			{ID: "class_a_1", Type: StepCore, Description: "a", DependsOn: []string{"setup_1"}},
		},
		Dependencies: map[string][]string{
			"setup_1":   {},
			"class_a_1": {"setup_1"},
		},
		ExecutionOrder: []string{"setup_1", "class_a_1"},
	}
}

func TestValidateAcceptsWellFormedStrategy(t *testing.T) {
	assert.NoError(t, validStrategy().Validate())
}

func TestValidateRejectsDuplicateStepIDs(t *testing.T) {
	s := validStrategy()
	s.Steps = append(s.Steps, Step{ID: "setup_1"})

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate step id")
}

func TestValidateRejectsUnknownDependency(t *testing.T) {
	s := validStrategy()
	s.Dependencies["class_a_1"] = []string{"missing"}

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")
}

func TestValidateRejectsSelfDependency(t *testing.T) {
	s := validStrategy()
	s.Dependencies["class_a_1"] = []string{"class_a_1"}

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depends on itself")
}

func TestValidateRejectsIncompleteOrder(t *testing.T) {
	s := validStrategy()
	s.ExecutionOrder = []string{"setup_1"}

	assert.Error(t, s.Validate())
}

func TestValidateRejectsOrderViolatingDependencies(t *testing.T) {
	s := validStrategy()
	s.ExecutionOrder = []string{"class_a_1", "setup_1"}

	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduled before its prerequisite")
}

func TestValidateRejectsUnknownStepInOrder(t *testing.T) {
	s := validStrategy()
	s.ExecutionOrder = []string{"setup_1", "phantom"}

	assert.Error(t, s.Validate())
}
