// Package ux holds the CLI conveniences: default paths, output formatting,
// and user-facing error presentation.
package ux

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathDefaults provides smart defaults for common file paths
type PathDefaults struct {
	RespecDir string
}

// NewPathDefaults creates a new PathDefaults with sensible defaults
func NewPathDefaults() *PathDefaults {
	return &PathDefaults{
		RespecDir: ".respec",
	}
}

// SpecsFile returns the default path to the extracted specification set
func (pd *PathDefaults) SpecsFile() string {
	return filepath.Join(pd.RespecDir, "specs.yaml")
}

// SpecsLockFile returns the default path to specs.lock.json
func (pd *PathDefaults) SpecsLockFile() string {
	return filepath.Join(pd.RespecDir, "specs.lock.json")
}

// StrategyFile returns the default path to the generated strategy
func (pd *PathDefaults) StrategyFile() string {
	return "strategy.json"
}

// ValidateRespecSetup checks if the .respec directory is initialized
func (pd *PathDefaults) ValidateRespecSetup() error {
	if _, err := os.Stat(pd.RespecDir); os.IsNotExist(err) {
		return fmt.Errorf(".respec directory not found. Place your extracted specifications under .respec/")
	}
	return nil
}

// ValidateRequiredFile checks if a required file exists and provides helpful error
func ValidateRequiredFile(path string, fileType string, creationCommand string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found at: %s\n\nRun '%s' to create it", fileType, path, creationCommand)
	} else if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	return nil
}

// SuggestNextSteps provides contextual next steps based on what exists
func SuggestNextSteps() string {
	defaults := NewPathDefaults()

	_, hasRespec := os.Stat(defaults.RespecDir)
	_, hasSpecs := os.Stat(defaults.SpecsFile())
	_, hasLock := os.Stat(defaults.SpecsLockFile())
	_, hasStrategy := os.Stat(defaults.StrategyFile())

	if os.IsNotExist(hasRespec) {
		return "Create a .respec directory and place your extracted specifications in .respec/specs.yaml"
	}

	if os.IsNotExist(hasSpecs) {
		return "Place your extracted specifications in .respec/specs.yaml"
	}

	if os.IsNotExist(hasLock) {
		return "Fingerprint your specifications with 'respec spec lock'"
	}

	if os.IsNotExist(hasStrategy) {
		return "Generate a strategy with 'respec strategy create'"
	}

	return "Review your strategy with 'respec strategy visualize'"
}
