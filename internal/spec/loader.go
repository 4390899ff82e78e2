package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SetRepository defines the interface for loading and saving specification sets.
// This interface enables dependency injection and makes testing easier.
type SetRepository interface {
	// Load reads a Set from a file
	Load(path string) (*Set, error)

	// Save writes a Set to a file
	Save(set *Set, path string) error
}

// FileSetRepository implements SetRepository for file-based storage
type FileSetRepository struct{}

// NewFileSetRepository creates a new file-based set repository
func NewFileSetRepository() *FileSetRepository {
	return &FileSetRepository{}
}

// Load reads a Set from a YAML file
func (r *FileSetRepository) Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec file: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("unmarshal spec set: %w", err)
	}

	// Normalize entity types onto the closed enum
	for i := range set.Specifications {
		set.Specifications[i].EntityType = ParseEntityType(string(set.Specifications[i].EntityType))
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("validate spec set: %w", err)
	}

	return &set, nil
}

// Save writes a Set to a YAML file
func (r *FileSetRepository) Save(set *Set, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Marshal to YAML
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshal spec set: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write spec file: %w", err)
	}

	return nil
}

// Default instance for package-level functions
var defaultRepository = NewFileSetRepository()

// LoadSet reads a Set from a YAML file using the default repository.
func LoadSet(path string) (*Set, error) {
	return defaultRepository.Load(path)
}

// SaveSet writes a Set to a YAML file using the default repository.
func SaveSet(set *Set, path string) error {
	return defaultRepository.Save(set, path)
}

// Compile-time verification that FileSetRepository implements SetRepository
var _ SetRepository = (*FileSetRepository)(nil)
