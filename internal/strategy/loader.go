package strategy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felixgeelhaar/respec/internal/errors"
)

// LoadStrategy reads a Strategy from a JSON file and validates it
func LoadStrategy(path string) (*Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFoundError(path)
		}
		return nil, fmt.Errorf("read strategy file: %w", err)
	}

	var s Strategy
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.NewFileUnmarshalError(path, "json", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("validate strategy: %w", err)
	}

	return &s, nil
}

// SaveStrategy writes a Strategy to a JSON file
func SaveStrategy(s *Strategy, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal strategy: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write strategy file: %w", err)
	}

	return nil
}
