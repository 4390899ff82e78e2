package strategy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategyRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strategy.json")

	original := validStrategy()
	original.Warnings = []string{"a warning"}
	original.Metadata = Metadata{TotalSpecifications: 2, SpecFingerprint: "abc"}

	require.NoError(t, SaveStrategy(original, path))

	loaded, err := LoadStrategy(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadStrategyMissingFile(t *testing.T) {
	_, err := LoadStrategy(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadStrategyInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strategy.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadStrategy(path)
	assert.Error(t, err)
}

func TestLoadStrategyRejectsInvalidStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strategy.json")

	s := validStrategy()
	s.ExecutionOrder = []string{"class_a_1", "setup_1"}
	require.NoError(t, SaveStrategy(s, path))

	_, err := LoadStrategy(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate strategy")
}
