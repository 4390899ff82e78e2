package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/zeebo/blake3"
)

// SetLock is a canonical, hashed snapshot of a specification set. It pins
// the exact input a strategy was planned from so drift between planning
// runs can be detected.
type SetLock struct {
	Version     string            `json:"version"`
	Fingerprint string            `json:"fingerprint"`
	Entities    map[string]string `json:"entities"`
}

// Canonicalize returns a canonical JSON representation of a specification
// with stable ordering for consistent hashing
func Canonicalize(sp Specification) ([]byte, error) {
	data := map[string]interface{}{
		"entity_name": sp.EntityName,
		"entity_type": string(sp.EntityType),
		"purpose":     sp.Purpose,
	}

	if len(sp.Dependencies) > 0 {
		data["dependencies"] = sp.Dependencies
	}
	if sp.Behavior != "" {
		data["behavior"] = sp.Behavior
	}
	if len(sp.Constraints) > 0 {
		data["constraints"] = sp.Constraints
	}

	if len(sp.Inputs) > 0 {
		data["inputs"] = fieldMaps(sp.Inputs)
	}
	if len(sp.Outputs) > 0 {
		data["outputs"] = fieldMaps(sp.Outputs)
	}

	// Marshal with sorted keys
	return json.Marshal(sortKeys(data))
}

func fieldMaps(fields []Field) []map[string]interface{} {
	out := make([]map[string]interface{}, len(fields))
	for i, f := range fields {
		m := map[string]interface{}{"name": f.Name}
		if f.Type != "" {
			m["type"] = f.Type
		}
		out[i] = m
	}
	return out
}

// Hash computes the blake3 hash of a canonicalized specification
func Hash(sp Specification) (string, error) {
	canonical, err := Canonicalize(sp)
	if err != nil {
		return "", fmt.Errorf("canonicalize specification: %w", err)
	}

	hasher := blake3.New()
	if _, err := hasher.Write(canonical); err != nil {
		return "", fmt.Errorf("hash specification: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// GenerateSetLock creates a SetLock from a Set. The set fingerprint hashes
// the per-entity hashes in input order, so reordering the set changes the
// fingerprint even when the entities themselves are unchanged.
func GenerateSetLock(set *Set, version string) (*SetLock, error) {
	lock := &SetLock{
		Version:  version,
		Entities: make(map[string]string, len(set.Specifications)),
	}

	hasher := blake3.New()
	for _, sp := range set.Specifications {
		hash, err := Hash(sp)
		if err != nil {
			return nil, fmt.Errorf("hash entity %s: %w", sp.EntityName, err)
		}
		lock.Entities[sp.EntityName] = hash

		if _, err := hasher.Write([]byte(hash)); err != nil {
			return nil, fmt.Errorf("fingerprint set: %w", err)
		}
	}

	lock.Fingerprint = fmt.Sprintf("%x", hasher.Sum(nil))
	return lock, nil
}

// SaveSetLock writes a SetLock to disk
func SaveSetLock(lock *SetLock, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Marshal with indentation for readability
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal set lock: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write set lock: %w", err)
	}

	return nil
}

// LoadSetLock reads a SetLock from disk
func LoadSetLock(path string) (*SetLock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read set lock: %w", err)
	}

	var lock SetLock
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, fmt.Errorf("unmarshal set lock: %w", err)
	}

	return &lock, nil
}

// sortKeys recursively sorts map keys for stable JSON output
func sortKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sorted := make(map[string]interface{}, len(val))
		for _, k := range keys {
			sorted[k] = sortKeys(val[k])
		}
		return sorted

	case []interface{}:
		for i, item := range val {
			val[i] = sortKeys(item)
		}
		return val

	case []map[string]interface{}:
		for i, item := range val {
			val[i] = sortKeys(item).(map[string]interface{})
		}
		return val

	default:
		return v
	}
}
