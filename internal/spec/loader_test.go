package spec

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.yaml")

	content := `specifications:
  - entity_name: Calculator
    entity_type: class
    purpose: A simple calculator class
    dependencies: []
  - entity_name: CalculatorApp
    entity_type: class
    purpose: User interface for the calculator
    dependencies:
      - Calculator
  - entity_name: helpers
    entity_type: widget
    purpose: Unknown kind should normalize to generic
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	set, err := LoadSet(path)
	if err != nil {
		t.Fatalf("LoadSet() error = %v", err)
	}

	if len(set.Specifications) != 3 {
		t.Fatalf("expected 3 specifications, got %d", len(set.Specifications))
	}

	if set.Specifications[1].Dependencies[0] != "Calculator" {
		t.Errorf("expected dependency Calculator, got %v", set.Specifications[1].Dependencies)
	}

	if set.Specifications[2].EntityType != EntityGeneric {
		t.Errorf("expected unknown kind to normalize to generic, got %s", set.Specifications[2].EntityType)
	}
}

func TestLoadSetRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.yaml")

	content := `specifications:
  - entity_name: A
    entity_type: class
    purpose: first
  - entity_name: A
    entity_type: module
    purpose: second
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSet(path); err == nil {
		t.Fatal("expected duplicate entity names to fail load")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "specs.yaml")

	set := &Set{
		Specifications: []Specification{
			{
				EntityName: "MathUtils",
				EntityType: EntityModule,
				Purpose:    "Utility module with mathematical functions",
				Inputs:     []Field{{Name: "x", Type: "number"}},
				Outputs:    []Field{{Name: "sqrt", Type: "method"}},
			},
		},
	}

	if err := SaveSet(set, path); err != nil {
		t.Fatalf("SaveSet() error = %v", err)
	}

	loaded, err := LoadSet(path)
	if err != nil {
		t.Fatalf("LoadSet() error = %v", err)
	}

	if loaded.Specifications[0].EntityName != "MathUtils" {
		t.Errorf("round trip lost entity name")
	}
	if loaded.Specifications[0].Inputs[0].Name != "x" {
		t.Errorf("round trip lost inputs")
	}
}
