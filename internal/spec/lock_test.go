package spec

import (
	"path/filepath"
	"testing"
)

func TestHashStable(t *testing.T) {
	sp := Specification{
		EntityName:   "Calculator",
		EntityType:   EntityClass,
		Purpose:      "A simple calculator class",
		Dependencies: []string{"MathUtils"},
		Inputs:       []Field{{Name: "a", Type: "number"}, {Name: "b", Type: "number"}},
		Constraints:  []string{"Must validate inputs are numbers"},
	}

	h1, err := Hash(sp)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	h2, err := Hash(sp)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if h1 != h2 {
		t.Errorf("hash not stable: %s != %s", h1, h2)
	}
}

func TestHashSensitiveToContent(t *testing.T) {
	a := Specification{EntityName: "A", EntityType: EntityClass, Purpose: "one"}
	b := Specification{EntityName: "A", EntityType: EntityClass, Purpose: "two"}

	ha, _ := Hash(a)
	hb, _ := Hash(b)

	if ha == hb {
		t.Errorf("expected different purposes to hash differently")
	}
}

func TestGenerateSetLock(t *testing.T) {
	set := &Set{
		Specifications: []Specification{
			{EntityName: "A", EntityType: EntityClass, Purpose: "a"},
			{EntityName: "B", EntityType: EntityModule, Purpose: "b"},
		},
	}

	lock, err := GenerateSetLock(set, "1.0")
	if err != nil {
		t.Fatalf("GenerateSetLock() error = %v", err)
	}

	if len(lock.Entities) != 2 {
		t.Errorf("expected 2 entity hashes, got %d", len(lock.Entities))
	}
	if lock.Fingerprint == "" {
		t.Error("expected non-empty fingerprint")
	}

	// Same ordered input must produce the same fingerprint
	again, err := GenerateSetLock(set, "1.0")
	if err != nil {
		t.Fatalf("GenerateSetLock() error = %v", err)
	}
	if again.Fingerprint != lock.Fingerprint {
		t.Errorf("fingerprint not stable across runs")
	}
}

func TestSetLockOrderSensitive(t *testing.T) {
	a := Specification{EntityName: "A", EntityType: EntityClass, Purpose: "a"}
	b := Specification{EntityName: "B", EntityType: EntityClass, Purpose: "b"}

	lock1, _ := GenerateSetLock(&Set{Specifications: []Specification{a, b}}, "1.0")
	lock2, _ := GenerateSetLock(&Set{Specifications: []Specification{b, a}}, "1.0")

	if lock1.Fingerprint == lock2.Fingerprint {
		t.Errorf("expected reordered set to change fingerprint")
	}
}

func TestSetLockRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.lock.json")

	set := &Set{
		Specifications: []Specification{
			{EntityName: "A", EntityType: EntityClass, Purpose: "a"},
		},
	}

	lock, err := GenerateSetLock(set, "1.0")
	if err != nil {
		t.Fatalf("GenerateSetLock() error = %v", err)
	}

	if err := SaveSetLock(lock, path); err != nil {
		t.Fatalf("SaveSetLock() error = %v", err)
	}

	loaded, err := LoadSetLock(path)
	if err != nil {
		t.Fatalf("LoadSetLock() error = %v", err)
	}

	if loaded.Fingerprint != lock.Fingerprint {
		t.Errorf("round trip changed fingerprint")
	}
	if loaded.Entities["A"] != lock.Entities["A"] {
		t.Errorf("round trip changed entity hash")
	}
}
