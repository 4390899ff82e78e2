package ux

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathDefaults(t *testing.T) {
	pd := NewPathDefaults()

	if pd.SpecsFile() != filepath.Join(".respec", "specs.yaml") {
		t.Errorf("unexpected specs path: %s", pd.SpecsFile())
	}
	if pd.SpecsLockFile() != filepath.Join(".respec", "specs.lock.json") {
		t.Errorf("unexpected lock path: %s", pd.SpecsLockFile())
	}
	if pd.StrategyFile() != "strategy.json" {
		t.Errorf("unexpected strategy path: %s", pd.StrategyFile())
	}
}

func TestValidateRespecSetup(t *testing.T) {
	dir := t.TempDir()

	pd := &PathDefaults{RespecDir: filepath.Join(dir, ".respec")}
	if err := pd.ValidateRespecSetup(); err == nil {
		t.Fatal("expected error for missing directory")
	}

	if err := os.Mkdir(pd.RespecDir, 0750); err != nil {
		t.Fatal(err)
	}
	if err := pd.ValidateRespecSetup(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRequiredFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "specs.yaml")

	err := ValidateRequiredFile(path, "Specification set", "respec extract")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "respec extract") {
		t.Errorf("error should name the creation command: %v", err)
	}

	if writeErr := os.WriteFile(path, []byte("specifications: []"), 0600); writeErr != nil {
		t.Fatal(writeErr)
	}
	if err := ValidateRequiredFile(path, "Specification set", "respec extract"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEnhanceError(t *testing.T) {
	err := EnhanceError(os.ErrNotExist)
	if err == nil {
		t.Fatal("expected non-nil error")
	}

	enhanced := EnhanceError(&os.PathError{Op: "open", Path: ".respec/specs.yaml", Err: os.ErrNotExist})
	if !strings.Contains(enhanced.Error(), "specs.yaml") {
		t.Errorf("unexpected message: %v", enhanced)
	}
}

func TestEnhanceErrorNil(t *testing.T) {
	if EnhanceError(nil) != nil {
		t.Fatal("nil error should stay nil")
	}
}
