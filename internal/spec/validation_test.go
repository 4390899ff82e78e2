package spec

import (
	"errors"
	"testing"

	respecerrors "github.com/felixgeelhaar/respec/internal/errors"
)

func TestSetValidateDuplicateEntity(t *testing.T) {
	set := &Set{
		Specifications: []Specification{
			{EntityName: "Calculator", EntityType: EntityClass, Purpose: "arithmetic"},
			{EntityName: "Calculator", EntityType: EntityModule, Purpose: "second copy"},
		},
	}

	err := set.Validate()
	if err == nil {
		t.Fatal("expected duplicate entity name to be rejected")
	}

	var respecErr *respecerrors.RespecError
	if !errors.As(err, &respecErr) {
		t.Fatalf("expected RespecError, got %T", err)
	}
	if respecErr.Code != respecerrors.ErrCodeSpecDuplicateEntity {
		t.Errorf("expected code %s, got %s", respecerrors.ErrCodeSpecDuplicateEntity, respecErr.Code)
	}
}

func TestSetValidateEmptyName(t *testing.T) {
	set := &Set{
		Specifications: []Specification{
			{EntityName: "  ", EntityType: EntityClass, Purpose: "unnamed"},
		},
	}

	if err := set.Validate(); err == nil {
		t.Fatal("expected empty entity name to be rejected")
	}
}

func TestSetValidateOK(t *testing.T) {
	set := &Set{
		Specifications: []Specification{
			{EntityName: "A", EntityType: EntityClass, Purpose: "a"},
			{EntityName: "B", EntityType: EntityFunction, Purpose: "b", Dependencies: []string{"A"}},
		},
	}

	if err := set.Validate(); err != nil {
		t.Fatalf("expected valid set, got: %v", err)
	}
}

func TestParseEntityType(t *testing.T) {
	tests := []struct {
		in   string
		want EntityType
	}{
		{"module", EntityModule},
		{"class", EntityClass},
		{"function", EntityFunction},
		{"architecture", EntityArchitecture},
		{"pattern", EntityPattern},
		{"interface", EntityGeneric},
		{"", EntityGeneric},
	}

	for _, tt := range tests {
		if got := ParseEntityType(tt.in); got != tt.want {
			t.Errorf("ParseEntityType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUnresolvedDependencies(t *testing.T) {
	set := &Set{
		Specifications: []Specification{
			{EntityName: "A", EntityType: EntityClass, Dependencies: []string{"B", "Missing"}},
			{EntityName: "B", EntityType: EntityClass},
		},
	}

	unresolved := set.UnresolvedDependencies()

	if len(unresolved) != 1 {
		t.Fatalf("expected one entity with unresolved deps, got %d", len(unresolved))
	}
	if len(unresolved["A"]) != 1 || unresolved["A"][0] != "Missing" {
		t.Errorf("expected A to have unresolved dep 'Missing', got %v", unresolved["A"])
	}
}

func TestByName(t *testing.T) {
	set := &Set{
		Specifications: []Specification{
			{EntityName: "A", EntityType: EntityClass},
		},
	}

	if _, ok := set.ByName("A"); !ok {
		t.Errorf("expected to find entity A")
	}
	if _, ok := set.ByName("Z"); ok {
		t.Errorf("did not expect to find entity Z")
	}
}
