package renter

import (
	"context"
	"testing"
)

func strptr(s string) *string { return &s }
func f64ptr(f float64) *float64 { return &f }
func slptr(s []string) *[]string { return &s }

func TestPatchApplyOnlyGivenFields(t *testing.T) {
	cr := &CarRenter{
		Name:        "Elite Motors",
		Email:       "contact@elite.example",
		Phone:       "+1-555-0100",
		Rating:      4.8,
		Specialties: StringList{"exotics"},
	}

	p := Patch{
		Phone:  strptr("+1-555-0199"),
		Rating: f64ptr(4.9),
	}
	p.Apply(cr)

	if cr.Name != "Elite Motors" {
		t.Fatalf("name should be untouched, got %q", cr.Name)
	}
	if cr.Email != "contact@elite.example" {
		t.Fatalf("email should be untouched, got %q", cr.Email)
	}
	if cr.Phone != "+1-555-0199" {
		t.Fatalf("phone not applied, got %q", cr.Phone)
	}
	if cr.Rating != 4.9 {
		t.Fatalf("rating not applied, got %v", cr.Rating)
	}
	if len(cr.Specialties) != 1 || cr.Specialties[0] != "exotics" {
		t.Fatalf("specialties should be untouched, got %v", cr.Specialties)
	}
}

func TestPatchApplyListOverwrite(t *testing.T) {
	cr := &CarRenter{Specialties: StringList{"exotics", "classics"}}

	p := Patch{Specialties: slptr([]string{"suvs"})}
	p.Apply(cr)

	if len(cr.Specialties) != 1 || cr.Specialties[0] != "suvs" {
		t.Fatalf("expected list field full overwrite, got %v", cr.Specialties)
	}
}

func TestPatchApplyEmptyStringClears(t *testing.T) {
	cr := &CarRenter{Description: "since 1998"}

	p := Patch{Description: strptr("")}
	p.Apply(cr)

	if cr.Description != "" {
		t.Fatalf("non-nil empty string should clear the field, got %q", cr.Description)
	}
}

func TestPatchApplyNilTarget(t *testing.T) {
	p := Patch{Name: strptr("x")}
	p.Apply(nil) // 不应 panic
}

func TestUpdateRenterRejectsEmptyName(t *testing.T) {
	svc := NewService(NewRepo(nil))

	if _, err := svc.UpdateRenter(context.Background(), "some-id", Patch{Name: strptr("  ")}); err == nil {
		t.Fatalf("expected empty name to be rejected")
	}
}

func TestCreateRenterRequiresName(t *testing.T) {
	svc := NewService(NewRepo(nil))

	if _, err := svc.CreateRenter(context.Background(), CreateRenterInput{Name: "  "}); err == nil {
		t.Fatalf("expected name required error")
	}
}
