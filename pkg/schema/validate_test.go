package schema

import (
	"errors"
	"testing"
)

var testParams = []Param{
	{Name: "extrusion_length", Default: 150},
	{Name: "profile_scale", Default: 1},
	{Name: "wall_thickness", Default: 2},
}

func TestValidate_Success(t *testing.T) {
	data := map[string]any{
		"extrusion_length": 100,
		"profile_scale":    2.5,
		"unknown":          "ignored",
	}

	if err := ValidateParams(testParams, data); err != nil {
		t.Errorf("ValidateParams() error = %v, want nil", err)
	}
}

func TestValidate_MissingFieldsUseDefaults(t *testing.T) {
	if err := ValidateParams(testParams, map[string]any{}); err != nil {
		t.Errorf("ValidateParams() error = %v, want nil", err)
	}
	if err := ValidateParams(testParams, nil); err != nil {
		t.Errorf("ValidateParams(nil) error = %v, want nil", err)
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	data := map[string]any{
		"wall_thickness":   "thick",
		"extrusion_length": true,
		"profile_scale":    1,
	}

	err := ValidateParams(testParams, data)
	if err == nil {
		t.Fatal("ValidateParams() should return error for type mismatch")
	}

	aggr, ok := err.(*AggregateError)
	if !ok {
		t.Fatalf("error should be *AggregateError, got %T", err)
	}
	if len(aggr.Errors) != 2 {
		t.Fatalf("ValidateParams() = %d errors, want 2", len(aggr.Errors))
	}

	// Failures are reported in key order.
	first, ok := aggr.Errors[0].(*ValidationError)
	if !ok {
		t.Fatalf("error should be *ValidationError, got %T", aggr.Errors[0])
	}
	if first.Key != "extrusion_length" {
		t.Errorf("first error Key = %q, want extrusion_length", first.Key)
	}
	if second := aggr.Errors[1].(*ValidationError); second.Key != "wall_thickness" {
		t.Errorf("second error Key = %q, want wall_thickness", second.Key)
	}
}

func TestValidationErrors(t *testing.T) {
	err := ValidateParams(testParams, map[string]any{"profile_scale": "x"})
	wrapped := errors.Join(errors.New("frame"), err)

	if got := ValidationErrors(wrapped); len(got) != 1 {
		t.Errorf("ValidationErrors() = %v, want 1 error", got)
	}
	if !IsValidation(wrapped) {
		t.Error("IsValidation() = false, want true")
	}
	if IsValidation(errors.New("other")) {
		t.Error("IsValidation() = true for a plain error")
	}
	if ValidationErrors(errors.New("other")) != nil {
		t.Error("ValidationErrors() should be nil for a plain error")
	}
}

func TestDefaults(t *testing.T) {
	got := Defaults(testParams)
	if got["extrusion_length"] != 150.0 || got["wall_thickness"] != 2.0 {
		t.Errorf("Defaults() = %v", got)
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	if err := Validate(nil, map[string]any{"x": "y"}); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}
