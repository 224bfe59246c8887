package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "number").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// NumberType validates numeric values: any integer or float kind, and
// json.Number. Numeric strings are rejected.
type NumberType struct{}

func (t *NumberType) Name() string { return "number" }

func (t *NumberType) Validate(value any) error {
	_, err := ToFloat(value)
	return err
}

// --- Factory Functions ---

// Number creates a numeric type validator.
func Number() Type { return &NumberType{} }

// ToFloat converts a numeric value to float64.
func ToFloat(value any) (float64, error) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", n.String())
		}
		return f, nil
	}
	if value == nil {
		return 0, fmt.Errorf("expected number, got nil")
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) {
			return 0, fmt.Errorf("expected number, got NaN")
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
}

// ParseType converts a string type name to a Type.
func ParseType(typeStr string) (Type, error) {
	switch typeStr {
	case "number", "float", "int":
		return Number(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}

// ParseTypeMap converts a map of field names to type strings into a Schema.
// Example: {"extrusion_length": "number"}
func ParseTypeMap(typeMap map[string]string) (Schema, error) {
	result := make(Schema)
	for key, typeStr := range typeMap {
		t, err := ParseType(typeStr)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		result[key] = t
	}
	return result, nil
}
