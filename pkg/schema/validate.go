package schema

import "sort"

// Schema is a map of field names to their expected types.
// Example: {"extrusion_length": Number(), "profile_scale": Number()}
type Schema map[string]Type

// Param describes one named input with its default value.
type Param struct {
	Name        string  `json:"name" yaml:"name"`
	Default     float64 `json:"default" yaml:"default"`
	Description string  `json:"description" yaml:"description"`
}

// ForParams builds a numeric schema covering the given parameters.
func ForParams(params []Param) Schema {
	s := make(Schema, len(params))
	for _, p := range params {
		s[p.Name] = Number()
	}
	return s
}

// Validate checks the fields of data that the schema knows about. Absent
// fields and fields unknown to the schema are not errors.
// Failures are reported in key order.
func Validate(schema Schema, data map[string]any) error {
	if len(schema) == 0 {
		// No schema = no validation
		return nil
	}

	keys := make([]string, 0, len(schema))
	for k := range schema {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, fieldName := range keys {
		value, exists := data[fieldName]
		if !exists {
			continue
		}
		if err := schema[fieldName].Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// ValidateParams validates data against the schema of params.
func ValidateParams(params []Param, data map[string]any) error {
	return Validate(ForParams(params), data)
}

// Defaults returns the default value of every parameter keyed by name.
func Defaults(params []Param) map[string]any {
	out := make(map[string]any, len(params))
	for _, p := range params {
		out[p.Name] = p.Default
	}
	return out
}
