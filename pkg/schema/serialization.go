package schema

import (
	"encoding/json"
	"fmt"
)

func (s Schema) names() (map[string]string, error) {
	raw := make(map[string]string, len(s))
	for key, typ := range s {
		if typ == nil {
			return nil, fmt.Errorf("field %s: type is nil", key)
		}
		raw[key] = typ.Name()
	}
	return raw, nil
}

// MarshalJSON writes the schema as field name -> type name.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	raw, err := s.names()
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}

// MarshalYAML writes the schema as field name -> type name.
func (s Schema) MarshalYAML() (any, error) {
	if s == nil {
		return nil, nil
	}
	return s.names()
}

// UnmarshalJSON reads a field name -> type name map, so API clients can
// decode published unit catalogs.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	if raw == nil {
		*s = nil
		return nil
	}

	parsed, err := ParseTypeMap(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
