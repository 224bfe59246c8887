package schema

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumberType(t *testing.T) {
	typ := Number()

	if typ.Name() != "number" {
		t.Errorf("Name() = %q, want %q", typ.Name(), "number")
	}

	tests := []struct {
		value   any
		wantErr bool
	}{
		{42, false},
		{int8(-3), false},
		{uint16(7), false},
		{float32(1.5), false},
		{0.0, false},
		{-12.25, false},
		{json.Number("2.5"), false},
		{json.Number("abc"), true},
		{math.NaN(), true},
		{"42", true},
		{true, true},
		{nil, true},
		{[]float64{1}, true},
	}

	for _, tt := range tests {
		err := typ.Validate(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		value any
		want  float64
	}{
		{3, 3},
		{int64(-9), -9},
		{uint8(200), 200},
		{float32(0.5), 0.5},
		{2.75, 2.75},
		{json.Number("150"), 150},
	}

	for _, tt := range tests {
		got, err := ToFloat(tt.value)
		if err != nil {
			t.Fatalf("ToFloat(%v) error = %v", tt.value, err)
		}
		if got != tt.want {
			t.Errorf("ToFloat(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestParseTypeMap(t *testing.T) {
	s, err := ParseTypeMap(map[string]string{"extrusion_length": "number", "profile_scale": "float"})
	if err != nil {
		t.Fatalf("ParseTypeMap() error = %v", err)
	}
	if len(s) != 2 {
		t.Errorf("len = %d, want 2", len(s))
	}

	if _, err := ParseTypeMap(map[string]string{"name": "string"}); err == nil {
		t.Error("ParseTypeMap() should reject unsupported types")
	}
}

func TestSchemaJSON(t *testing.T) {
	in := Schema{"extrusion_length": Number()}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"extrusion_length":"number"}` {
		t.Errorf("Marshal() = %s", data)
	}

	var out Schema
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out["extrusion_length"].Name() != "number" {
		t.Errorf("round trip lost the type: %v", out)
	}
}

func TestSchemaYAML(t *testing.T) {
	v, err := Schema{"profile_scale": Number()}.MarshalYAML()
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	if got := v.(map[string]string); got["profile_scale"] != "number" {
		t.Errorf("MarshalYAML() = %v", got)
	}
}
