package domain

import "time"

// Result is the publication record of a unit run.
type Result struct {
	ID         string             `json:"id" yaml:"id"`
	Slot       string             `json:"slot" yaml:"slot"`
	Unit       string             `json:"unit" yaml:"unit"`
	Params     map[string]float64 `json:"params" yaml:"params"`
	Dimensions map[string]float64 `json:"dimensions" yaml:"dimensions"`
	Solid      SolidSummary       `json:"solid" yaml:"solid"`
	CreatedAt  time.Time          `json:"created_at" yaml:"created_at"`

	// Sealed holds the encrypted record when the result is an at-rest
	// envelope. It is empty on results handed to callers.
	Sealed string `json:"sealed,omitempty" yaml:"sealed,omitempty"`
}

// SolidSummary describes a solid in plain, serializable values.
type SolidSummary struct {
	Min              [3]float64 `json:"min" yaml:"min"`
	Max              [3]float64 `json:"max" yaml:"max"`
	Size             [3]float64 `json:"size" yaml:"size"`
	CrossSectionArea float64    `json:"cross_section_area" yaml:"cross_section_area"`
	Volume           float64    `json:"volume" yaml:"volume"`
	Faces            int        `json:"faces" yaml:"faces"`
	Edges            int        `json:"edges" yaml:"edges"`

	Outline  [][2]float64   `json:"outline" yaml:"outline"`
	Cavities [][][2]float64 `json:"cavities,omitempty" yaml:"cavities,omitempty"`
	Holes    []HoleSummary  `json:"holes,omitempty" yaml:"holes,omitempty"`
	Blends   []BlendSummary `json:"blends,omitempty" yaml:"blends,omitempty"`

	Features    []FeatureSummary `json:"features" yaml:"features"`
	Fingerprint string           `json:"fingerprint" yaml:"fingerprint"`
}

// HoleSummary is a through-hole parallel to Z.
type HoleSummary struct {
	Center [2]float64 `json:"center" yaml:"center"`
	Radius float64    `json:"radius" yaml:"radius"`
}

// BlendSummary is a chamfer or fillet recorded on a cap edge.
type BlendSummary struct {
	Edge string  `json:"edge" yaml:"edge"`
	Kind string  `json:"kind" yaml:"kind"`
	Size float64 `json:"size" yaml:"size"`
}

// FeatureSummary is one construction step.
type FeatureSummary struct {
	Op      string   `json:"op" yaml:"op"`
	Size    float64  `json:"size" yaml:"size"`
	Targets []string `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// Clone returns a deep copy.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.Params = cloneValues(r.Params)
	out.Dimensions = cloneValues(r.Dimensions)

	s := &out.Solid
	s.Outline = append([][2]float64(nil), r.Solid.Outline...)
	if r.Solid.Cavities != nil {
		s.Cavities = make([][][2]float64, len(r.Solid.Cavities))
		for i, c := range r.Solid.Cavities {
			s.Cavities[i] = append([][2]float64(nil), c...)
		}
	}
	s.Holes = append([]HoleSummary(nil), r.Solid.Holes...)
	s.Blends = append([]BlendSummary(nil), r.Solid.Blends...)
	if r.Solid.Features != nil {
		s.Features = make([]FeatureSummary, len(r.Solid.Features))
		for i, f := range r.Solid.Features {
			f.Targets = append([]string(nil), f.Targets...)
			s.Features[i] = f
		}
	}
	return &out
}

func cloneValues(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
