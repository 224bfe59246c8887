package domain

// ResultDiff represents the changes between two results.
type ResultDiff struct {
	From string `json:"from"`
	To   string `json:"to"`

	// UnitChanged is set when the results come from different units.
	UnitChanged bool `json:"unit_changed,omitempty"`

	// Params and Dimensions contain only changed, added or deleted keys.
	// Deleted keys map to a nil To value.
	Params     map[string]Change `json:"params,omitempty"`
	Dimensions map[string]Change `json:"dimensions,omitempty"`

	// GeometryChanged is set when the solid fingerprints differ.
	GeometryChanged bool    `json:"geometry_changed,omitempty"`
	VolumeDelta     float64 `json:"volume_delta,omitempty"`
}

// Change is one value transition. A nil side means the key is absent.
type Change struct {
	From *float64 `json:"from"`
	To   *float64 `json:"to"`
}

// Diff calculates the difference between two results.
// It returns nil when either side is nil.
func Diff(from, to *Result) *ResultDiff {
	if from == nil || to == nil {
		return nil
	}

	return &ResultDiff{
		From:            from.ID,
		To:              to.ID,
		UnitChanged:     from.Unit != to.Unit,
		Params:          diffValues(from.Params, to.Params),
		Dimensions:      diffValues(from.Dimensions, to.Dimensions),
		GeometryChanged: from.Solid.Fingerprint != to.Solid.Fingerprint,
		VolumeDelta:     to.Solid.Volume - from.Solid.Volume,
	}
}

func diffValues(old, new map[string]float64) map[string]Change {
	delta := make(map[string]Change)

	// Added or modified
	for k, nv := range new {
		nv := nv
		ov, exists := old[k]
		if !exists {
			delta[k] = Change{To: &nv}
		} else if ov != nv {
			ov := ov
			delta[k] = Change{From: &ov, To: &nv}
		}
	}

	// Deleted
	for k, ov := range old {
		if _, exists := new[k]; !exists {
			ov := ov
			delta[k] = Change{From: &ov}
		}
	}

	if len(delta) == 0 {
		return nil
	}
	return delta
}

// IsEmpty checks whether the two results describe the same run inputs and
// geometry.
func (d *ResultDiff) IsEmpty() bool {
	return !d.UnitChanged &&
		len(d.Params) == 0 &&
		len(d.Dimensions) == 0 &&
		!d.GeometryChanged
}
