package extrude

import (
	"sort"
	"time"

	"github.com/aretw0/extrude/pkg/domain"
	"github.com/aretw0/extrude/pkg/generator"
	"github.com/aretw0/extrude/pkg/geom"
)

// NewResult wraps a unit's output into a publishable record.
func NewResult(id string, out generator.Output, at time.Time) *domain.Result {
	dims := make(map[string]float64, len(out.Dimensions))
	for k, v := range out.Dimensions {
		dims[k] = v
	}
	params := make(map[string]float64, len(out.Params))
	for k, v := range out.Params {
		params[k] = v
	}
	slot := out.Slot
	if slot == "" {
		slot = domain.ResultSlot
	}
	return &domain.Result{
		ID:         id,
		Slot:       slot,
		Unit:       out.Unit,
		Params:     params,
		Dimensions: dims,
		Solid:      Summarize(out.Solid),
		CreatedAt:  at.UTC(),
	}
}

// Summarize describes a solid in plain values.
func Summarize(s geom.Solid) domain.SolidSummary {
	if s.IsZero() {
		return domain.SolidSummary{}
	}
	b := s.Bounds()
	size := b.Size()
	profile := s.Profile()

	sum := domain.SolidSummary{
		Min:              vec3(b.Min),
		Max:              vec3(b.Max),
		Size:             vec3(size),
		CrossSectionArea: s.CrossSectionArea(),
		Volume:           s.Volume(),
		Faces:            len(s.Faces()),
		Edges:            len(s.Edges()),
		Outline:          points(profile.Outer()),
		Fingerprint:      s.Fingerprint(),
	}
	for _, c := range profile.Cavities() {
		sum.Cavities = append(sum.Cavities, points(c))
	}
	for _, h := range s.Holes() {
		sum.Holes = append(sum.Holes, domain.HoleSummary{Center: [2]float64{h.Center.X, h.Center.Y}, Radius: h.Radius})
	}

	blends := s.Blends()
	ids := make([]string, 0, len(blends))
	for id := range blends {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		sum.Blends = append(sum.Blends, domain.BlendSummary{Edge: id, Kind: string(blends[id].Kind), Size: blends[id].Size})
	}

	for _, f := range s.Features() {
		sum.Features = append(sum.Features, domain.FeatureSummary{Op: f.Op, Size: f.Size, Targets: f.Targets})
	}
	return sum
}

func vec3(v geom.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func points(p geom.Polygon) [][2]float64 {
	out := make([][2]float64, len(p))
	for i, v := range p {
		out[i] = [2]float64{v.X, v.Y}
	}
	return out
}
