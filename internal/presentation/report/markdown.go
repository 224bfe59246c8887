// Package report renders results and diffs as markdown.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/extrude/internal/presentation/graph"
	"github.com/aretw0/extrude/pkg/domain"
)

// Markdown summarizes a result: params, dimensions, bounds, mass
// properties, features and the construction pipeline.
func Markdown(r *domain.Result) string {
	var sb strings.Builder
	s := r.Solid

	fmt.Fprintf(&sb, "# %s `%s`\n\n", r.Unit, r.ID)
	fmt.Fprintf(&sb, "Published to slot `%s` at %s.\n\n", r.Slot, r.CreatedAt.Format("2006-01-02 15:04:05 MST"))

	sb.WriteString("## Parameters\n\n")
	writeValues(&sb, r.Params)

	sb.WriteString("## Dimensions\n\n")
	writeValues(&sb, r.Dimensions)

	sb.WriteString("## Solid\n\n")
	sb.WriteString("| Property | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Size | %s × %s × %s |\n", num(s.Size[0]), num(s.Size[1]), num(s.Size[2]))
	fmt.Fprintf(&sb, "| Min | (%s, %s, %s) |\n", num(s.Min[0]), num(s.Min[1]), num(s.Min[2]))
	fmt.Fprintf(&sb, "| Max | (%s, %s, %s) |\n", num(s.Max[0]), num(s.Max[1]), num(s.Max[2]))
	fmt.Fprintf(&sb, "| Cross-section area | %s |\n", num(s.CrossSectionArea))
	fmt.Fprintf(&sb, "| Volume | %s |\n", num(s.Volume))
	fmt.Fprintf(&sb, "| Faces / edges | %d / %d |\n", s.Faces, s.Edges)
	fmt.Fprintf(&sb, "| Cavities | %d |\n", len(s.Cavities))
	fmt.Fprintf(&sb, "| Fingerprint | `%s` |\n\n", shortHash(s.Fingerprint))

	if len(s.Holes) > 0 {
		sb.WriteString("### Holes\n\n")
		for _, h := range s.Holes {
			fmt.Fprintf(&sb, "- radius %s at (%s, %s)\n", num(h.Radius), num(h.Center[0]), num(h.Center[1]))
		}
		sb.WriteString("\n")
	}

	if len(s.Blends) > 0 {
		sb.WriteString("### Cap edge blends\n\n")
		for _, b := range s.Blends {
			fmt.Fprintf(&sb, "- `%s`: %s %s\n", b.Edge, b.Kind, num(b.Size))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Pipeline\n\n```mermaid\n")
	sb.WriteString(graph.GenerateMermaid(r))
	sb.WriteString("```\n")
	return sb.String()
}

// DiffMarkdown renders the changes between two results.
func DiffMarkdown(d *domain.ResultDiff) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Diff `%s` → `%s`\n\n", d.From, d.To)
	if d.IsEmpty() {
		sb.WriteString("No differences.\n")
		return sb.String()
	}
	if d.UnitChanged {
		sb.WriteString("- The results come from **different units**.\n")
	}
	if d.GeometryChanged {
		fmt.Fprintf(&sb, "- Geometry changed (volume Δ %s).\n", num(d.VolumeDelta))
	}
	sb.WriteString("\n")
	writeChanges(&sb, "Parameters", d.Params)
	writeChanges(&sb, "Dimensions", d.Dimensions)
	return sb.String()
}

func writeValues(sb *strings.Builder, m map[string]float64) {
	if len(m) == 0 {
		sb.WriteString("_none_\n\n")
		return
	}
	sb.WriteString("| Name | Value |\n|---|---|\n")
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(sb, "| %s | %s |\n", k, num(m[k]))
	}
	sb.WriteString("\n")
}

func writeChanges(sb *strings.Builder, title string, changes map[string]domain.Change) {
	if len(changes) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n| Name | From | To |\n|---|---|---|\n", title)
	keys := make([]string, 0, len(changes))
	for k := range changes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c := changes[k]
		fmt.Fprintf(sb, "| %s | %s | %s |\n", k, optional(c.From), optional(c.To))
	}
	sb.WriteString("\n")
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func optional(v *float64) string {
	if v == nil {
		return "—"
	}
	return num(*v)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
