package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aretw0/extrude/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a result's construction
// pipeline, from the resolved params to the published slot.
// It applies semantic styling:
// - Params: [/Parallelogram/] (input)
// - Base solid (box, extrude): ((Circle))
// - Edge blends (chamfer, fillet): [[Subroutine]]
// - Default: [Rectangle]
// - Slot: [(Database)]
func GenerateMermaid(r *domain.Result) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	paramsLabel := r.Unit
	if len(r.Params) > 0 {
		paramsLabel += " <br/> " + strings.Join(formatValues(r.Params), " <br/> ")
	}
	sb.WriteString(fmt.Sprintf("    params[/\"%s\"/]\n", sanitizeLabel(paramsLabel)))

	prev := "params"
	for i, f := range r.Solid.Features {
		id := fmt.Sprintf("f%d", i)

		opener, closer := "[", "]"
		switch f.Op {
		case "box", "extrude":
			opener, closer = "((", "))"
		case "chamfer", "fillet":
			opener, closer = "[[", "]]"
		}

		label := fmt.Sprintf("%s %s", f.Op, formatFloat(f.Size))
		if n := len(f.Targets); n > 0 {
			label = fmt.Sprintf("%s <br/> %d target(s)", label, n)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, sanitizeLabel(label), closer))
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", prev, id))
		prev = id
	}

	slot := r.Slot
	if slot == "" {
		slot = domain.ResultSlot
	}
	sb.WriteString(fmt.Sprintf("    slot[(\"%s\")]\n", sanitizeLabel(slot)))
	sb.WriteString(fmt.Sprintf("    %s --> slot\n", prev))
	return sb.String()
}

// formatValues renders a value map as sorted key=value lines.
func formatValues(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k + "=" + formatFloat(m[k])
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func sanitizeLabel(s string) string {
	// Escape double quotes for Mermaid labels
	return strings.ReplaceAll(s, "\"", "'")
}
