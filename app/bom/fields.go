package bom

import (
	"strings"

	"github.com/emmertex/jlcpcb-scripts/app/csv"
)

// isPlaceholder reports whether a cell value counts as "no data" when
// resolving part numbers.
func isPlaceholder(v string) bool {
	switch strings.ToLower(v) {
	case "", "n/a", "na":
		return true
	}
	return false
}

// PriorityValue returns the first usable value among the candidate columns,
// evaluated in order. A value is usable when it is non-empty after cleaning
// and is not an "n/a" placeholder.
func PriorityValue(rec csv.Record, candidates []string) string {
	for _, name := range candidates {
		if v, ok := rec.Lookup(name); ok && !isPlaceholder(v) {
			return v
		}
	}
	return ""
}

// SplitDesignators expands a comma-joined designator cell into its elements,
// trimming each and dropping empties.
func SplitDesignators(cell string) []string {
	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
