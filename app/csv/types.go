package csv

import "strings"

// Record maps a header column name to the raw cell value of one input row.
// Columns the row does not have are absent from the map, which lets Lookup
// distinguish a missing column from an empty one.
type Record map[string]string

// Get returns the cleaned value of a column, or "" when the column is absent.
func (r Record) Get(key string) string {
	v, _ := r.Lookup(key)
	return v
}

// Lookup returns the cleaned value of a column and whether the column exists.
func (r Record) Lookup(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	return Clean(v), true
}

// Clean trims surrounding whitespace and stray quote characters left behind
// by exporters that double-quote already-quoted cells.
func Clean(v string) string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `"`)
	return strings.TrimSpace(v)
}
