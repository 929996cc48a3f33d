package bom

import "fmt"

// BOM conversion types

// Component is one normalized BOM line in the JLCPCB schema. A component
// carries exactly one designator; comma-joined designator lists from the
// source are expanded before components are built.
type Component struct {
	Comment    string
	Designator string
	Footprint  string
	PartNumber string
}

// Header is the JLCPCB BOM schema. The full-width parentheses are part of the
// vendor's expected header and must be preserved byte for byte.
var Header = []string{"Comment", "Designator", "Footprint", "JLCPCB Part #（optional）"}

func (c Component) Row() []string {
	return []string{c.Comment, c.Designator, c.Footprint, c.PartNumber}
}

// Dialect identifies which KiCAD BOM export produced a file.
type Dialect int

const (
	DialectSimple Dialect = iota
	DialectEnhanced
)

func (d Dialect) String() string {
	if d == DialectEnhanced {
		return "enhanced"
	}
	return "simple"
}

// Delimiter returns the cell delimiter the dialect uses.
func (d Dialect) Delimiter() rune {
	if d == DialectSimple {
		return ';'
	}
	return ','
}

// Stats reports what a mapper run did with its input rows. Skipped rows are
// a deliberate permissive policy, counted here so callers and tests can see
// them without parsing log output.
type Stats struct {
	Converted int
	Skipped   int
	Warnings  []string
}

func (s *Stats) warn(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}
