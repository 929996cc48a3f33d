package pos

import "fmt"

// Placement conversion types

// Layer is the board side a component sits on, in the vendor's spelling.
type Layer string

const (
	LayerTop    Layer = "Top"
	LayerBottom Layer = "Bottom"
)

// Placement is one normalized pick-and-place line in the JLCPCB schema.
type Placement struct {
	Designator string
	MidX       string
	MidY       string
	Layer      Layer
	Rotation   string
}

// Header is the JLCPCB positions schema.
var Header = []string{"Designator", "Mid X", "Mid Y", "Layer", "Rotation"}

func (p Placement) Row() []string {
	return []string{p.Designator, p.MidX, p.MidY, string(p.Layer), p.Rotation}
}

// Stats reports what a mapper run did with its input rows.
type Stats struct {
	Converted int
	Skipped   int
	Warnings  []string
}

// Merge folds another run's counters into s, used when a front/back pair is
// converted as one output sequence.
func (s *Stats) Merge(other Stats) {
	s.Converted += other.Converted
	s.Skipped += other.Skipped
	s.Warnings = append(s.Warnings, other.Warnings...)
}

func (s *Stats) warn(format string, args ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}
