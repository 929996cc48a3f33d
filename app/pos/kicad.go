package pos

import (
	"cmp"
	"strings"

	"github.com/emmertex/jlcpcb-scripts/app/csv"
)

// KicadMapper converts rows from the single-file KiCAD PnP export: Ref,
// PosX, PosY, Rot, Side.
type KicadMapper struct{}

func NewKicadMapper() *KicadMapper {
	return &KicadMapper{}
}

func (m *KicadMapper) Run(rows []csv.Record) ([]Placement, Stats) {
	var out []Placement
	var stats Stats

	for _, rec := range rows {
		designator := rec.Get("Ref")
		x := rec.Get("PosX")
		y := rec.Get("PosY")

		if designator == "" || x == "" || y == "" {
			stats.Skipped++
			continue
		}

		out = append(out, Placement{
			Designator: designator,
			MidX:       x,
			MidY:       y,
			Layer:      layerForSide(rec.Get("Side"), designator, &stats),
			Rotation:   cmp.Or(rec.Get("Rot"), "0"),
		})
		stats.Converted++
	}

	return out, stats
}

// layerForSide maps the Side cell to a board layer. A missing side defaults
// to Top (documented behavior); an unrecognized side also defaults to Top but
// is recorded as a warning instead of being silently swallowed.
func layerForSide(side string, designator string, stats *Stats) Layer {
	switch strings.ToLower(side) {
	case "top", "":
		return LayerTop
	case "bottom":
		return LayerBottom
	}
	stats.warn("unrecognized side %q for %s, defaulting to Top", side, designator)
	return LayerTop
}
