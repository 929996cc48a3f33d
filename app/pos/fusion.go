package pos

import (
	"cmp"

	"github.com/emmertex/jlcpcb-scripts/app/csv"
)

// FusionMapper converts rows from one Fusion PnP file: Name, X, Y, Angle.
// The layer comes from the filename (see LayerForFile), never from content.
type FusionMapper struct{}

func NewFusionMapper() *FusionMapper {
	return &FusionMapper{}
}

func (m *FusionMapper) Run(rows []csv.Record, layer Layer) ([]Placement, Stats) {
	var out []Placement
	var stats Stats

	for _, rec := range rows {
		designator := rec.Get("Name")
		x := rec.Get("X")
		y := rec.Get("Y")

		if designator == "" || x == "" || y == "" {
			stats.Skipped++
			continue
		}

		out = append(out, Placement{
			Designator: designator,
			MidX:       x,
			MidY:       y,
			Layer:      layer,
			Rotation:   cmp.Or(rec.Get("Angle"), "0"),
		})
		stats.Converted++
	}

	return out, stats
}
