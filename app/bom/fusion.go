package bom

import "github.com/emmertex/jlcpcb-scripts/app/csv"

// FusionMapper converts rows from the Fusion/Eagle BOM export: Part, Value,
// Package. The format carries one designator per row and no part number.
type FusionMapper struct{}

func NewFusionMapper() *FusionMapper {
	return &FusionMapper{}
}

func (m *FusionMapper) Run(rows []csv.Record) ([]Component, Stats) {
	var out []Component
	var stats Stats

	for _, rec := range rows {
		designator := rec.Get("Part")
		value := rec.Get("Value")
		footprint := rec.Get("Package")

		// Skip empty rows and test points
		if designator == "" || value == "" {
			stats.Skipped++
			continue
		}

		out = append(out, Component{
			Comment:    value,
			Designator: designator,
			Footprint:  footprint,
		})
		stats.Converted++
	}

	return out, stats
}
