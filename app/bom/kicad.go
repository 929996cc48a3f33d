package bom

import (
	"github.com/emmertex/jlcpcb-scripts/app/csv"
	"github.com/emmertex/jlcpcb-scripts/app/profile"
)

// KicadMapper converts rows from either KiCAD BOM export into JLCPCB
// components. Rows missing their designator or value are skipped, never
// rejected.
type KicadMapper struct {
	profile *profile.Profile
}

func NewKicadMapper(p *profile.Profile) *KicadMapper {
	return &KicadMapper{profile: p}
}

func (m *KicadMapper) Run(dialect Dialect, rows []csv.Record) ([]Component, Stats) {
	if dialect == DialectEnhanced {
		return m.runEnhanced(rows)
	}
	return m.runSimple(rows)
}

// runSimple handles the semicolon-delimited export: Designator, Designation,
// Footprint. No part number column exists in this dialect.
func (m *KicadMapper) runSimple(rows []csv.Record) ([]Component, Stats) {
	var out []Component
	var stats Stats

	for _, rec := range rows {
		designators := rec.Get("Designator")
		value := rec.Get("Designation")
		footprint := rec.Get("Footprint")

		if designators == "" || value == "" {
			stats.Skipped++
			continue
		}

		for _, designator := range SplitDesignators(designators) {
			out = append(out, Component{
				Comment:    value,
				Designator: designator,
				Footprint:  footprint,
			})
			stats.Converted++
		}
	}

	if len(rows) > 0 && stats.Converted == 0 {
		stats.warn("no rows converted from %d input rows; the header may not match a known KiCAD BOM export", len(rows))
	}

	return out, stats
}

// runEnhanced handles the comma-delimited export with part number columns.
// All components expanded from one row share comment, footprint and part
// number.
func (m *KicadMapper) runEnhanced(rows []csv.Record) ([]Component, Stats) {
	var out []Component
	var stats Stats

	for _, rec := range rows {
		reference := rec.Get("Reference")
		value := rec.Get("Value")
		footprint := rec.Get("Footprint")

		if reference == "" || value == "" {
			stats.Skipped++
			continue
		}

		lcsc := PriorityValue(rec, m.profile.BOM.LCSCColumns)
		partNumber := PriorityValue(rec, m.profile.BOM.PartNumberColumns)
		comment := Describe(value, partNumber, reference, m.profile.Descriptions)

		for _, designator := range SplitDesignators(reference) {
			out = append(out, Component{
				Comment:    comment,
				Designator: designator,
				Footprint:  footprint,
				PartNumber: lcsc,
			})
			stats.Converted++
		}
	}

	return out, stats
}
