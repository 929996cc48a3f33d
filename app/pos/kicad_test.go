package pos

import (
	"testing"

	"github.com/emmertex/jlcpcb-scripts/app/csv"
)

func TestKicadMapper_SideMapping(t *testing.T) {
	cases := []struct {
		side     string
		expected Layer
		warnings int
	}{
		{"top", LayerTop, 0},
		{"Top", LayerTop, 0},
		{"BOTTOM", LayerBottom, 0},
		{`"bottom"`, LayerBottom, 0},
		{"", LayerTop, 0},      // documented default, not a warning
		{"left", LayerTop, 1},  // unrecognized, defaults to Top with a warning
	}

	for _, c := range cases {
		mapper := NewKicadMapper()
		rows := []csv.Record{
			{"Ref": "R1", "PosX": "1.0", "PosY": "2.0", "Rot": "90", "Side": c.side},
		}

		placements, stats := mapper.Run(rows)

		if len(placements) != 1 {
			t.Fatalf("Side %q: expected 1 placement, got %d", c.side, len(placements))
		}
		if placements[0].Layer != c.expected {
			t.Errorf("Side %q: expected layer %s, got %s", c.side, c.expected, placements[0].Layer)
		}
		if len(stats.Warnings) != c.warnings {
			t.Errorf("Side %q: expected %d warnings, got %v", c.side, c.warnings, stats.Warnings)
		}
	}
}

func TestKicadMapper_DefaultRotation(t *testing.T) {
	mapper := NewKicadMapper()

	rows := []csv.Record{
		{"Ref": "C1", "PosX": "5.5", "PosY": "-3.2", "Side": "top"},
	}

	placements, _ := mapper.Run(rows)

	if len(placements) != 1 {
		t.Fatalf("Expected 1 placement, got %d", len(placements))
	}
	if placements[0].Rotation != "0" {
		t.Errorf("Expected default rotation '0', got %q", placements[0].Rotation)
	}
}

func TestKicadMapper_SkipsIncompleteRows(t *testing.T) {
	mapper := NewKicadMapper()

	rows := []csv.Record{
		{"Ref": "", "PosX": "1", "PosY": "2"},
		{"Ref": "R1", "PosX": "", "PosY": "2"},
		{"Ref": "R2", "PosX": "1", "PosY": ""},
		{"Ref": "R3", "PosX": "1", "PosY": "2", "Rot": "180", "Side": "bottom"},
	}

	placements, stats := mapper.Run(rows)

	if len(placements) != 1 {
		t.Fatalf("Expected 1 placement, got %d", len(placements))
	}
	if stats.Skipped != 3 {
		t.Errorf("Expected 3 skipped rows, got %d", stats.Skipped)
	}
	p := placements[0]
	if p.Designator != "R3" || p.Layer != LayerBottom || p.Rotation != "180" {
		t.Errorf("Unexpected placement: %+v", p)
	}
}
