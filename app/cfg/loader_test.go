package cfg

import (
	"strings"
	"testing"
)

func TestLoad_NoArgumentsShowsUsage(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Expected no error when showing usage, got %v", err)
	}
	if cfg != nil {
		t.Errorf("Expected nil cfg after showing usage, got %+v", cfg)
	}
}

func TestLoad_ValidKicad(t *testing.T) {
	cfg, err := Load([]string{"--kicad", "--bom", "prj_bom.csv", "--pos", "prj_pos.csv"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Format != FormatKicad {
		t.Errorf("Expected kicad format, got %s", cfg.Format)
	}
	if cfg.BOMFile != "prj_bom.csv" || cfg.PosFile != "prj_pos.csv" {
		t.Errorf("Unexpected input files: %+v", cfg)
	}
	if cfg.OutPrefix != "JLC" {
		t.Errorf("Expected default output prefix 'JLC', got %q", cfg.OutPrefix)
	}
}

func TestLoad_OutPrefixOverride(t *testing.T) {
	cfg, err := Load([]string{"--fusion", "--bom", "b.csv", "--out", "project_jlc"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutPrefix != "project_jlc" {
		t.Errorf("Expected 'project_jlc', got %q", cfg.OutPrefix)
	}
}

func TestLoad_MissingFormat(t *testing.T) {
	_, err := Load([]string{"--bom", "b.csv"})
	if err == nil {
		t.Fatal("Expected error when no format flag is given")
	}
	if !strings.Contains(err.Error(), "--fusion or --kicad") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestLoad_BothFormats(t *testing.T) {
	_, err := Load([]string{"--fusion", "--kicad", "--bom", "b.csv"})
	if err == nil {
		t.Fatal("Expected error when both format flags are given")
	}
	if !strings.Contains(err.Error(), "only one") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestLoad_MissingInputFiles(t *testing.T) {
	_, err := Load([]string{"--kicad"})
	if err == nil {
		t.Fatal("Expected error when neither --bom nor --pos is given")
	}
	if !strings.Contains(err.Error(), "--bom or --pos") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestLoad_UnknownFlag(t *testing.T) {
	if _, err := Load([]string{"--kicad", "--bogus"}); err == nil {
		t.Fatal("Expected error for unknown flag")
	}
}
