package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if len(p.BOM.LCSCColumns) != 3 || p.BOM.LCSCColumns[0] != "LCSC #" {
		t.Errorf("Unexpected default LCSC columns: %v", p.BOM.LCSCColumns)
	}
	if p.Descriptions["C"] != "Capacitor" {
		t.Errorf("Unexpected default descriptions: %v", p.Descriptions)
	}
}

func TestLoad_OverridesColumns(t *testing.T) {
	tempDir := t.TempDir()

	content := `
bom:
  lcsc_columns: ["JLC Part", "LCSC"]
descriptions:
  q: Transistor
`
	path := filepath.Join(tempDir, "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(p.BOM.LCSCColumns) != 2 || p.BOM.LCSCColumns[0] != "JLC Part" {
		t.Errorf("Expected overridden LCSC columns, got %v", p.BOM.LCSCColumns)
	}
	// Keys omitted from the file keep their defaults
	if len(p.BOM.PartNumberColumns) != 3 {
		t.Errorf("Expected default part number columns, got %v", p.BOM.PartNumberColumns)
	}
	// Prefixes are normalized to upper case
	if p.Descriptions["Q"] != "Transistor" {
		t.Errorf("Expected upper-cased prefix key, got %v", p.Descriptions)
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	tempDir := t.TempDir()

	content := `
bom:
  lcsc_colums: ["typo"]
`
	path := filepath.Join(tempDir, "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for unknown key, got nil")
	}
}

func TestLoad_RejectsMultiCharPrefix(t *testing.T) {
	tempDir := t.TempDir()

	content := `
descriptions:
  IC: Integrated Circuit
`
	path := filepath.Join(tempDir, "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for multi-character prefix, got nil")
	}
}

func TestLoad_EmptyFileFallsBackToDefaults(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "profile.yaml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.BOM.LCSCColumns) == 0 || len(p.Descriptions) == 0 {
		t.Errorf("Expected defaults from empty file, got %+v", p)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing profile file, got nil")
	}
}
