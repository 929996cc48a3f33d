package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in mapping profile matching the stock KiCAD
// enhanced BOM export and the usual designator prefixes.
func Default() *Profile {
	return &Profile{
		BOM: BOMProfile{
			LCSCColumns:       []string{"LCSC #", "China LCSC #", "Alternate LCSC #"},
			PartNumberColumns: []string{"MFG Part Number", "China MFG PN", "Alternate MFG Part Number"},
		},
		Descriptions: map[string]string{
			"C": "Capacitor",
			"D": "Diode",
			"R": "Resistor",
			"L": "Inductor",
		},
	}
}

// Load reads a YAML profile from path. An empty path yields the defaults.
// Keys left out of the file fall back to their defaults individually.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	setDefaults(&p)

	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return &p, nil
}

func setDefaults(p *Profile) {
	def := Default()

	if len(p.BOM.LCSCColumns) == 0 {
		p.BOM.LCSCColumns = def.BOM.LCSCColumns
	}
	if len(p.BOM.PartNumberColumns) == 0 {
		p.BOM.PartNumberColumns = def.BOM.PartNumberColumns
	}
	if len(p.Descriptions) == 0 {
		p.Descriptions = def.Descriptions
		return
	}

	// Description suffixes are keyed by the upper-cased leading character of
	// a designator, so normalize user-supplied keys the same way.
	normalized := make(map[string]string, len(p.Descriptions))
	for prefix, suffix := range p.Descriptions {
		normalized[strings.ToUpper(prefix)] = suffix
	}
	p.Descriptions = normalized
}

func validate(p *Profile) error {
	for _, name := range p.BOM.LCSCColumns {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("lcsc_columns contains an empty column name")
		}
	}
	for _, name := range p.BOM.PartNumberColumns {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("part_number_columns contains an empty column name")
		}
	}
	for prefix := range p.Descriptions {
		if len(prefix) != 1 {
			return fmt.Errorf("description prefix %q must be a single character", prefix)
		}
	}
	return nil
}
