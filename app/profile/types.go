package profile

// Profile controls how source columns are mapped when a BOM is converted.
// Column candidate lists are evaluated in order; the first usable value wins.

type Profile struct {
	BOM          BOMProfile        `yaml:"bom"`
	Descriptions map[string]string `yaml:"descriptions"`
}

type BOMProfile struct {
	LCSCColumns       []string `yaml:"lcsc_columns"`
	PartNumberColumns []string `yaml:"part_number_columns"`
}
