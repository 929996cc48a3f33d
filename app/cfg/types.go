package cfg

// Format selects which CAD tool family produced the input files.
type Format string

const (
	FormatFusion Format = "fusion"
	FormatKicad  Format = "kicad"
)

type Cfg struct {
	Format    Format
	BOMFile   string
	PosFile   string
	OutPrefix string
	Profile   string
	Strict    bool
	Debug     bool
	Version   string
}
