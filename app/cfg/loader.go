package cfg

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	Fusion  bool   `long:"fusion" description:"Input files use the Fusion/Eagle format"`
	Kicad   bool   `long:"kicad" description:"Input files use the KiCAD format"`
	BOM     string `long:"bom" value-name:"FILE" description:"Bill of Materials file to convert"`
	Pos     string `long:"pos" value-name:"FILE" description:"Positions file to convert (finds _front/_back pairs for Fusion PnP)"`
	Out     string `long:"out" value-name:"PREFIX" default:"JLC" description:"Output filename prefix"`
	Profile string `long:"profile" value-name:"FILE" description:"YAML mapping profile overriding column priorities and description suffixes"`
	Strict  bool   `long:"strict" description:"Exit non-zero when conversion warnings accumulate"`
	Debug   bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

const usageLine = "(--fusion | --kicad) [--bom FILE] [--pos FILE] [--out PREFIX]"

const usageNotes = `Examples:
  jlc-convert --fusion --bom prj_bom.csv
  jlc-convert --kicad --bom prj_bom.csv --pos prj_pos.csv --out project_jlc

For best results with KiCAD: export the BOM from Schematic View -> Tools -> Generate BOM`

// Load parses the given command-line arguments into a Cfg. A nil Cfg with a
// nil error means help was requested (or no arguments were given) and the
// usage text has already been printed.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = usageLine

	if len(args) == 0 {
		parser.WriteHelp(os.Stdout)
		fmt.Println()
		fmt.Println(usageNotes)
		return nil, nil
	}

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			fmt.Println()
			fmt.Println(usageNotes)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	cfg := &Cfg{
		BOMFile:   raw.BOM,
		PosFile:   raw.Pos,
		OutPrefix: raw.Out,
		Profile:   raw.Profile,
		Strict:    raw.Strict,
		Debug:     raw.Debug,
		Version:   GetVersion(),
	}

	switch {
	case raw.Fusion && raw.Kicad:
		return nil, fmt.Errorf("only one input format can be specified")
	case raw.Fusion:
		cfg.Format = FormatFusion
	case raw.Kicad:
		cfg.Format = FormatKicad
	default:
		return nil, fmt.Errorf("input format must be specified (--fusion or --kicad)")
	}

	if cfg.BOMFile == "" && cfg.PosFile == "" {
		return nil, fmt.Errorf("either --bom or --pos must be specified")
	}

	return cfg, nil
}

// PrintUsage writes the flag help and usage notes, used after a usage error.
func PrintUsage(w io.Writer) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.None)
	parser.Usage = usageLine
	parser.WriteHelp(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, usageNotes)
}
