package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emmertex/jlcpcb-scripts/app/bom"
	"github.com/emmertex/jlcpcb-scripts/app/cfg"
	"github.com/emmertex/jlcpcb-scripts/app/csv"
	"github.com/emmertex/jlcpcb-scripts/app/profile"
)

var _ TaskInterface = (*ConvertBOMTask)(nil)

type ConvertBOMTask struct {
	Task
	format   cfg.Format
	profile  *profile.Profile
	warnings []string
}

func NewConvertBOMTask(format cfg.Format, p *profile.Profile, inputFile, outputFile string) *ConvertBOMTask {
	return &ConvertBOMTask{
		Task:    NewTask(TaskTypeConvertBOM, inputFile, outputFile),
		format:  format,
		profile: p,
	}
}

func (t *ConvertBOMTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	components, stats, err := t.convert()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(components))
	for _, c := range components {
		rows = append(rows, c.Row())
	}

	if err := writeCSV(t.OutputFile, bom.Header, rows); err != nil {
		return err
	}

	slog.Info("BOM conversion completed", "file", t.OutputFile,
		"records", stats.Converted, "skipped", stats.Skipped)
	for _, w := range stats.Warnings {
		slog.Warn(w)
	}
	t.warnings = stats.Warnings

	return nil
}

func (t *ConvertBOMTask) convert() ([]bom.Component, bom.Stats, error) {
	switch t.format {
	case cfg.FormatFusion:
		rows, err := readRecords(t.InputFile, ',')
		if err != nil {
			return nil, bom.Stats{}, err
		}
		components, stats := bom.NewFusionMapper().Run(rows)
		return components, stats, nil

	case cfg.FormatKicad:
		headerLine, err := readHeaderLine(t.InputFile)
		if err != nil {
			return nil, bom.Stats{}, err
		}
		dialect := bom.Detect(headerLine)
		slog.Debug("Detected KiCAD BOM dialect", "dialect", dialect.String(), "file", t.InputFile)

		var rows []csv.Record
		if rows, err = readRecords(t.InputFile, dialect.Delimiter()); err != nil {
			return nil, bom.Stats{}, err
		}
		components, stats := bom.NewKicadMapper(t.profile).Run(dialect, rows)
		return components, stats, nil
	}

	return nil, bom.Stats{}, fmt.Errorf("unsupported input format %q", t.format)
}

func (t *ConvertBOMTask) GetWarnings() []string {
	return t.warnings
}
