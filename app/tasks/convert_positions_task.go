package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/emmertex/jlcpcb-scripts/app/cfg"
	"github.com/emmertex/jlcpcb-scripts/app/pos"
)

var _ TaskInterface = (*ConvertPositionsTask)(nil)

type ConvertPositionsTask struct {
	Task
	format   cfg.Format
	prober   pos.FileProber
	warnings []string
}

func NewConvertPositionsTask(format cfg.Format, prober pos.FileProber, inputFile, outputFile string) *ConvertPositionsTask {
	return &ConvertPositionsTask{
		Task:   NewTask(TaskTypeConvertPositions, inputFile, outputFile),
		format: format,
		prober: prober,
	}
}

func (t *ConvertPositionsTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	placements, stats, err := t.convert()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(placements))
	for _, p := range placements {
		rows = append(rows, p.Row())
	}

	if err := writeCSV(t.OutputFile, pos.Header, rows); err != nil {
		return err
	}

	slog.Info("Positions conversion completed", "file", t.OutputFile,
		"records", stats.Converted, "skipped", stats.Skipped)
	for _, w := range stats.Warnings {
		slog.Warn(w)
	}
	t.warnings = stats.Warnings

	return nil
}

func (t *ConvertPositionsTask) convert() ([]pos.Placement, pos.Stats, error) {
	switch t.format {
	case cfg.FormatFusion:
		var placements []pos.Placement
		var stats pos.Stats

		mapper := pos.NewFusionMapper()
		files := pos.FindPair(t.InputFile, t.prober)
		slog.Debug("Converting Fusion PnP files", "files", files)

		for _, file := range files {
			rows, err := readRecords(file, ',')
			if err != nil {
				return nil, pos.Stats{}, err
			}
			converted, fileStats := mapper.Run(rows, pos.LayerForFile(file))
			placements = append(placements, converted...)
			stats.Merge(fileStats)
		}
		return placements, stats, nil

	case cfg.FormatKicad:
		rows, err := readRecords(t.InputFile, ',')
		if err != nil {
			return nil, pos.Stats{}, err
		}
		placements, stats := pos.NewKicadMapper().Run(rows)
		return placements, stats, nil
	}

	return nil, pos.Stats{}, fmt.Errorf("unsupported input format %q", t.format)
}

func (t *ConvertPositionsTask) GetWarnings() []string {
	return t.warnings
}
