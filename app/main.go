package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/emmertex/jlcpcb-scripts/app/cfg"
	"github.com/emmertex/jlcpcb-scripts/app/pos"
	"github.com/emmertex/jlcpcb-scripts/app/profile"
	"github.com/emmertex/jlcpcb-scripts/app/tasks"
)

func main() {
	os.Exit(run())
}

func run() int {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cfg.PrintUsage(os.Stderr)
		return 1
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return 0
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("Starting jlc-convert", "version", appCfg.Version, "format", string(appCfg.Format))

	mappingProfile, err := profile.Load(appCfg.Profile)
	if err != nil {
		slog.Error("Failed to load mapping profile", "error", err)
		return 1
	}

	var conversionTasks []tasks.TaskInterface
	if appCfg.BOMFile != "" {
		conversionTasks = append(conversionTasks, tasks.NewConvertBOMTask(
			appCfg.Format, mappingProfile, appCfg.BOMFile, appCfg.OutPrefix+"_bom.csv"))
	}
	if appCfg.PosFile != "" {
		conversionTasks = append(conversionTasks, tasks.NewConvertPositionsTask(
			appCfg.Format, pos.OSProber{}, appCfg.PosFile, appCfg.OutPrefix+"_pos.csv"))
	}

	ctx := context.Background()
	warningCount := 0

	for _, task := range conversionTasks {
		if err := task.Execute(ctx); err != nil {
			slog.Error("Conversion failed", "task", string(task.GetType()), "error", err)
			return 1
		}
		warningCount += len(task.GetWarnings())
	}

	if appCfg.Strict && warningCount > 0 {
		slog.Error("Conversion produced warnings in strict mode", "warnings", warningCount)
		return 1
	}

	return 0
}
