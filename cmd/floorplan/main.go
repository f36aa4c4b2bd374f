// Command floorplan is a minimal example program: it loads a DXF floor plan
// and an optional YAML config, runs the pipeline, and prints a summary. It is
// not a flag-rich CLI; callers needing one build on top of pkg/floorplan.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/rehmanul/floorplan-engine/pkg/floorplan"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: floorplan <plan.dxf> [config.yaml]")
		os.Exit(1)
	}

	cfg := floorplan.DefaultConfig()
	if len(os.Args) >= 3 {
		loaded, err := floorplan.LoadConfig(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = *loaded
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	result := floorplan.Process(context.Background(), os.Args[1], cfg, logger)
	printSummary(result)

	if !result.Success {
		os.Exit(1)
	}
}

func printSummary(r floorplan.LayoutResult) {
	fmt.Printf("success: %v\n", r.Success)
	if r.Error != "" {
		fmt.Printf("error: %s\n", r.Error)
	}
	fmt.Printf("walls: %d, restricted: %d, entrances: %d, open spaces: %d\n",
		len(r.Walls), len(r.Restricted), len(r.Entrances), len(r.OpenSpaces))
	fmt.Printf("units placed: %d, corridors: %d\n", len(r.Units), len(r.Corridors))
	fmt.Printf("unit coverage: %.2f%%, corridor coverage: %.2f%%, total: %.2f%%\n",
		r.UnitCoveragePct, r.CorridorCoveragePct, r.TotalCoveragePct)
	fmt.Printf("fitness: %.2f, elapsed: %s\n", r.Fitness, r.Elapsed)
}
