// Package main resolves a file of scraped placements and reports
// archetype meta shares, optionally rendering an interactive chart.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/ptcgmeta/tracker/internal/archetype"
	"github.com/ptcgmeta/tracker/internal/charts"
	"github.com/ptcgmeta/tracker/internal/knowledge"
	"github.com/ptcgmeta/tracker/internal/pipeline"
	"github.com/ptcgmeta/tracker/internal/stats"
)

var (
	inputPath     = flag.String("input", "", "JSON file of placement rows (required)")
	knowledgePath = flag.String("knowledge", "", "Knowledge table file (default: compiled-in)")
	chartPath     = flag.String("chart", "", "Write a meta-share chart to this HTML file")
	pieChart      = flag.Bool("pie", false, "Render the chart as a pie instead of bars")
	workers       = flag.Int("workers", pipeline.DefaultWorkers, "Concurrent resolutions")
)

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: meta-report -input placements.json [-chart out.html]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(logger); err != nil {
		logger.Error("meta-report failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	base, err := loadKnowledge(*knowledgePath)
	if err != nil {
		return fmt.Errorf("load knowledge base: %w", err)
	}

	rows, err := readPlacements(*inputPath)
	if err != nil {
		return err
	}

	normalizer := archetype.NewNormalizer(base, archetype.NewTableDetector(base))
	batch := pipeline.NewBatchResolver(normalizer, *workers, logger)

	results, err := batch.ResolveAll(context.Background(), rows)
	if err != nil {
		return fmt.Errorf("resolve placements: %w", err)
	}

	shares := stats.Shares(results)
	printShares(shares, len(results))

	if *chartPath != "" {
		cfg := charts.DefaultChartConfig()
		cfg.Subtitle = fmt.Sprintf("%d placements", len(results))
		render := charts.RenderShareBar
		if *pieChart {
			render = charts.RenderSharePie
		}
		if err := render(shares, cfg, *chartPath); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		logger.Info("chart written", "path", *chartPath)
	}

	return nil
}

// readPlacements loads the scraped placement rows from a JSON file.
func readPlacements(path string) ([]pipeline.Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read placements: %w", err)
	}
	var rows []pipeline.Placement
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse placements: %w", err)
	}
	return rows, nil
}

// printShares writes the share table to stdout.
func printShares(shares []stats.ArchetypeShare, total int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ARCHETYPE\tCOUNT\tSHARE\tTIER\tAVG CONF")
	for _, s := range shares {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\t%d\t%.2f\n",
			s.Archetype, s.Count, s.Share, s.Tier, s.AvgConfidence)
	}
	fmt.Fprintf(w, "TOTAL\t%d\t\t\t\n", total)
	w.Flush()
}

func loadKnowledge(path string) (*knowledge.Base, error) {
	if path == "" {
		return knowledge.Default()
	}
	return knowledge.LoadFile(path)
}
