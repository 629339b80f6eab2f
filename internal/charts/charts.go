// Package charts renders meta-share reports as interactive HTML.
package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ptcgmeta/tracker/internal/stats"
)

// ChartConfig holds chart rendering options.
type ChartConfig struct {
	Title    string
	Subtitle string
	Width    string // e.g. "900px"
	Height   string // e.g. "500px"
	Theme    string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:  "Meta Share",
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
	}
}

// RenderShareBar writes an archetype meta-share bar chart to outputPath.
func RenderShareBar(shares []stats.ArchetypeShare, config ChartConfig, outputPath string) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	labels := make([]string, len(shares))
	values := make([]opts.BarData, len(shares))
	for i, share := range shares {
		labels[i] = share.Archetype
		values[i] = opts.BarData{Value: share.Share}
	}

	bar.SetXAxis(labels).
		AddSeries("Share %", values).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:     opts.Bool(true),
				Position: "top",
			}),
		)

	return renderTo(bar, outputPath)
}

// RenderSharePie writes an archetype meta-share pie chart to outputPath.
func RenderSharePie(shares []stats.ArchetypeShare, config ChartConfig, outputPath string) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	values := make([]opts.PieData, len(shares))
	for i, share := range shares {
		values[i] = opts.PieData{Name: share.Archetype, Value: share.Share}
	}

	pie.AddSeries("Share %", values).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {d}%",
			}),
		)

	return renderTo(pie, outputPath)
}

type renderer interface {
	Render(w io.Writer) error
}

func renderTo(chart renderer, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
