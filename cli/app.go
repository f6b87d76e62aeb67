// Package cli provides the chart command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/tinywasm/chart/logging"
)

type options struct {
	input     string
	output    string
	chartType string
	width     int
	height    int
	png       bool
	colLabels bool
	rowLabels bool

	horizontal bool
	stacked    bool
	bins       int

	noWindow  bool
	title     string
	delimiter string
	stylePath string
	logLevel  string
	logFormat string
}

// New builds the root command.
func New() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a delimited numeric table as an SVG chart",
		Long: `chart reads a delimited text table and renders it as a bar, histogram,
pie or scatter chart into an SVG file, optionally rasterizing to PNG and
showing the result in a preview window.

Examples:
  # Clustered bar chart with column labels in the first row
  chart -i sales.csv -t bar --col-labels --title "Monthly Sales"

  # Histogram with 20 buckets, no preview window
  chart -i samples.csv -t histogram --bins 20 --no-window

  # Pie chart from a remote table, written as SVG and PNG
  chart -i https://example.com/share.csv -t pie --col-labels --png`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(logging.Config{Level: opts.logLevel, Format: opts.logFormat})
			return run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Input table path or http(s) URL (required)")
	flags.StringVarP(&opts.output, "output", "o", "output.svg", "Output SVG path")
	flags.StringVarP(&opts.chartType, "type", "t", "", "Chart type: bar, histogram, pie, scatter (required)")
	flags.IntVar(&opts.width, "width", 800, "Canvas width in pixels")
	flags.IntVar(&opts.height, "height", 600, "Canvas height in pixels")
	flags.BoolVar(&opts.png, "png", false, "Also write a PNG next to the SVG")
	flags.BoolVar(&opts.colLabels, "col-labels", false, "First row holds column labels")
	flags.BoolVar(&opts.rowLabels, "row-labels", false, "First column holds row labels")
	flags.BoolVar(&opts.horizontal, "horizontal", false, "Horizontal bars (bar only)")
	flags.BoolVar(&opts.stacked, "stacked", false, "Stacked bars (bar only)")
	flags.IntVar(&opts.bins, "bins", 10, "Bucket count (histogram only)")
	flags.BoolVar(&opts.noWindow, "no-window", false, "Skip the preview window")
	flags.StringVar(&opts.title, "title", "", "Chart title")
	flags.StringVar(&opts.delimiter, "delimiter", ",", `Field delimiter (\t or "tab" for tabs)`)
	flags.StringVar(&opts.stylePath, "style", "", "JSON style file (palette, legend)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "console", "Log format: console or json")

	cobra.CheckErr(cmd.MarkFlagRequired("input"))
	cobra.CheckErr(cmd.MarkFlagRequired("type"))

	return cmd
}
