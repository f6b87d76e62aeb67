package cli

import (
	"bytes"
	"path/filepath"
	"strings"

	chart "github.com/tinywasm/chart"
	"github.com/tinywasm/chart/dataset"
	"github.com/tinywasm/chart/draw"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/logging"
	"github.com/tinywasm/chart/viewer"
)

// parseDelimiter resolves the --delimiter value to a single rune. Shells
// pass `\t` as two literal characters, so the common escapes are unescaped
// here rather than taken as their first character.
func parseDelimiter(s string) rune {
	switch s {
	case "":
		return ','
	case `\t`, "tab":
		return '\t'
	case `\n`:
		return '\n'
	}
	return []rune(s)[0]
}

func run(opts *options) error {
	if opts.width <= 0 || opts.height <= 0 {
		return errs.New("canvas size must be positive")
	}

	data, err := dataset.Load(opts.input)
	if err != nil {
		return err
	}

	table, err := dataset.Parse(bytes.NewReader(data), dataset.ParseOptions{
		Comma:     parseDelimiter(opts.delimiter),
		ColLabels: opts.colLabels,
		RowLabels: opts.rowLabels,
	})
	if err != nil {
		return err
	}
	logging.Get().Debug().
		Int("rows", table.Rows()).
		Int("columns", table.Columns()).
		Msg("table parsed")

	// Chart-specific validation runs before any chart or canvas exists,
	// so a rejected input leaves no partial output behind.
	if opts.chartType == "scatter" {
		if err := table.RequireColumns(2); err != nil {
			return err
		}
	}

	style, err := loadStyle(opts.stylePath)
	if err != nil {
		return err
	}

	surface, err := draw.New(float64(opts.width), float64(opts.height))
	if err != nil {
		return err
	}

	if err := render(opts, style, table, surface); err != nil {
		return err
	}

	rasterPath := ""
	if opts.png {
		rasterPath = strings.TrimSuffix(opts.output, filepath.Ext(opts.output)) + ".png"
	}
	if err := surface.Save(opts.output, rasterPath); err != nil {
		return err
	}
	logging.Get().Info().
		Str("type", opts.chartType).
		Str("output", opts.output).
		Msg("chart written")
	if rasterPath != "" {
		logging.Get().Info().Str("output", rasterPath).Msg("raster written")
	}

	if opts.noWindow {
		return nil
	}
	return viewer.Show(surface.Rasterize(), "chart - "+filepath.Base(opts.output))
}

func render(opts *options, style style, table *dataset.Table, surface chart.Surface) error {
	f := chart.New(table)
	w, h := float64(opts.width), float64(opts.height)

	switch opts.chartType {
	case "bar":
		b := f.Bar().
			Title(opts.title).
			Size(w, h).
			Palette(style.palette).
			Legend(style.legend)
		if opts.horizontal {
			b.Horizontal()
		}
		if opts.stacked {
			b.Stacked()
		}
		return b.Draw(surface)

	case "histogram":
		return f.Histogram().
			Title(opts.title).
			Size(w, h).
			Palette(style.palette).
			Bins(opts.bins).
			Draw(surface)

	case "pie":
		if table.Rows() > 1 {
			logging.Get().Warn().
				Int("ignored_rows", table.Rows()-1).
				Msg("pie chart uses only the first row")
		}
		return f.Pie().
			Title(opts.title).
			Size(w, h).
			Palette(style.palette).
			Legend(style.legend).
			Draw(surface)

	case "scatter":
		return f.Scatter().
			Title(opts.title).
			Size(w, h).
			Palette(style.palette).
			Draw(surface)
	}
	return errs.New("unknown chart type:", opts.chartType)
}
