package cli

import (
	"os"

	"github.com/tinywasm/json"

	chart "github.com/tinywasm/chart"
	"github.com/tinywasm/chart/errs"
)

// styleFile is the optional JSON style configuration.
type styleFile struct {
	Palette []string `json:"palette"`
	Legend  *bool    `json:"legend"`
}

type style struct {
	palette []chart.Color
	legend  bool
}

// loadStyle reads the style file, or returns the defaults when no path is
// given.
func loadStyle(path string) (style, error) {
	st := style{legend: true}
	if path == "" {
		return st, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return st, errs.New("style:", err)
	}
	var f styleFile
	if err := json.Unmarshal(data, &f); err != nil {
		return st, errs.New("style:", err)
	}

	for _, hex := range f.Palette {
		c, err := chart.ColorHex(hex)
		if err != nil {
			return st, err
		}
		st.palette = append(st.palette, c)
	}
	if f.Legend != nil {
		st.legend = *f.Legend
	}
	return st, nil
}
