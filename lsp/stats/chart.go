package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"image/color"
)

var (
	knownColor   = color.RGBA{64, 128, 192, 255}
	unknownColor = color.RGBA{192, 64, 64, 255}
)

// Chart draws opcode frequencies as a bar chart, unknown opcodes in a separate color.
func Chart(c *Census, title string) (*plot.Plot, error) {
	entries := c.Sorted()
	if len(entries) == 0 {
		return nil, errors.New("no tokens to chart")
	}
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = "Occurrences"
	p.X.Label.Text = "Opcode"

	known := make(plotter.Values, len(entries))
	unknown := make(plotter.Values, len(entries))
	labels := make([]string, len(entries))
	for i, entry := range entries {
		if entry.Known {
			known[i] = float64(entry.Count)
		} else {
			unknown[i] = float64(entry.Count)
		}
		labels[i] = fmt.Sprintf("%02X", entry.Code)
	}
	for _, series := range []struct {
		values plotter.Values
		color  color.Color
	}{
		{known, knownColor},
		{unknown, unknownColor},
	} {
		bars, err := plotter.NewBarChart(series.values, vg.Points(8))
		if err != nil {
			return nil, err
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = series.color
		p.Add(bars)
	}
	p.NominalX(labels...)
	return p, nil
}
