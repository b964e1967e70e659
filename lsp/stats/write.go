package stats

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

const (
	barWidth    = vg.Inch / 4
	minWidth    = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// ChartSize widens the chart with the number of distinct opcodes so every label fits.
func ChartSize(c *Census) (width, height vg.Length) {
	width = vg.Length(len(c.Opcodes)) * barWidth
	if width < minWidth {
		width = minWidth
	}
	return width, chartHeight
}

// chartFormat takes the output format from the extension of path, png if it has none.
func chartFormat(path string) string {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "" {
		return "png"
	}
	return format
}

// WriteChart renders p onto output in the named format (png, svg, pdf, ...).
func WriteChart(p *plot.Plot, width, height vg.Length, output io.Writer, format string) error {
	w, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("chart format %q: %w", format, err)
	}
	_, err = w.WriteTo(output)
	return err
}

// SavePlot writes p to path in the format named by its extension. A chart that cannot be
// rendered leaves no file behind.
func SavePlot(p *plot.Plot, width, height vg.Length, path string) (err error) {
	output, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := output.Close(); e != nil {
			err = multierror.Append(err, e)
		}
		if err != nil {
			if e := os.Remove(path); e != nil {
				err = multierror.Append(err, e)
			}
		}
	}()
	return WriteChart(p, width, height, output, chartFormat(path))
}
