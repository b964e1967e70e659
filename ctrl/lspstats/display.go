package main

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/celskeggs/lightspeed/lsp/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vggio"
)

const snapshotPath = "census-snapshot.png"

// CensusWidget draws the census chart scaled to whatever space the window offers.
type CensusWidget struct {
	Plot *plot.Plot
	DPI  int

	// Width and Height size snapshots taken before the first frame.
	Width, Height vg.Length

	width, height vg.Length
}

func (c *CensusWidget) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	c.width = vg.Points(float64(size.X) * vg.Inch.Points() / float64(c.DPI))
	c.height = vg.Points(float64(size.Y) * vg.Inch.Points() / float64(c.DPI))
	cnv := vggio.New(gtx, c.width, c.height, vggio.UseDPI(c.DPI))
	c.Plot.Draw(draw.New(cnv))
	return layout.Dimensions{Size: size}
}

// Snapshot saves the chart at the size it is currently drawn.
func (c *CensusWidget) Snapshot(path string) error {
	if c.width == 0 || c.height == 0 {
		return stats.SavePlot(c.Plot, c.Width, c.Height, path)
	}
	return stats.SavePlot(c.Plot, c.width, c.height, path)
}

// DisplayPlot opens a window on the chart and never returns; Q or Escape closes it and
// S writes a snapshot to the working directory.
func DisplayPlot(p *plot.Plot, width, height vg.Length) error {
	widget := &CensusWidget{
		Plot:   p,
		DPI:    96,
		Width:  width,
		Height: height,
	}

	go func() {
		win := app.NewWindow(
			app.Title("Opcode Census"),
			app.Size(
				unit.Px(1280),
				unit.Px(512),
			),
		)
		defer win.Close()

		for e := range win.Events() {
			switch e := e.(type) {
			case system.FrameEvent:
				ops := new(op.Ops)
				gtx := layout.NewContext(ops, e)
				layout.UniformInset(unit.Dp(20)).Layout(gtx, widget.Layout)
				e.Frame(ops)

			case key.Event:
				switch e.Name {
				case "Q", key.NameEscape:
					win.Close()
				case "S":
					if e.State == key.Press {
						if err := widget.Snapshot(snapshotPath); err != nil {
							log.Printf("Could not save snapshot: %v", err)
						} else {
							log.Printf("Saved %s", snapshotPath)
						}
					}
				}

			case system.DestroyEvent:
				os.Exit(0)
			}
		}
	}()

	app.Main()
	return nil
}
