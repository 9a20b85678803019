// Package render draws encoded cookie series as scatter charts.
package render

import (
	"image/color"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"cookietrace/internal/domain"
)

// Scatter renders one cookie series as a PNG chart of encoded value over time.
type Scatter struct{}

func NewScatter() *Scatter { return &Scatter{} }

var _ domain.Renderer = (*Scatter)(nil)

func (Scatter) Render(name string, samples []domain.EncodedSample, path string) error {
	p := plot.New()
	p.Title.Text = name + " Values Over Time"
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "time"
	p.Y.Label.Text = "value"
	p.X.Tick.Marker = plot.TimeTicks{
		Format: "15:04:05",
		Time:   plot.UnixTimeIn(time.Local),
	}

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = float64(s.At.UnixNano()) / float64(time.Second)
		pts[i].Y = s.Decimal
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Color = color.RGBA{R: 0xff, A: 0xff}
	p.Add(sc)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
