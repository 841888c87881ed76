package chart

import (
	"image"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Render draws the chart to an in-memory image. Width and height are in
// inches.
func Render(p *plot.Plot, width, height float64) image.Image {
	c := vgimg.New(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch)
	p.Draw(draw.New(c))
	return c.Image()
}

// Save writes the chart to path; the file extension picks the format
func Save(p *plot.Plot, width, height float64, path string) error {
	if err := p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "saving chart to %s", path)
	}
	return nil
}
