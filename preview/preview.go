// Package preview renders a monochrome framebuffer as an enlarged picture of
// an OLED panel, one round dot per pixel. It is used to check text layout
// without hardware attached.
package preview

import (
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Opts controls the look of the rendered panel.
type Opts struct {
	Scale int         // Output pixels per display pixel (default: 4)
	Lit   color.Color // Color of lit dots (default: white)
	Dark  color.Color // Panel background (default: black)
}

// DefaultOpts is used when nil is passed to Render or Save.
var DefaultOpts = Opts{
	Scale: 4,
	Lit:   color.White,
	Dark:  color.Black,
}

func withDefaults(opts *Opts) Opts {
	o := DefaultOpts
	if opts == nil {
		return o
	}
	if opts.Scale > 0 {
		o.Scale = opts.Scale
	}
	if opts.Lit != nil {
		o.Lit = opts.Lit
	}
	if opts.Dark != nil {
		o.Dark = opts.Dark
	}
	return o
}

// Render draws img as a dot matrix. A pixel is lit when its luma is at
// least half scale, so both image1bit images and ordinary images work.
func Render(img image.Image, opts *Opts) image.Image {
	return render(img, withDefaults(opts)).Image()
}

// Save renders img and writes it as a PNG file.
func Save(path string, img image.Image, opts *Opts) error {
	if path == "" {
		return errors.New("preview: empty path")
	}
	return render(img, withDefaults(opts)).SavePNG(path)
}

func render(img image.Image, o Opts) *gg.Context {
	b := img.Bounds()
	s := float64(o.Scale)
	dc := gg.NewContext(b.Dx()*o.Scale, b.Dy()*o.Scale)
	dc.SetColor(o.Dark)
	dc.Clear()

	dc.SetColor(o.Lit)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !lit(img.At(x, y)) {
				continue
			}
			cx := (float64(x-b.Min.X) + 0.5) * s
			cy := (float64(y-b.Min.Y) + 0.5) * s
			dc.DrawCircle(cx, cy, s*0.45)
		}
	}
	dc.Fill()
	return dc
}

func lit(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y >= 0x80
}
