// Package preview renders a density grid as a PNG for inspection.
//
// Each cell is mapped to a factor m = clamp(2v, 0, 0.95) and drawn as
// (1-m)*From + m*To with alpha m, so empty cells are fully transparent.
// Row 0 is the top of the image.
package preview

import (
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/heat"
)

// MaxIntensity is the upper bound of the colour factor.
const MaxIntensity = 0.95

// Options configures rendering.
type Options struct {
	// From is the colour of low-intensity cells.
	From RGB

	// To is the colour of high-intensity cells.
	To RGB

	// Scale is the number of output pixels per cell. Values below 1 are
	// treated as 1.
	Scale int
}

// DefaultOptions returns blue-to-red colouring at one pixel per cell.
func DefaultOptions() Options {
	return Options{
		From:  RGB{B: 1},
		To:    RGB{R: 1},
		Scale: 1,
	}
}

// Intensity maps a cell value to the colour factor in [0, MaxIntensity].
func Intensity(v float32) float64 {
	m := float64(v) * 2
	switch {
	case m < 0:
		return 0
	case m > MaxIntensity:
		return MaxIntensity
	default:
		return m
	}
}

// Render draws g into a new image. The image is g.Cols()*Scale pixels wide
// and g.Rows()*Scale pixels tall; upscaling uses Catmull-Rom resampling.
func Render(g *heat.Grid, opts Options) *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := range g.Rows() {
		for c := range g.Cols() {
			m := Intensity(g.At(r, c))
			src.SetNRGBA(c, r, opts.From.Lerp(opts.To, m).NRGBA(m))
		}
	}

	if opts.Scale <= 1 || src.Rect.Empty() {
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, g.Cols()*opts.Scale, g.Rows()*opts.Scale))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Encode renders g and writes it to w as PNG.
func Encode(w io.Writer, g *heat.Grid, opts Options) error {
	return png.Encode(w, Render(g, opts))
}
