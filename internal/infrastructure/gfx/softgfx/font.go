package softgfx

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// Font wraps an x/image font.Face.
type Font struct {
	face font.Face
}

// NewFont implements gfx.Device.
func (d *Device) NewFont(src []byte, size float64) (gfx.Font, error) {
	parsed, err := opentype.Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "softgfx: parse font")
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "softgfx: create face")
	}
	return &Font{face: face}, nil
}

// FromFace adapts an existing face, e.g. basicfont.Face7x13.
func FromFace(face font.Face) *Font {
	return &Font{face: face}
}

// Measure implements gfx.Font.
func (f *Font) Measure(s string) (float64, float64) {
	adv := font.MeasureString(f.face, s)
	return float64(adv.Ceil()), f.LineHeight()
}

// LineHeight implements gfx.Font.
func (f *Font) LineHeight() float64 {
	return float64(f.face.Metrics().Height.Ceil())
}

// DrawText implements gfx.Device. The run is rasterized at the face size
// and then scaled onto the bound target.
func (d *Device) DrawText(f gfx.Font, s string, x, y, scale float64, clr color.Color) {
	sf, ok := gfx.UnwrapFont(f).(*Font)
	if !ok || s == "" || scale <= 0 {
		return
	}
	w, h := sf.Measure(s)
	if w <= 0 || h <= 0 {
		return
	}
	run := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	drawer := font.Drawer{
		Dst:  run,
		Src:  image.NewUniform(clr),
		Face: sf.face,
		Dot:  fixed.P(0, sf.face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(s)

	aff := f64.Aff3{
		scale, 0, x,
		0, scale, y,
	}
	draw.NearestNeighbor.Transform(d.clipped(), aff, run, run.Bounds(), draw.Over, nil)
	d.Draws++
}
