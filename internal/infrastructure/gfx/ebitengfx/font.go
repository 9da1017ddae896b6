package ebitengfx

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// Font is a text/v2 face.
type Font struct {
	face *text.GoTextFace
}

// NewFont implements gfx.Device.
func (d *Device) NewFont(src []byte, size float64) (gfx.Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "ebitengfx: load font")
	}
	return &Font{face: &text.GoTextFace{Source: source, Size: size}}, nil
}

// Measure implements gfx.Font.
func (f *Font) Measure(s string) (float64, float64) {
	return text.Measure(s, f.face, f.LineHeight())
}

// LineHeight implements gfx.Font.
func (f *Font) LineHeight() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// DrawText implements gfx.Device.
func (d *Device) DrawText(f gfx.Font, s string, x, y, scale float64, clr color.Color) {
	ef, ok := gfx.UnwrapFont(f).(*Font)
	dst := d.dst()
	if !ok || dst == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = ef.LineHeight()
	text.Draw(dst, s, ef.face, op)
}
