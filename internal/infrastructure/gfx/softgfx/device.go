// Package softgfx implements gfx.Device in software on image.RGBA.
//
// It backs the headless window and the package tests: every draw the GPU
// backend would issue is rasterized with golang.org/x/image/draw, so frame
// content can be read back pixel by pixel.
package softgfx

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

var _ gfx.Device = (*Device)(nil)

// Texture is an RGBA image. Pixels are premultiplied, as image.RGBA requires.
type Texture struct {
	img *image.RGBA
}

// Size implements gfx.Texture.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the pixels for inspection.
func (t *Texture) Image() *image.RGBA {
	return t.img
}

// Target is an off-screen render target.
type Target struct {
	tex *Texture
}

// Texture implements gfx.RenderTarget.
func (t *Target) Texture() gfx.Texture { return t.tex }

// Size implements gfx.RenderTarget.
func (t *Target) Size() (int, int) { return t.tex.Size() }

// Dispose implements gfx.RenderTarget.
func (t *Target) Dispose() {}

// Device draws into in-memory images. The screen stands in for the window's
// default framebuffer.
type Device struct {
	screen   *Target
	bound    *Target
	viewport image.Rectangle
	clear    color.Color
	program  *gfx.Program
	compiled map[*gfx.Program]bool

	// Draws counts DrawQuad and DrawText calls since creation.
	Draws int
}

// New returns a device whose screen has the given size.
func New(width, height int) *Device {
	d := &Device{
		clear:    color.Black,
		compiled: make(map[*gfx.Program]bool),
	}
	d.screen = newTarget(width, height)
	d.viewport = image.Rect(0, 0, width, height)
	return d
}

func newTarget(w, h int) *Target {
	return &Target{tex: &Texture{img: image.NewRGBA(image.Rect(0, 0, w, h))}}
}

// Screen returns the window image.
func (d *Device) Screen() *image.RGBA {
	return d.screen.tex.img
}

// ResizeScreen reallocates the window image, as a swap chain would on resize.
func (d *Device) ResizeScreen(width, height int) {
	d.screen = newTarget(width, height)
}

// NewTexture implements gfx.Device.
func (d *Device) NewTexture(img image.Image) gfx.Texture {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	stddraw.Draw(rgba, rgba.Bounds(), img, b.Min, stddraw.Src)
	return &Texture{img: rgba}
}

// NewRenderTarget implements gfx.Device.
func (d *Device) NewRenderTarget(width, height int) (gfx.RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("softgfx: invalid render target size %dx%d", width, height)
	}
	return newTarget(width, height), nil
}

// Bind implements gfx.Device.
func (d *Device) Bind(target gfx.RenderTarget) {
	if target == nil {
		d.bound = nil
		return
	}
	d.bound = target.(*Target)
}

// Bound implements gfx.Device.
func (d *Device) Bound() gfx.RenderTarget {
	if d.bound == nil {
		return nil
	}
	return d.bound
}

func (d *Device) dst() *image.RGBA {
	if d.bound == nil {
		return d.screen.tex.img
	}
	return d.bound.tex.img
}

// SetViewport implements gfx.Device.
func (d *Device) SetViewport(r image.Rectangle) { d.viewport = r }

// Viewport implements gfx.Device.
func (d *Device) Viewport() image.Rectangle { return d.viewport }

// SetClearColor implements gfx.Device.
func (d *Device) SetClearColor(c color.Color) { d.clear = c }

// Clear implements gfx.Device.
func (d *Device) Clear() {
	dst := d.dst()
	stddraw.Draw(dst, dst.Bounds(), image.NewUniform(d.clear), image.Point{}, stddraw.Src)
}

// UseProgram implements gfx.Device.
func (d *Device) UseProgram(p *gfx.Program) error {
	if p != nil {
		d.compiled[p] = true
	}
	d.program = p
	return nil
}

// Program returns the program in use.
func (d *Device) Program() *gfx.Program { return d.program }

// ReleaseProgram implements gfx.Device.
func (d *Device) ReleaseProgram(p *gfx.Program) {
	delete(d.compiled, p)
	if d.program == p {
		d.program = nil
	}
}

// Compiled reports whether p holds device resources.
func (d *Device) Compiled(p *gfx.Program) bool {
	return d.compiled[p]
}

// clipped returns the bound image restricted to the viewport.
func (d *Device) clipped() *image.RGBA {
	dst := d.dst()
	return dst.SubImage(d.viewport.Intersect(dst.Bounds())).(*image.RGBA)
}

// DrawQuad implements gfx.Device. The quad must be affine, which holds for
// every orthographic projection.
func (d *Device) DrawQuad(tex gfx.Texture, q gfx.Quad, tint color.Color) {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return
	}
	w, h := t.Size()
	aff, ok := quadTransform(q, float64(w), float64(h))
	if !ok {
		return
	}
	var src image.Image = t.img
	if tint != nil {
		src = tinted(t.img, tint)
	}
	draw.NearestNeighbor.Transform(d.clipped(), aff, src, src.Bounds(), draw.Over, nil)
	d.Draws++
}

// quadTransform solves the affine map from source pixels to destination
// pixels through the top-left, top-right and bottom-left corners.
func quadTransform(q gfx.Quad, w, h float64) (f64.Aff3, bool) {
	s0 := mgl64.Vec2{float64(q[0].SrcX) * w, float64(q[0].SrcY) * h}
	s1 := mgl64.Vec2{float64(q[1].SrcX) * w, float64(q[1].SrcY) * h}
	s2 := mgl64.Vec2{float64(q[2].SrcX) * w, float64(q[2].SrcY) * h}
	d0 := mgl64.Vec2{float64(q[0].DstX), float64(q[0].DstY)}
	d1 := mgl64.Vec2{float64(q[1].DstX), float64(q[1].DstY)}
	d2 := mgl64.Vec2{float64(q[2].DstX), float64(q[2].DstY)}

	su, sv := s1.Sub(s0), s2.Sub(s0)
	src := mgl64.Mat2{su.X(), su.Y(), sv.X(), sv.Y()}
	if src.Det() == 0 {
		return f64.Aff3{}, false
	}
	du, dv := d1.Sub(d0), d2.Sub(d0)
	dst := mgl64.Mat2{du.X(), du.Y(), dv.X(), dv.Y()}

	a := dst.Mul2(src.Inv())
	t := d0.Sub(a.Mul2x1(s0))
	return f64.Aff3{
		a.At(0, 0), a.At(0, 1), t.X(),
		a.At(1, 0), a.At(1, 1), t.Y(),
	}, true
}

// tinted returns a copy of img multiplied by c.
func tinted(img *image.RGBA, c color.Color) *image.RGBA {
	tr, tg, tb, ta := c.RGBA()
	if tr == 0xffff && tg == 0xffff && tb == 0xffff && ta == 0xffff {
		return img
	}
	out := image.NewRGBA(img.Bounds())
	for i := 0; i+3 < len(img.Pix); i += 4 {
		out.Pix[i+0] = uint8(uint32(img.Pix[i+0]) * tr / 0xffff)
		out.Pix[i+1] = uint8(uint32(img.Pix[i+1]) * tg / 0xffff)
		out.Pix[i+2] = uint8(uint32(img.Pix[i+2]) * tb / 0xffff)
		out.Pix[i+3] = uint8(uint32(img.Pix[i+3]) * ta / 0xffff)
	}
	return out
}

// ApplyColorMatrix implements gfx.Device.
func (d *Device) ApplyColorMatrix(dst gfx.RenderTarget, src gfx.Texture, m gfx.ColorMatrix) {
	out, ok := dst.(*Target)
	in, ok2 := src.(*Texture)
	if !ok || !ok2 {
		return
	}
	b := in.img.Bounds().Intersect(out.tex.img.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := in.img.RGBAAt(x, y)
			r, g, bl, a := straight(c)
			r, g, bl, a = m.Apply(r, g, bl, a)
			out.tex.img.SetRGBA(x, y, premultiplied(r, g, bl, a))
		}
	}
}

func straight(c color.RGBA) (float32, float32, float32, float32) {
	if c.A == 0 {
		return 0, 0, 0, 0
	}
	a := float32(c.A) / 255
	return float32(c.R) / 255 / a, float32(c.G) / 255 / a, float32(c.B) / 255 / a, a
}

func premultiplied(r, g, b, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(r*a*255 + 0.5),
		G: uint8(g*a*255 + 0.5),
		B: uint8(b*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}
