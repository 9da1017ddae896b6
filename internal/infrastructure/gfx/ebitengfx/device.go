// Package ebitengfx implements gfx.Device on top of ebiten.
//
// Render targets and textures are ebiten images. The quad program is a Kage
// shader driven through DrawTrianglesShader, text goes through text/v2, and
// post-processing color matrices run as a DrawRectShader pass.
package ebitengfx

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/logging"
)

var _ gfx.Device = (*Device)(nil)

// Texture wraps an ebiten image.
type Texture struct {
	img *ebiten.Image
}

// Size implements gfx.Texture.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying ebiten image.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Target is an off-screen ebiten image used as a framebuffer.
type Target struct {
	tex *Texture
}

// Texture implements gfx.RenderTarget.
func (t *Target) Texture() gfx.Texture { return t.tex }

// Size implements gfx.RenderTarget.
func (t *Target) Size() (int, int) { return t.tex.Size() }

// Dispose implements gfx.RenderTarget.
func (t *Target) Dispose() {
	if t.tex.img != nil {
		t.tex.img.Deallocate()
	}
}

// Device draws with ebiten. The window driver hands it the screen image
// at the start of every frame.
type Device struct {
	screen   *ebiten.Image
	bound    *Target
	viewport image.Rectangle
	clear    color.Color
	program  *gfx.Program
	shaders  map[*gfx.Program]*ebiten.Shader
	matrix   *ebiten.Shader

	vertices [4]ebiten.Vertex
	indices  []uint16
}

// New returns a device with no screen attached yet.
func New() *Device {
	return &Device{
		clear:   color.Black,
		shaders: make(map[*gfx.Program]*ebiten.Shader),
		indices: gfx.QuadIndices[:],
	}
}

// SetScreen attaches the image ebiten passed to Draw.
func (d *Device) SetScreen(screen *ebiten.Image) {
	d.screen = screen
}

// NewTexture implements gfx.Device.
func (d *Device) NewTexture(img image.Image) gfx.Texture {
	return &Texture{img: ebiten.NewImageFromImage(img)}
}

// NewRenderTarget implements gfx.Device.
func (d *Device) NewRenderTarget(width, height int) (gfx.RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("ebitengfx: invalid render target size %dx%d", width, height)
	}
	img := ebiten.NewImageWithOptions(image.Rect(0, 0, width, height), &ebiten.NewImageOptions{Unmanaged: true})
	return &Target{tex: &Texture{img: img}}, nil
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

func (d *Device) dst() *ebiten.Image {
	if d.bound == nil {
		return d.screen
	}
	return d.bound.tex.img
}

// SetViewport implements gfx.Device. Ebiten has no viewport state; the
// rectangle only feeds vertex placement, which the renderers already do.
func (d *Device) SetViewport(r image.Rectangle) { d.viewport = r }

// Viewport implements gfx.Device.
func (d *Device) Viewport() image.Rectangle { return d.viewport }

// SetClearColor implements gfx.Device.
func (d *Device) SetClearColor(c color.Color) { d.clear = c }

// Clear implements gfx.Device.
func (d *Device) Clear() {
	if dst := d.dst(); dst != nil {
		dst.Fill(d.clear)
	}
}

// UseProgram implements gfx.Device. Text programs need no shader: text/v2
// owns its glyph atlas pipeline.
func (d *Device) UseProgram(p *gfx.Program) error {
	d.program = p
	if p == nil || p.Kind != gfx.ProgramQuad {
		return nil
	}
	if _, ok := d.shaders[p]; ok {
		return nil
	}
	s, err := ebiten.NewShader([]byte(quadShaderSrc))
	if err != nil {
		return errors.Wrap(err, "ebitengfx: compile quad shader")
	}
	d.shaders[p] = s
	logging.For("ebitengfx").Debug("compiled program", "kind", p.Kind)
	return nil
}

// ReleaseProgram implements gfx.Device.
func (d *Device) ReleaseProgram(p *gfx.Program) {
	if s, ok := d.shaders[p]; ok {
		s.Deallocate()
		delete(d.shaders, p)
	}
	if d.program == p {
		d.program = nil
	}
}

// DrawQuad implements gfx.Device.
func (d *Device) DrawQuad(tex gfx.Texture, q gfx.Quad, tint color.Color) {
	t, ok := tex.(*Texture)
	dst := d.dst()
	if !ok || t == nil || dst == nil || d.program == nil {
		return
	}
	shader := d.shaders[d.program]
	if shader == nil {
		return
	}

	r, g, b, a := float32(1), float32(1), float32(1), float32(1)
	if tint != nil {
		cr, cg, cb, ca := tint.RGBA()
		r, g, b, a = float32(cr)/0xffff, float32(cg)/0xffff, float32(cb)/0xffff, float32(ca)/0xffff
	}
	w, h := t.Size()
	for i, v := range q {
		d.vertices[i] = ebiten.Vertex{
			DstX:   v.DstX,
			DstY:   v.DstY,
			SrcX:   v.SrcX * float32(w),
			SrcY:   v.SrcY * float32(h),
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}

	var op ebiten.DrawTrianglesShaderOptions
	op.Images[0] = t.img
	dst.DrawTrianglesShader(d.vertices[:], d.indices, shader, &op)
}

// ApplyColorMatrix implements gfx.Device.
func (d *Device) ApplyColorMatrix(dst gfx.RenderTarget, src gfx.Texture, m gfx.ColorMatrix) {
	out, ok := dst.(*Target)
	in, ok2 := src.(*Texture)
	if !ok || !ok2 {
		return
	}
	if d.matrix == nil {
		s, err := ebiten.NewShader([]byte(colorMatrixShaderSrc))
		if err != nil {
			panic("ebitengfx: color matrix shader: " + err.Error())
		}
		d.matrix = s
	}
	w, h := in.Size()
	out.tex.img.Clear()
	var op ebiten.DrawRectShaderOptions
	op.Images[0] = in.img
	op.Uniforms = map[string]any{"Matrix": m[:]}
	out.tex.img.DrawRectShader(w, h, d.matrix, &op)
}

// Dispose releases every compiled shader.
func (d *Device) Dispose() {
	for p := range d.shaders {
		d.ReleaseProgram(p)
	}
	if d.matrix != nil {
		d.matrix.Deallocate()
		d.matrix = nil
	}
}
