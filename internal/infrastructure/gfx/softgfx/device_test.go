package softgfx

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func solid(d *Device, c color.Color, w, h int) gfx.Texture {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return d.NewTexture(img)
}

// drawEntity projects the unit quad at pos/scale the way the renderers do.
func drawEntity(d *Device, p *gfx.Program, tex gfx.Texture, pos, scale mgl32.Vec2) {
	model := mgl32.Translate3D(pos.X(), pos.Y(), 0).Mul4(mgl32.Scale3D(scale.X(), scale.Y(), 1))
	vp := d.Viewport()
	q := gfx.UnitQuad().Project(p.MVP(model), float32(vp.Min.X), float32(vp.Min.Y), float32(vp.Dx()), float32(vp.Dy()))
	d.DrawQuad(tex, q, nil)
}

func TestNewRenderTarget(t *testing.T) {
	d := New(64, 32)

	rt, err := d.NewRenderTarget(16, 8)
	require.NoError(t, err)
	w, h := rt.Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 8, h)

	_, err = d.NewRenderTarget(0, 8)
	assert.Error(t, err)
}

func TestClearIgnoresViewport(t *testing.T) {
	d := New(8, 8)
	d.SetViewport(image.Rect(0, 0, 2, 2))
	d.SetClearColor(blue)
	d.Clear()

	assert.Equal(t, blue, d.Screen().RGBAAt(7, 7))
}

func TestDrawQuadFillsProjectedRect(t *testing.T) {
	d := New(100, 50)
	p := gfx.NewProgram(gfx.ProgramQuad)
	p.SetOrtho(100, 50)
	d.SetViewport(image.Rect(0, 0, 100, 50))

	drawEntity(d, p, solid(d, red, 4, 4), mgl32.Vec2{50, 25}, mgl32.Vec2{20, 10})

	screen := d.Screen()
	assert.Equal(t, red, screen.RGBAAt(50, 25))
	assert.Equal(t, red, screen.RGBAAt(41, 21))
	assert.Equal(t, color.RGBA{}, screen.RGBAAt(38, 25))
	assert.Equal(t, color.RGBA{}, screen.RGBAAt(50, 32))
	assert.Equal(t, 1, d.Draws)
}

func TestDrawQuadClipsToViewport(t *testing.T) {
	d := New(20, 20)
	p := gfx.NewProgram(gfx.ProgramQuad)
	p.SetOrtho(10, 10)
	d.SetViewport(image.Rect(0, 0, 10, 10))

	drawEntity(d, p, solid(d, red, 1, 1), mgl32.Vec2{10, 10}, mgl32.Vec2{20, 20})

	assert.Equal(t, red, d.Screen().RGBAAt(9, 9))
	assert.Equal(t, color.RGBA{}, d.Screen().RGBAAt(12, 12))
}

func TestRenderTargetRoundTrip(t *testing.T) {
	d := New(200, 100)
	p := gfx.NewProgram(gfx.ProgramQuad)
	rt, err := d.NewRenderTarget(40, 20)
	require.NoError(t, err)

	// Draw a red quad into the left half of the target.
	d.Bind(rt)
	p.SetOrtho(40, 20)
	d.SetViewport(image.Rect(0, 0, 40, 20))
	d.Clear()
	drawEntity(d, p, solid(d, red, 2, 2), mgl32.Vec2{10, 10}, mgl32.Vec2{20, 20})
	d.Bind(nil)
	assert.Nil(t, d.Bound())

	// Composite the target over the whole screen.
	p.SetOrtho(200, 100)
	d.SetViewport(image.Rect(0, 0, 200, 100))
	d.SetClearColor(blue)
	d.Clear()
	drawEntity(d, p, rt.Texture(), mgl32.Vec2{100, 50}, mgl32.Vec2{200, 100})

	assert.Equal(t, red, d.Screen().RGBAAt(25, 50), "left half keeps the quad color")
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, d.Screen().RGBAAt(150, 50), "right half shows the target clear color")
}

func TestQuadTransformDegenerate(t *testing.T) {
	_, ok := quadTransform(gfx.Quad{}, 4, 4)
	assert.False(t, ok)
}

func TestApplyColorMatrix(t *testing.T) {
	d := New(4, 4)
	src, err := d.NewRenderTarget(2, 2)
	require.NoError(t, err)
	dst, err := d.NewRenderTarget(2, 2)
	require.NoError(t, err)

	d.Bind(src)
	d.SetClearColor(color.RGBA{200, 100, 50, 255})
	d.Clear()
	d.Bind(nil)

	d.ApplyColorMatrix(dst, src.Texture(), gfx.BrightnessMatrix(0.5))

	got := dst.Texture().(*Texture).Image().RGBAAt(1, 1)
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, got)
}

func TestProgramLifecycle(t *testing.T) {
	d := New(4, 4)
	p := gfx.NewProgram(gfx.ProgramText)

	require.NoError(t, d.UseProgram(p))
	assert.True(t, d.Compiled(p))
	assert.Equal(t, p, d.Program())

	d.ReleaseProgram(p)
	assert.False(t, d.Compiled(p))
	assert.Nil(t, d.Program())
}

func TestDrawTextMarksPixels(t *testing.T) {
	d := New(120, 40)
	f := FromFace(basicfont.Face7x13)

	w, h := f.Measure("Play")
	assert.Equal(t, 28.0, w)
	assert.Equal(t, 13.0, h)

	d.DrawText(f, "Play", 10, 10, 1, color.White)

	var lit int
	for y := 10; y < 23; y++ {
		for x := 10; x < 38; x++ {
			if d.Screen().RGBAAt(x, y).A > 0 {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
	assert.Equal(t, color.RGBA{}, d.Screen().RGBAAt(100, 30))
}

func TestNewFontRejectsGarbage(t *testing.T) {
	d := New(4, 4)
	_, err := d.NewFont([]byte("not a font"), 12)
	assert.Error(t, err)
}
