package gfx_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx/softgfx"
)

func TestResolution(t *testing.T) {
	r := gfx.Resolution{Width: 1920, Height: 1080}
	assert.Equal(t, mgl32.Vec2{960, 540}, r.Center())
	assert.True(t, r.Valid())
	assert.Equal(t, "1920x1080", r.String())
	assert.False(t, gfx.Resolution{Width: 0, Height: 10}.Valid())
}

func TestProgramKindString(t *testing.T) {
	tests := []struct {
		kind     gfx.ProgramKind
		expected string
	}{
		{gfx.ProgramQuad, "quad"},
		{gfx.ProgramText, "text"},
		{gfx.ProgramKind(7), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestProgramOrthoMapsCornersToClipSpace(t *testing.T) {
	p := gfx.NewProgram(gfx.ProgramQuad)
	p.SetOrtho(1920, 1080)

	topLeft := p.MVP(mgl32.Ident4()).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	bottomRight := p.MVP(mgl32.Ident4()).Mul4x1(mgl32.Vec4{1920, 1080, 0, 1})

	assert.InDelta(t, -1, topLeft.X(), 1e-5)
	assert.InDelta(t, 1, topLeft.Y(), 1e-5)
	assert.InDelta(t, 1, bottomRight.X(), 1e-5)
	assert.InDelta(t, -1, bottomRight.Y(), 1e-5)
	assert.Equal(t, mgl32.Vec2{1920, 1080}, p.Span())
}

func TestCameraBindUniform(t *testing.T) {
	p := gfx.NewProgram(gfx.ProgramQuad)
	p.SetOrtho(1280, 720)

	t.Run("centered camera is identity", func(t *testing.T) {
		cam := gfx.NewCamera(mgl32.Vec2{640, 360})
		cam.BindUniform(p)
		assert.Equal(t, mgl32.Ident4(), p.View)
	})

	t.Run("origin is shown at the center", func(t *testing.T) {
		cam := gfx.NewCamera(mgl32.Vec2{100, 50})
		cam.BindUniform(p)
		moved := p.View.Mul4x1(mgl32.Vec4{100, 50, 0, 1})
		assert.InDelta(t, 640, moved.X(), 1e-4)
		assert.InDelta(t, 360, moved.Y(), 1e-4)
	})

	t.Run("offset shifts the view", func(t *testing.T) {
		cam := gfx.NewCamera(mgl32.Vec2{640, 360})
		cam.Offset = mgl32.Vec2{3, -2}
		assert.Equal(t, mgl32.Vec2{3, -2}, cam.Translation(p.Span()))
	})

	p.ResetView()
	assert.Equal(t, mgl32.Ident4(), p.View)
}

func TestMeshProject(t *testing.T) {
	p := gfx.NewProgram(gfx.ProgramQuad)
	p.SetOrtho(1280, 720)
	model := mgl32.Translate3D(640, 360, 0).Mul4(mgl32.Scale3D(1280, 720, 1))

	q := gfx.UnitQuad().Project(p.MVP(model), 0, 0, 1280, 720)

	want := [4][2]float32{{0, 0}, {1280, 0}, {0, 720}, {1280, 720}}
	for i, v := range q {
		assert.InDelta(t, want[i][0], v.DstX, 1e-2, "corner %d x", i)
		assert.InDelta(t, want[i][1], v.DstY, 1e-2, "corner %d y", i)
	}
	assert.Equal(t, float32(1), q[3].SrcX)
	assert.Equal(t, float32(1), q[3].SrcY)
}

func TestClipToViewportOffset(t *testing.T) {
	x, y := gfx.ClipToViewport(-1, 1, 10, 20, 100, 50)
	assert.Equal(t, float32(10), x)
	assert.Equal(t, float32(20), y)

	x, y = gfx.ClipToViewport(1, -1, 10, 20, 100, 50)
	assert.Equal(t, float32(110), x)
	assert.Equal(t, float32(70), y)
}

func TestColorMatrix(t *testing.T) {
	r, g, b, a := gfx.IdentityColorMatrix().Apply(0.2, 0.4, 0.6, 0.8)
	assert.InDelta(t, 0.2, r, 1e-6)
	assert.InDelta(t, 0.4, g, 1e-6)
	assert.InDelta(t, 0.6, b, 1e-6)
	assert.InDelta(t, 0.8, a, 1e-6)

	r, _, _, a = gfx.BrightnessMatrix(3).Apply(0.5, 0, 0, 1)
	assert.Equal(t, float32(1), r, "clamped")
	assert.Equal(t, float32(1), a)
}

func TestFBO(t *testing.T) {
	d := softgfx.New(64, 64)

	fbo, err := gfx.NewFBO(d, gfx.Resolution{Width: 32, Height: 16})
	require.NoError(t, err)
	assert.Equal(t, 32, fbo.Width())
	assert.Equal(t, 16, fbo.Height())
	assert.Equal(t, gfx.Resolution{Width: 32, Height: 16}, fbo.Resolution())

	w, h := fbo.Texture().Size()
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)

	fbo.Bind(d)
	assert.Equal(t, fbo.Target(), d.Bound())
	fbo.Unbind(d)
	assert.Nil(t, d.Bound())

	fbo.Dispose()
	assert.Nil(t, fbo.Target())
}

func TestNewFBORejectsInvalidSize(t *testing.T) {
	_, err := gfx.NewFBO(softgfx.New(4, 4), gfx.Resolution{})
	assert.Error(t, err)
}
