package asset

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx/softgfx"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newManager(t *testing.T) (*Manager, *softgfx.Device) {
	fsys := fstest.MapFS{
		"hero.png": {Data: pngBytes(t, 3, 2, color.RGBA{255, 0, 0, 255})},
		"bad.png":  {Data: []byte("not a png")},
		"bad.ttf":  {Data: []byte("not a font")},
	}
	d := softgfx.New(8, 8)
	return NewManager(fsys, d), d
}

func TestManager_TextureIsCached(t *testing.T) {
	m, _ := newManager(t)

	a, err := m.Texture("hero.png")
	require.NoError(t, err)
	w, h := a.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)

	b, err := m.Texture("hero.png")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, m.Len())
}

func TestManager_TextureErrors(t *testing.T) {
	m, _ := newManager(t)

	_, err := m.Texture("missing.png")
	assert.ErrorContains(t, err, "asset: open missing.png")

	_, err = m.Texture("bad.png")
	assert.ErrorContains(t, err, "asset: decode bad.png")
	assert.Zero(t, m.Len(), "failures are not cached")
}

func TestManager_DefaultMesh(t *testing.T) {
	m, _ := newManager(t)
	assert.Same(t, gfx.UnitQuad(), m.DefaultMesh())
}

func TestManager_DefaultFont(t *testing.T) {
	m, _ := newManager(t)

	f, err := m.Font(DefaultFont, 16)
	require.NoError(t, err)
	assert.Equal(t, DefaultFont, f.Name)
	assert.Equal(t, 16.0, f.Size)

	w, h := f.Measure("Play")
	assert.Greater(t, w, 0.0)
	assert.Greater(t, h, 0.0)
	assert.Equal(t, f.Face(), gfx.UnwrapFont(f))

	again, err := m.Font(DefaultFont, 16)
	require.NoError(t, err)
	assert.Same(t, f, again)

	bigger, err := m.Font(DefaultFont, 32)
	require.NoError(t, err)
	assert.NotSame(t, f, bigger)
}

func TestManager_FontErrors(t *testing.T) {
	m, _ := newManager(t)

	_, err := m.Font("missing.ttf", 12)
	assert.ErrorContains(t, err, "asset: read font missing.ttf")

	_, err = m.Font("bad.ttf", 12)
	assert.ErrorContains(t, err, "asset: font bad.ttf")
}
