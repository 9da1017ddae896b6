package system

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/darkanmon/internal/domain/entity"
	"github.com/younwookim/darkanmon/internal/infrastructure/asset"
	"github.com/younwookim/darkanmon/internal/infrastructure/config"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx/softgfx"
)

func testAssets(t *testing.T) *asset.Manager {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	fsys := fstest.MapFS{"tile.png": {Data: buf.Bytes()}}
	return asset.NewManager(fsys, softgfx.New(4, 4))
}

var defaultFont = config.FontConfig{Name: asset.DefaultFont, Size: 16}

func TestLoadLevel(t *testing.T) {
	t.Run("places entities and texts in their layers", func(t *testing.T) {
		cfg := &config.LevelConfig{
			ID:     "demo",
			Camera: &config.Point{X: 10, Y: 20},
			World: []config.EntityConfig{
				{Name: "bg", Texture: "tile.png", X: 50, Y: 50, Width: 100, Height: 100, Depth: -1},
				{Name: "coin", Texture: "tile.png", X: 1, Y: 1, Width: 4, Height: 4},
				{Name: "coin", Texture: "tile.png", X: 9, Y: 9, Width: 4, Height: 4},
			},
			UI: []config.EntityConfig{
				{Name: "button", Texture: "tile.png", X: 640, Y: 150, Width: 200, Height: 80,
					Tint: config.Color{RGBA: color.RGBA{1, 2, 3, 255}, Set: true}},
			},
			Text: []config.TextConfig{
				{Name: "title", Content: "Hello", X: 5, Y: 6, Scale: 2, Centered: true, Layer: "world"},
				{Name: "label", Content: "Play", Depth: 3},
			},
		}
		world, ui := entity.NewLayer(), entity.NewLayer()

		lvl, err := LoadLevel(cfg, testAssets(t), defaultFont, world, ui)
		require.NoError(t, err)

		assert.Equal(t, "demo", lvl.ID)
		require.NotNil(t, lvl.Camera)
		assert.Equal(t, mgl32.Vec2{10, 20}, *lvl.Camera)

		assert.Len(t, world.Entities(), 3)
		assert.Len(t, lvl.Entities["coin"], 2)
		assert.Equal(t, -1, lvl.Entity("bg").Depth)
		assert.Nil(t, lvl.Entity("nope"))

		button := lvl.Entity("button")
		require.NotNil(t, button)
		assert.Equal(t, []*entity.Entity{button}, ui.Entities())
		assert.Equal(t, mgl32.Vec2{200, 80}, button.Scale)
		assert.Equal(t, color.RGBA{1, 2, 3, 255}, button.Tint)

		title := lvl.Texts["title"]
		require.NotNil(t, title)
		assert.Equal(t, []*entity.Text{title}, world.Texts())
		assert.Equal(t, float32(2), title.Size)
		assert.True(t, title.Centered)

		label := lvl.Texts["label"]
		assert.Equal(t, []*entity.Text{label}, ui.Texts())
		assert.Equal(t, float32(1), label.Size)
		assert.Equal(t, color.White, label.Color)
	})

	t.Run("missing texture leaves layers untouched", func(t *testing.T) {
		cfg := &config.LevelConfig{
			ID: "broken",
			World: []config.EntityConfig{
				{Name: "ok", Texture: "tile.png", Width: 1, Height: 1},
				{Name: "bad", Texture: "missing.png", Width: 1, Height: 1},
			},
		}
		world, ui := entity.NewLayer(), entity.NewLayer()

		_, err := LoadLevel(cfg, testAssets(t), defaultFont, world, ui)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `level broken: entity "bad"`)
		assert.Zero(t, world.Len())
		assert.Zero(t, ui.Len())
	})

	t.Run("missing font fails", func(t *testing.T) {
		cfg := &config.LevelConfig{
			ID:   "fonts",
			Text: []config.TextConfig{{Name: "x", Content: "x", Font: "nope.ttf"}},
		}

		_, err := LoadLevel(cfg, testAssets(t), defaultFont, entity.NewLayer(), entity.NewLayer())
		assert.ErrorContains(t, err, `level fonts: text "x"`)
	})
}

func TestLoadLevel_ShippedLevels(t *testing.T) {
	loader := config.NewLoader("../../../cmd/game/configs")
	assets := asset.NewManager(osDir("../../../cmd/game/res"), softgfx.New(4, 4))

	for _, name := range []string{"mainmenu", "tutorial"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := loader.LoadLevel(name)
			require.NoError(t, err)

			world, ui := entity.NewLayer(), entity.NewLayer()
			_, err = LoadLevel(cfg, assets, defaultFont, world, ui)
			require.NoError(t, err)
			assert.NotZero(t, world.Len())
		})
	}
}
