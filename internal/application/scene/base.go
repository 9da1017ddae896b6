package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/darkanmon/internal/application/render"
	"github.com/younwookim/darkanmon/internal/domain/entity"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// Base provides the layers, the camera and no-op hooks. Concrete scenes
// embed it and override what they need.
type Base struct {
	Ctx Context

	world  *entity.Layer
	ui     *entity.Layer
	camera *gfx.Camera
}

// Init stores ctx, empties the layers and centers the camera on the game
// resolution. Scenes that override Init must call it first.
func (b *Base) Init(ctx Context) error {
	b.Ctx = ctx
	b.World().Clear()
	b.UI().Clear()
	b.Camera().SetOrigin(ctx.GameResolution().Center())
	b.Camera().Offset = mgl32.Vec2{}
	return nil
}

func (b *Base) Update(delta float64) error { return nil }

// Finish empties the layers.
func (b *Base) Finish() {
	b.World().Clear()
	b.UI().Clear()
}

func (b *Base) OnWindowResize() {}

func (b *Base) PostProcess(fbo *gfx.FBO) gfx.Texture { return nil }

func (b *Base) World() *entity.Layer {
	if b.world == nil {
		b.world = entity.NewLayer()
	}
	return b.world
}

func (b *Base) UI() *entity.Layer {
	if b.ui == nil {
		b.ui = entity.NewLayer()
	}
	return b.ui
}

func (b *Base) Camera() *gfx.Camera {
	if b.camera == nil {
		b.camera = gfx.NewCamera(mgl32.Vec2{})
	}
	return b.camera
}

func (b *Base) RenderExtraWorldEntity(r *render.EntityRenderer) {}
func (b *Base) RenderExtraWorldText(r *render.FontRenderer)     {}
func (b *Base) RenderUIEntity(r *render.EntityRenderer)         {}
func (b *Base) RenderUIText(r *render.FontRenderer)             {}
