// Package scene defines the Scene interface for game screens.
//
// Each game screen (main menu, tutorial, battle, etc.) implements the
// Scene interface. The frame pipeline owns exactly one active scene,
// drives its lifecycle and draws its layers; the scene reaches back into
// the pipeline through the Context it receives in Init.
package scene

import (
	"github.com/younwookim/darkanmon/internal/application/render"
	"github.com/younwookim/darkanmon/internal/domain/entity"
	"github.com/younwookim/darkanmon/internal/domain/input"
	"github.com/younwookim/darkanmon/internal/infrastructure/asset"
	"github.com/younwookim/darkanmon/internal/infrastructure/config"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// Scene represents a game screen.
type Scene interface {
	// Init is called once when the scene becomes active, before any Update.
	Init(ctx Context) error

	// Update advances the scene. delta is the wall-clock time since the
	// previous frame in seconds.
	Update(delta float64) error

	// Finish is called once when the scene is replaced or the pipeline
	// shuts down. No Update follows it.
	Finish()

	// OnWindowResize is called after the window size changed and the view
	// layout was recomputed.
	OnWindowResize()

	// PostProcess may transform the rendered world. It returns the texture
	// to display, or nil to display the framebuffer unchanged.
	PostProcess(fbo *gfx.FBO) gfx.Texture

	// World holds the entities and text drawn into the framebuffer.
	World() *entity.Layer
	// UI holds the entities and text drawn over the composited view.
	UI() *entity.Layer
	// Camera views the world layer.
	Camera() *gfx.Camera

	// Hooks for items the pipeline cannot enumerate from the layers.
	RenderExtraWorldEntity(r *render.EntityRenderer)
	RenderExtraWorldText(r *render.FontRenderer)
	RenderUIEntity(r *render.EntityRenderer)
	RenderUIText(r *render.FontRenderer)
}

// Context is the pipeline as seen by a scene.
type Context interface {
	// SetScene replaces the active scene. Called during a frame, the
	// switch happens once the current Update returns.
	SetScene(next Scene) error

	// GameResolution is the fixed size of the world framebuffer.
	GameResolution() gfx.Resolution
	// WindowSize is the current size of the window.
	WindowSize() gfx.Resolution

	Input() *input.State
	Assets() *asset.Manager
	Levels() *config.Loader
	Device() gfx.Device
}
