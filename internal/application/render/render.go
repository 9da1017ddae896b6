// Package render draws entities and text through a gfx.Device.
//
// Both renderers follow the same bracket: Prepare binds the program and
// resets the batch stats, SetProjection and BindCamera load the uniforms,
// Render/RenderAll draw, End closes the batch. Drawing outside the bracket
// panics. Renderers own their programs but never the items they draw.
package render

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// Stats counts the work done since the last Prepare.
type Stats struct {
	Draws       int
	Skipped     int
	Regenerated int
}

// batch is the state shared by both renderers.
type batch struct {
	name    string
	device  gfx.Device
	program *gfx.Program
	active  bool
	stats   Stats
}

func (b *batch) prepare() error {
	if err := b.device.UseProgram(b.program); err != nil {
		return err
	}
	b.active = true
	b.stats = Stats{}
	return nil
}

func (b *batch) mustBeActive() {
	if !b.active {
		panic("render: " + b.name + " used outside Prepare/End")
	}
}

func (b *batch) setProjection(res gfx.Resolution) {
	b.program.SetOrtho(res.Width, res.Height)
	b.program.ResetView()
}

func (b *batch) bindCamera(cam *gfx.Camera) {
	if cam == nil {
		b.program.ResetView()
		return
	}
	cam.BindUniform(b.program)
}

// toTarget maps a world point to pixels of the bound target.
func (b *batch) toTarget(p mgl32.Vec2) (float32, float32, image.Rectangle) {
	vp := b.device.Viewport()
	clip := b.program.MVP(mgl32.Ident4()).Mul4x1(mgl32.Vec4{p.X(), p.Y(), 0, 1})
	x, y := gfx.ClipToViewport(clip.X(), clip.Y(),
		float32(vp.Min.X), float32(vp.Min.Y), float32(vp.Dx()), float32(vp.Dy()))
	return x, y, vp
}
