package render

import (
	"github.com/younwookim/darkanmon/internal/domain/entity"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// EntityRenderer draws textured quads.
type EntityRenderer struct {
	batch
}

// NewEntityRenderer creates the quad program on d. It is compiled on the
// first Prepare.
func NewEntityRenderer(d gfx.Device) *EntityRenderer {
	return &EntityRenderer{batch{
		name:    "entity renderer",
		device:  d,
		program: gfx.NewProgram(gfx.ProgramQuad),
	}}
}

// Prepare binds the quad program and starts a batch.
func (r *EntityRenderer) Prepare() error {
	return r.prepare()
}

// SetProjection loads an orthographic projection covering res and resets
// the view.
func (r *EntityRenderer) SetProjection(res gfx.Resolution) {
	r.setProjection(res)
}

// BindCamera loads cam into the view uniform. nil resets the view.
func (r *EntityRenderer) BindCamera(cam *gfx.Camera) {
	r.bindCamera(cam)
}

// Render draws e under the current uniforms. Hidden or untextured
// entities are skipped.
func (r *EntityRenderer) Render(e *entity.Entity) {
	r.mustBeActive()
	if e == nil || e.Hidden || e.Texture == nil {
		r.stats.Skipped++
		return
	}
	mesh := e.Mesh
	if mesh == nil {
		mesh = gfx.UnitQuad()
	}
	vp := r.device.Viewport()
	q := mesh.Project(r.program.MVP(e.Model()),
		float32(vp.Min.X), float32(vp.Min.Y), float32(vp.Dx()), float32(vp.Dy()))
	r.device.DrawQuad(e.Texture, q, e.Tint)
	r.stats.Draws++
}

// RenderAll draws every entity of layer in depth order.
func (r *EntityRenderer) RenderAll(layer *entity.Layer) {
	r.mustBeActive()
	if layer == nil {
		return
	}
	for _, e := range layer.SortedEntities() {
		r.Render(e)
	}
}

// End closes the batch.
func (r *EntityRenderer) End() {
	r.active = false
}

// Program returns the renderer's program.
func (r *EntityRenderer) Program() *gfx.Program {
	return r.program
}

// Stats returns the counters of the current or last batch.
func (r *EntityRenderer) Stats() Stats {
	return r.stats
}

// Unload releases the compiled program.
func (r *EntityRenderer) Unload() {
	r.active = false
	r.device.ReleaseProgram(r.program)
}
