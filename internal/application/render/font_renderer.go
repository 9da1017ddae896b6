package render

import (
	"image/color"

	"github.com/younwookim/darkanmon/internal/domain/entity"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// FontRenderer draws text runs.
type FontRenderer struct {
	batch
}

// NewFontRenderer creates the text program on d.
func NewFontRenderer(d gfx.Device) *FontRenderer {
	return &FontRenderer{batch{
		name:    "font renderer",
		device:  d,
		program: gfx.NewProgram(gfx.ProgramText),
	}}
}

// Prepare binds the text program and starts a batch.
func (r *FontRenderer) Prepare() error {
	return r.prepare()
}

// SetProjection loads an orthographic projection covering res.
func (r *FontRenderer) SetProjection(res gfx.Resolution) {
	r.setProjection(res)
}

// BindCamera loads cam into the view uniform. nil resets the view.
func (r *FontRenderer) BindCamera(cam *gfx.Camera) {
	r.bindCamera(cam)
}

// Render draws t. Stale geometry is regenerated first.
func (r *FontRenderer) Render(t *entity.Text) {
	r.mustBeActive()
	if t == nil || t.Hidden || t.Font == nil || t.Content() == "" {
		r.stats.Skipped++
		return
	}
	if t.Dirty() {
		t.Regenerate()
		r.stats.Regenerated++
	}

	x, y, vp := r.toTarget(t.Origin())
	scale := float64(t.Size)
	if span := r.program.Span(); span.X() > 0 {
		scale *= float64(vp.Dx()) / float64(span.X())
	}
	clr := t.Color
	if clr == nil {
		clr = color.White
	}
	r.device.DrawText(t.Font, t.Content(), float64(x), float64(y), scale, clr)
	r.stats.Draws++
}

// RenderAll draws every text of layer in depth order.
func (r *FontRenderer) RenderAll(layer *entity.Layer) {
	r.mustBeActive()
	if layer == nil {
		return
	}
	for _, t := range layer.SortedText() {
		r.Render(t)
	}
}

// End closes the batch.
func (r *FontRenderer) End() {
	r.active = false
}

// Program returns the renderer's program.
func (r *FontRenderer) Program() *gfx.Program {
	return r.program
}

// Stats returns the counters of the current or last batch.
func (r *FontRenderer) Stats() Stats {
	return r.stats
}

// Unload releases the compiled program.
func (r *FontRenderer) Unload() {
	r.active = false
	r.device.ReleaseProgram(r.program)
}
