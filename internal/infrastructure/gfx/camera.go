package gfx

import "github.com/go-gl/mathgl/mgl32"

// Camera is a 2D view origin. The origin is the world point that appears at
// the center of whatever the bound program projects onto.
type Camera struct {
	Origin mgl32.Vec2
	// Offset is added after centering, e.g. for shake.
	Offset mgl32.Vec2
}

// NewCamera returns a camera looking at origin.
func NewCamera(origin mgl32.Vec2) *Camera {
	return &Camera{Origin: origin}
}

// SetOrigin moves the camera.
func (c *Camera) SetOrigin(origin mgl32.Vec2) {
	c.Origin = origin
}

// Translation returns the view translation for a projection of the given span.
func (c *Camera) Translation(span mgl32.Vec2) mgl32.Vec2 {
	return span.Mul(0.5).Sub(c.Origin).Add(c.Offset)
}

// BindUniform writes the camera's view matrix into p.
func (c *Camera) BindUniform(p *Program) {
	t := c.Translation(p.Span())
	p.View = mgl32.Translate3D(t.X(), t.Y(), 0)
}
