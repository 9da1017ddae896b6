// Package entity provides the render units the engine draws: textured quads
// (Entity), text runs (Text) and depth-sorted collections of both (Layer).
package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Contains reports whether (x, y) lies inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Entity is a positioned, scaled, textured quad. Position is the center of
// the quad and Scale its width and height in world units.
type Entity struct {
	Position mgl32.Vec2
	Scale    mgl32.Vec2
	Mesh     *gfx.Mesh
	Texture  gfx.Texture

	// Depth orders entities within a Layer; lower draws first.
	Depth int
	// Tint multiplies the texture color. nil leaves it unchanged.
	Tint color.Color
	// Hidden entities are skipped by the renderers.
	Hidden bool
}

// New returns an entity centered at pos with the given size.
func New(pos mgl32.Vec2, width, height float32, mesh *gfx.Mesh, tex gfx.Texture) *Entity {
	if mesh == nil {
		mesh = gfx.UnitQuad()
	}
	return &Entity{
		Position: pos,
		Scale:    mgl32.Vec2{width, height},
		Mesh:     mesh,
		Texture:  tex,
	}
}

// SetPosition moves the entity.
func (e *Entity) SetPosition(pos mgl32.Vec2) {
	e.Position = pos
}

// SetScale resizes the entity.
func (e *Entity) SetScale(scale mgl32.Vec2) {
	e.Scale = scale
}

// SetTexture swaps the displayed texture.
func (e *Entity) SetTexture(tex gfx.Texture) {
	e.Texture = tex
}

// Model returns the entity's model matrix: translate to Position, then
// scale the mesh by Scale.
func (e *Entity) Model() mgl32.Mat4 {
	return mgl32.Translate3D(e.Position.X(), e.Position.Y(), 0).
		Mul4(mgl32.Scale3D(e.Scale.X(), e.Scale.Y(), 1))
}

// Bounds returns the axis-aligned box the entity covers.
func (e *Entity) Bounds() Rect {
	return Rect{
		X:      e.Position.X() - e.Scale.X()/2,
		Y:      e.Position.Y() - e.Scale.Y()/2,
		Width:  e.Scale.X(),
		Height: e.Scale.Y(),
	}
}

// Contains reports whether the point lies on the entity.
func (e *Entity) Contains(x, y float32) bool {
	return e.Bounds().Contains(x, y)
}
