package gfx

import "github.com/go-gl/mathgl/mgl32"

// Mesh is shared quad geometry: local corner positions and their texture
// coordinates, ordered like Quad.
type Mesh struct {
	Positions [4]mgl32.Vec2
	UVs       [4]mgl32.Vec2
}

var unitQuad = &Mesh{
	Positions: [4]mgl32.Vec2{{-0.5, -0.5}, {0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5}},
	UVs:       [4]mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
}

// UnitQuad returns the shared unit quad centered on the origin. Scaling it
// by an entity's Scale yields a quad of exactly that size in world units.
func UnitQuad() *Mesh {
	return unitQuad
}

// Project transforms the mesh through mvp and maps clip space onto the
// viewport rectangle (x, y, w, h), producing a drawable Quad.
func (m *Mesh) Project(mvp mgl32.Mat4, vx, vy, vw, vh float32) Quad {
	var q Quad
	for i, p := range m.Positions {
		clip := mvp.Mul4x1(mgl32.Vec4{p.X(), p.Y(), 0, 1})
		x, y := ClipToViewport(clip.X(), clip.Y(), vx, vy, vw, vh)
		q[i] = Vertex{DstX: x, DstY: y, SrcX: m.UVs[i].X(), SrcY: m.UVs[i].Y()}
	}
	return q
}

// ClipToViewport maps normalized device coordinates to target pixels. NDC y
// points up, target y points down.
func ClipToViewport(nx, ny, vx, vy, vw, vh float32) (float32, float32) {
	return vx + (nx+1)/2*vw, vy + (1-ny)/2*vh
}
