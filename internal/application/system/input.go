package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/darkanmon/internal/domain/input"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// CameraControl pans a camera with the arrow keys or WASD.
type CameraControl struct {
	// Speed in world units per second.
	Speed float32
	// Min and Max bound the camera origin.
	Min, Max mgl32.Vec2
}

// Direction reads the held movement keys as a unit-length axis pair.
func Direction(in *input.State) mgl32.Vec2 {
	var d mgl32.Vec2
	if in.Pressed(ebiten.KeyArrowLeft) || in.Pressed(ebiten.KeyA) {
		d[0]--
	}
	if in.Pressed(ebiten.KeyArrowRight) || in.Pressed(ebiten.KeyD) {
		d[0]++
	}
	if in.Pressed(ebiten.KeyArrowUp) || in.Pressed(ebiten.KeyW) {
		d[1]--
	}
	if in.Pressed(ebiten.KeyArrowDown) || in.Pressed(ebiten.KeyS) {
		d[1]++
	}
	if d.Len() > 0 {
		d = d.Normalize()
	}
	return d
}

// Update moves cam by the held direction for delta seconds and reports
// whether it moved.
func (c *CameraControl) Update(in *input.State, cam *gfx.Camera, delta float64) bool {
	dir := Direction(in)
	if dir.Len() == 0 {
		return false
	}
	next := cam.Origin.Add(dir.Mul(c.Speed * float32(delta)))
	next[0] = mgl32.Clamp(next[0], c.Min[0], c.Max[0])
	next[1] = mgl32.Clamp(next[1], c.Min[1], c.Max[1])
	if next == cam.Origin {
		return false
	}
	cam.SetOrigin(next)
	return true
}
