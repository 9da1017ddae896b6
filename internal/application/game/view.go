package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/darkanmon/internal/application/state"
)

// ViewLayout returns the size and center of the view entity for a window.
// The framebuffer is scaled by window width over game width and centered,
// so the game keeps its aspect ratio.
func ViewLayout(windowW, windowH, gameW, gameH int) (scale, position mgl32.Vec2) {
	// ratio*gameW is windowW itself. The height multiplies before dividing
	// so integral results stay exact.
	w := windowW
	h := int(float64(windowW) * float64(gameH) / float64(gameW))
	return mgl32.Vec2{float32(w), float32(h)},
		mgl32.Vec2{float32(windowW) / 2, float32(windowH) / 2}
}

// resizeScreen lays out the view entity for the current window size and
// notifies the active scene.
func (p *Pipeline) resizeScreen() {
	win := p.WindowSize()
	scale, pos := ViewLayout(win.Width, win.Height, p.game.Width, p.game.Height)
	p.view.SetScale(scale)
	p.view.SetPosition(pos)
	p.log.Debug("view layout", "window", win, "scale", scale, "position", pos)

	if p.scene != nil && p.sceneState == state.Active {
		p.scene.OnWindowResize()
	}
}
