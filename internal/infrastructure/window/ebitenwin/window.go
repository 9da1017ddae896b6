// Package ebitenwin runs the frame pipeline inside an ebiten window.
package ebitenwin

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/domain/input"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx/ebitengfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/logging"
)

// Options configures the native window.
type Options struct {
	Width, Height int
	Title         string
	VSync         bool
	Resizable     bool
	Icon          image.Image
}

// Window adapts ebiten's Update/Draw/Layout callbacks to a frame function.
type Window struct {
	width, height int
	closed        bool

	input    *input.State
	device   *ebitengfx.Device
	onResize func(width, height int)

	frame    func() error
	frameErr error

	keys []ebiten.Key
}

// New applies opts to the ebiten window. The window itself opens on Run.
func New(opts Options) *Window {
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetVsyncEnabled(opts.VSync)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowClosingHandled(true)
	if opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if opts.Icon != nil {
		ebiten.SetWindowIcon([]image.Image{opts.Icon})
	}

	return &Window{
		width:  opts.Width,
		height: opts.Height,
		input:  input.NewState(),
		device: ebitengfx.New(),
	}
}

func (w *Window) Width() int          { return w.width }
func (w *Window) Height() int         { return w.height }
func (w *Window) Closed() bool        { return w.closed }
func (w *Window) Input() *input.State { return w.input }
func (w *Window) Device() gfx.Device  { return w.device }

// OnResize registers fn for client area changes.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

// SwapBuffers is a no-op: ebiten presents after Draw returns.
func (w *Window) SwapBuffers() {}

// PollEvents copies ebiten's keyboard and mouse state into Input.
func (w *Window) PollEvents() {
	w.keys = inpututil.AppendPressedKeys(w.keys[:0])

	var snap input.Snapshot
	snap.Keys = append(snap.Keys, w.keys...)
	for b := ebiten.MouseButton0; b <= ebiten.MouseButtonMax; b++ {
		if ebiten.IsMouseButtonPressed(b) {
			snap.Buttons = append(snap.Buttons, b)
		}
	}
	x, y := ebiten.CursorPosition()
	snap.Cursor = input.Point{X: float32(x), Y: float32(y)}

	w.input.Apply(snap)
}

// Run blocks until the window closes or frame fails.
func (w *Window) Run(frame func() error) error {
	w.frame = frame
	defer w.device.Dispose()

	err := ebiten.RunGame(&game{w: w})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return errors.Wrap(err, "run window")
}

// game implements ebiten.Game on behalf of Window.
type game struct {
	w *Window
}

func (g *game) Update() error {
	w := g.w
	if w.frameErr != nil {
		return w.frameErr
	}
	if ebiten.IsWindowBeingClosed() {
		w.closed = true
		return ebiten.Termination
	}
	w.PollEvents()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	if w.frameErr != nil || w.closed {
		return
	}
	w.device.SetScreen(screen)
	w.frameErr = w.frame()
	w.SwapBuffers()
}

// Layout keeps one logical pixel per device-independent pixel and reports
// size changes to the resize handler.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.w
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		logging.For("window").Debug("resize", "width", outsideWidth, "height", outsideHeight)
		if w.onResize != nil {
			w.onResize(outsideWidth, outsideHeight)
		}
	}
	return w.width, w.height
}
