// Package headless runs the frame pipeline without a display, drawing
// into the software device. It drives replays, screenshots and tests.
package headless

import (
	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/domain/input"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx/softgfx"
)

// Feed supplies recorded input, one snapshot per frame. ok is false once
// the recording is exhausted.
type Feed interface {
	Next() (snap input.Snapshot, ok bool)
}

// SizedFeed is a Feed that also replays window resizes. Size reports the
// window size for the snapshot Next just returned.
type SizedFeed interface {
	Feed
	Size() (width, height int)
}

// Options configures a headless window.
type Options struct {
	Width, Height int
	// MaxFrames closes the window after that many frames. Zero runs until
	// Close is called or the feed runs dry.
	MaxFrames int
	Feed      Feed
}

// Window is a synchronous, display-less Window.
type Window struct {
	width, height int
	closed        bool
	maxFrames     int
	frames        int
	feed          Feed

	input    *input.State
	device   *softgfx.Device
	onResize func(width, height int)
}

// New returns a headless window backed by a fresh software device.
func New(opts Options) *Window {
	return &Window{
		width:     opts.Width,
		height:    opts.Height,
		maxFrames: opts.MaxFrames,
		feed:      opts.Feed,
		input:     input.NewState(),
		device:    softgfx.New(opts.Width, opts.Height),
	}
}

func (w *Window) Width() int          { return w.width }
func (w *Window) Height() int         { return w.height }
func (w *Window) Closed() bool        { return w.closed }
func (w *Window) Input() *input.State { return w.input }
func (w *Window) Device() gfx.Device  { return w.device }

// SoftDevice exposes the concrete device, for reading back the screen.
func (w *Window) SoftDevice() *softgfx.Device { return w.device }

// Frames returns the number of frames presented so far.
func (w *Window) Frames() int { return w.frames }

// OnResize registers fn for client area changes.
func (w *Window) OnResize(fn func(width, height int)) {
	w.onResize = fn
}

// Resize simulates the user resizing the window.
func (w *Window) Resize(width, height int) {
	if width == w.width && height == w.height {
		return
	}
	w.width, w.height = width, height
	w.device.ResizeScreen(width, height)
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

// Close makes Closed report true; Run returns after the current frame.
func (w *Window) Close() {
	w.closed = true
}

// SwapBuffers counts the frame and enforces MaxFrames.
func (w *Window) SwapBuffers() {
	w.frames++
	if w.maxFrames > 0 && w.frames >= w.maxFrames {
		w.closed = true
	}
}

// PollEvents applies the next recorded snapshot, if any, after any
// resize recorded with it.
func (w *Window) PollEvents() {
	if w.feed == nil {
		return
	}
	snap, ok := w.feed.Next()
	if !ok {
		w.closed = true
		return
	}
	if sized, ok := w.feed.(SizedFeed); ok {
		w.Resize(sized.Size())
	}
	w.input.Apply(snap)
}

// Run loops until the window closes or frame fails.
func (w *Window) Run(frame func() error) error {
	for !w.closed {
		w.PollEvents()
		if w.closed {
			break
		}
		if err := frame(); err != nil {
			return errors.Wrapf(err, "frame %d", w.frames)
		}
		w.SwapBuffers()
	}
	return nil
}
