// Package window defines the platform window the frame pipeline runs in.
//
// Drivers own the main loop: they poll events, call the frame function,
// and present the result. ebitenwin drives a real window through ebiten,
// headless runs synchronously on the software device.
package window

import (
	"github.com/younwookim/darkanmon/internal/domain/input"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// Window is a platform window with a drawing device and input source.
type Window interface {
	// Width returns the current client width in pixels.
	Width() int
	// Height returns the current client height in pixels.
	Height() int
	// Closed reports whether the user asked to close the window.
	Closed() bool

	// SwapBuffers presents the finished frame.
	SwapBuffers()
	// PollEvents feeds pending platform events into Input.
	PollEvents()

	Input() *input.State
	Device() gfx.Device

	// OnResize registers the handler called when the client area changes.
	OnResize(fn func(width, height int))

	// Run calls frame once per displayed frame until the window closes or
	// frame returns an error.
	Run(frame func() error) error
}
