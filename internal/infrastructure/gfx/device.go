// Package gfx defines the drawing contract shared by the renderers and the
// frame pipeline, plus the small value types that travel through it:
// resolutions, shader programs, cameras, meshes and render targets.
//
// Backends live in sub-packages: ebitengfx draws on the GPU through ebiten,
// softgfx rasterizes into image.RGBA for headless runs and tests.
package gfx

import (
	"image"
	"image/color"
)

// Texture is a sampleable image owned by a Device.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (width, height int)
}

// RenderTarget is an off-screen color buffer whose content can be sampled
// as a Texture once it is no longer bound.
type RenderTarget interface {
	// Texture returns the color attachment.
	Texture() Texture

	// Size returns the dimensions of the target in pixels.
	Size() (width, height int)

	// Dispose releases the backing storage.
	Dispose()
}

// Font is a face the device can draw text with. Glyph layout and atlas
// management are the backend's business.
type Font interface {
	// Measure returns the size of s in pixels at scale 1.
	Measure(s string) (width, height float64)

	// LineHeight returns the distance between baselines in pixels.
	LineHeight() float64
}

// FontWrapper is implemented by fonts that decorate a backend face, such as
// the named fonts handed out by the asset manager.
type FontWrapper interface {
	Face() Font
}

// UnwrapFont peels wrappers off f until it reaches the backend face.
func UnwrapFont(f Font) Font {
	for {
		w, ok := f.(FontWrapper)
		if !ok {
			return f
		}
		f = w.Face()
	}
}

// Vertex is one corner of a quad: destination in target pixels, source in
// normalized texture coordinates.
type Vertex struct {
	DstX, DstY float32
	SrcX, SrcY float32
}

// Quad corners are ordered top-left, top-right, bottom-left, bottom-right.
type Quad [4]Vertex

// QuadIndices triangulates a Quad.
var QuadIndices = [6]uint16{0, 1, 2, 1, 3, 2}

// Device is the GPU state machine the pipeline drives. It is not safe for
// concurrent use; a single goroutine owns it for the process lifetime.
type Device interface {
	// NewTexture uploads img.
	NewTexture(img image.Image) Texture

	// NewRenderTarget allocates an off-screen target.
	NewRenderTarget(width, height int) (RenderTarget, error)

	// NewFont builds a face from TrueType/OpenType data.
	NewFont(src []byte, size float64) (Font, error)

	// Bind makes target the drawing destination. nil selects the window.
	Bind(target RenderTarget)

	// Bound returns the current destination, nil for the window.
	Bound() RenderTarget

	// SetViewport maps clip space onto r of the bound target.
	SetViewport(r image.Rectangle)

	// Viewport returns the current viewport.
	Viewport() image.Rectangle

	// SetClearColor sets the color used by Clear.
	SetClearColor(c color.Color)

	// Clear fills the whole bound target with the clear color, ignoring the
	// viewport.
	Clear()

	// UseProgram makes p current, compiling it on first use. nil unbinds.
	UseProgram(p *Program) error

	// ReleaseProgram frees backend resources held for p.
	ReleaseProgram(p *Program)

	// DrawQuad draws tex onto the bound target with the current program.
	// A nil tint draws the texture unmodified.
	DrawQuad(tex Texture, q Quad, tint color.Color)

	// DrawText draws s with its top-left corner at (x, y) in target pixels.
	DrawText(f Font, s string, x, y, scale float64, clr color.Color)

	// ApplyColorMatrix draws src into dst through m.
	ApplyColorMatrix(dst RenderTarget, src Texture, m ColorMatrix)
}
