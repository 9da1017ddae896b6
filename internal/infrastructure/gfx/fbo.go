package gfx

import "github.com/pkg/errors"

// FBO is the off-screen surface the game world is drawn into. Its size is
// fixed at construction.
type FBO struct {
	target RenderTarget
	width  int
	height int
}

// NewFBO allocates a render target of the given resolution on d.
func NewFBO(d Device, res Resolution) (*FBO, error) {
	if !res.Valid() {
		return nil, errors.Errorf("gfx: invalid framebuffer size %s", res)
	}
	target, err := d.NewRenderTarget(res.Width, res.Height)
	if err != nil {
		return nil, errors.Wrapf(err, "gfx: allocate %s framebuffer", res)
	}
	return &FBO{target: target, width: res.Width, height: res.Height}, nil
}

// Bind makes the FBO the drawing destination of d.
func (f *FBO) Bind(d Device) {
	d.Bind(f.target)
}

// Unbind restores the window as destination. The caller restores the viewport.
func (f *FBO) Unbind(d Device) {
	d.Bind(nil)
}

// Texture returns the color attachment.
func (f *FBO) Texture() Texture {
	return f.target.Texture()
}

// Target returns the underlying render target.
func (f *FBO) Target() RenderTarget {
	return f.target
}

// Width returns the framebuffer width in pixels.
func (f *FBO) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *FBO) Height() int { return f.height }

// Resolution returns the framebuffer size.
func (f *FBO) Resolution() Resolution {
	return Resolution{Width: f.width, Height: f.height}
}

// Dispose releases the render target.
func (f *FBO) Dispose() {
	if f.target != nil {
		f.target.Dispose()
		f.target = nil
	}
}
