package gfx

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Resolution is a width/height pair in pixels.
type Resolution struct {
	Width  int
	Height int
}

// Center returns the midpoint of the resolution.
func (r Resolution) Center() mgl32.Vec2 {
	return mgl32.Vec2{float32(r.Width) / 2, float32(r.Height) / 2}
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
