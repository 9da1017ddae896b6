package asset

import "github.com/younwookim/darkanmon/internal/infrastructure/gfx"

// Font is a named face. It satisfies gfx.Font and unwraps to the backend
// face when drawn.
type Font struct {
	Name string
	Size float64

	face gfx.Font
}

// Face returns the backend face.
func (f *Font) Face() gfx.Font { return f.face }

// Measure implements gfx.Font.
func (f *Font) Measure(s string) (float64, float64) { return f.face.Measure(s) }

// LineHeight implements gfx.Font.
func (f *Font) LineHeight() float64 { return f.face.LineHeight() }
