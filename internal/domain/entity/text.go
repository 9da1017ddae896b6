package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

// Text is a string drawn with a font. Position is the top-left corner of
// the run, or its center when Centered is set.
type Text struct {
	Position mgl32.Vec2
	// Size multiplies the font's pixel size.
	Size     float32
	Font     gfx.Font
	Color    color.Color
	Depth    int
	Centered bool
	Hidden   bool

	content string
	dirty   bool
	width   float64
	height  float64
}

// NewText returns a white, unscaled text run.
func NewText(content string, f gfx.Font, pos mgl32.Vec2) *Text {
	return &Text{
		Position: pos,
		Size:     1,
		Font:     f,
		Color:    color.White,
		content:  content,
		dirty:    true,
	}
}

// Content returns the string payload.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the string. The measured geometry is regenerated on
// the next draw.
func (t *Text) SetContent(s string) {
	if s == t.content {
		return
	}
	t.content = s
	t.dirty = true
}

// Dirty reports whether the geometry is stale.
func (t *Text) Dirty() bool {
	return t.dirty
}

// Regenerate re-measures the run with its font.
func (t *Text) Regenerate() {
	t.dirty = false
	if t.Font == nil {
		t.width, t.height = 0, 0
		return
	}
	t.width, t.height = t.Font.Measure(t.content)
}

// Extent returns the measured size at scale 1, regenerating if stale.
func (t *Text) Extent() (float64, float64) {
	if t.dirty {
		t.Regenerate()
	}
	return t.width, t.height
}

// Origin returns the top-left corner of the run in world units.
func (t *Text) Origin() mgl32.Vec2 {
	if !t.Centered {
		return t.Position
	}
	w, h := t.Extent()
	return t.Position.Sub(mgl32.Vec2{float32(w) * t.Size / 2, float32(h) * t.Size / 2})
}
