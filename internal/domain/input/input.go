// Package input latches raw keyboard and mouse state once per frame so
// scenes can ask both "is it down" and "did it just go down".
package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/darkanmon/internal/domain/entity"
)

// Point is a cursor position in window pixels.
type Point struct {
	X, Y float32
}

// Snapshot is the raw device state for one frame. It is what replays record.
type Snapshot struct {
	Keys    []ebiten.Key         `json:"k,omitempty"`
	Buttons []ebiten.MouseButton `json:"b,omitempty"`
	Cursor  Point                `json:"c"`
}

// State collects raw events from the window and exposes the latched view
// to scenes. Writers (the window) and readers (scenes) run on the same
// goroutine.
type State struct {
	rawKeys    map[ebiten.Key]bool
	rawButtons map[ebiten.MouseButton]bool
	rawCursor  Point

	keys, prevKeys       map[ebiten.Key]bool
	buttons, prevButtons map[ebiten.MouseButton]bool
	cursor               Point
}

// NewState returns a state with nothing pressed.
func NewState() *State {
	return &State{
		rawKeys:     map[ebiten.Key]bool{},
		rawButtons:  map[ebiten.MouseButton]bool{},
		keys:        map[ebiten.Key]bool{},
		prevKeys:    map[ebiten.Key]bool{},
		buttons:     map[ebiten.MouseButton]bool{},
		prevButtons: map[ebiten.MouseButton]bool{},
	}
}

// SetKey records a key transition.
func (s *State) SetKey(k ebiten.Key, down bool) {
	if down {
		s.rawKeys[k] = true
	} else {
		delete(s.rawKeys, k)
	}
}

// SetButton records a mouse button transition.
func (s *State) SetButton(b ebiten.MouseButton, down bool) {
	if down {
		s.rawButtons[b] = true
	} else {
		delete(s.rawButtons, b)
	}
}

// SetCursor records the cursor position in window pixels.
func (s *State) SetCursor(x, y float32) {
	s.rawCursor = Point{X: x, Y: y}
}

// Apply replaces the raw state with snap.
func (s *State) Apply(snap Snapshot) {
	clear(s.rawKeys)
	clear(s.rawButtons)
	for _, k := range snap.Keys {
		s.rawKeys[k] = true
	}
	for _, b := range snap.Buttons {
		s.rawButtons[b] = true
	}
	s.rawCursor = snap.Cursor
}

// Snapshot returns the raw state in a deterministic order.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{Cursor: s.rawCursor}
	for k := range s.rawKeys {
		snap.Keys = append(snap.Keys, k)
	}
	for b := range s.rawButtons {
		snap.Buttons = append(snap.Buttons, b)
	}
	slices.Sort(snap.Keys)
	slices.Sort(snap.Buttons)
	return snap
}

// Update latches the raw state. Call it exactly once per frame before the
// scene reads input.
func (s *State) Update() {
	s.prevKeys, s.keys = s.keys, s.prevKeys
	clear(s.keys)
	for k := range s.rawKeys {
		s.keys[k] = true
	}

	s.prevButtons, s.buttons = s.buttons, s.prevButtons
	clear(s.buttons)
	for b := range s.rawButtons {
		s.buttons[b] = true
	}

	s.cursor = s.rawCursor
}

// Pressed reports whether k is held this frame.
func (s *State) Pressed(k ebiten.Key) bool {
	return s.keys[k]
}

// JustPressed reports whether k went down this frame.
func (s *State) JustPressed(k ebiten.Key) bool {
	return s.keys[k] && !s.prevKeys[k]
}

// ButtonPressed reports whether b is held this frame.
func (s *State) ButtonPressed(b ebiten.MouseButton) bool {
	return s.buttons[b]
}

// Clicked reports whether b went down this frame.
func (s *State) Clicked(b ebiten.MouseButton) bool {
	return s.buttons[b] && !s.prevButtons[b]
}

// Cursor returns the latched cursor position.
func (s *State) Cursor() Point {
	return s.cursor
}

// Colliding reports whether the cursor lies on e. It is meaningful for UI
// entities, whose coordinates are window pixels.
func (s *State) Colliding(e *entity.Entity) bool {
	if e == nil || e.Hidden {
		return false
	}
	return e.Contains(s.cursor.X, s.cursor.Y)
}
