package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/darkanmon/internal/domain/entity"
)

func TestState_JustPressedLastsOneFrame(t *testing.T) {
	s := NewState()
	s.SetKey(ebiten.KeySpace, true)

	assert.False(t, s.Pressed(ebiten.KeySpace), "raw state is invisible until latched")

	s.Update()
	assert.True(t, s.Pressed(ebiten.KeySpace))
	assert.True(t, s.JustPressed(ebiten.KeySpace))

	s.Update()
	assert.True(t, s.Pressed(ebiten.KeySpace))
	assert.False(t, s.JustPressed(ebiten.KeySpace))

	s.SetKey(ebiten.KeySpace, false)
	s.Update()
	assert.False(t, s.Pressed(ebiten.KeySpace))
}

func TestState_Clicked(t *testing.T) {
	s := NewState()
	s.SetCursor(12, 34)
	s.SetButton(ebiten.MouseButtonLeft, true)
	s.Update()

	assert.True(t, s.Clicked(ebiten.MouseButtonLeft))
	assert.False(t, s.Clicked(ebiten.MouseButtonRight))
	assert.Equal(t, Point{12, 34}, s.Cursor())

	s.Update()
	assert.True(t, s.ButtonPressed(ebiten.MouseButtonLeft))
	assert.False(t, s.Clicked(ebiten.MouseButtonLeft))
}

func TestState_SnapshotApply(t *testing.T) {
	src := NewState()
	src.SetKey(ebiten.KeyW, true)
	src.SetKey(ebiten.KeyA, true)
	src.SetButton(ebiten.MouseButtonLeft, true)
	src.SetCursor(5, 6)

	snap := src.Snapshot()
	assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyW}, snap.Keys)

	dst := NewState()
	dst.SetKey(ebiten.KeyEscape, true)
	dst.Apply(snap)
	dst.Update()

	assert.True(t, dst.Pressed(ebiten.KeyW))
	assert.True(t, dst.Pressed(ebiten.KeyA))
	assert.False(t, dst.Pressed(ebiten.KeyEscape))
	assert.True(t, dst.Clicked(ebiten.MouseButtonLeft))
	assert.Equal(t, Point{5, 6}, dst.Cursor())
}

func TestState_Colliding(t *testing.T) {
	button := entity.New(mgl32.Vec2{640, 150}, 200, 80, nil, nil)
	s := NewState()

	s.SetCursor(650, 160)
	s.Update()
	assert.True(t, s.Colliding(button))

	s.SetCursor(10, 10)
	s.Update()
	assert.False(t, s.Colliding(button))

	button.Hidden = true
	s.SetCursor(640, 150)
	s.Update()
	assert.False(t, s.Colliding(button))
	assert.False(t, s.Colliding(nil))
}
