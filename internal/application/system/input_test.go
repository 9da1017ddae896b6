package system

import (
	"io/fs"
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/darkanmon/internal/domain/input"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

func osDir(path string) fs.FS { return os.DirFS(path) }

func pressed(keys ...ebiten.Key) *input.State {
	s := input.NewState()
	for _, k := range keys {
		s.SetKey(k, true)
	}
	s.Update()
	return s
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want mgl32.Vec2
	}{
		{"none", nil, mgl32.Vec2{}},
		{"left arrow", []ebiten.Key{ebiten.KeyArrowLeft}, mgl32.Vec2{-1, 0}},
		{"wasd down", []ebiten.Key{ebiten.KeyS}, mgl32.Vec2{0, 1}},
		{"opposites cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, mgl32.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Direction(pressed(tt.keys...)))
		})
	}

	diag := Direction(pressed(ebiten.KeyArrowRight, ebiten.KeyArrowDown))
	assert.InDelta(t, 1, diag.Len(), 1e-6)
}

func TestCameraControl_Update(t *testing.T) {
	c := &CameraControl{Speed: 100, Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{150, 100}}
	cam := gfx.NewCamera(mgl32.Vec2{100, 50})

	assert.False(t, c.Update(pressed(), cam, 1))

	assert.True(t, c.Update(pressed(ebiten.KeyArrowRight), cam, 0.25))
	assert.Equal(t, mgl32.Vec2{125, 50}, cam.Origin)

	assert.True(t, c.Update(pressed(ebiten.KeyArrowRight), cam, 1))
	assert.Equal(t, mgl32.Vec2{150, 50}, cam.Origin, "clamped to Max")

	assert.False(t, c.Update(pressed(ebiten.KeyArrowRight), cam, 1), "already at the edge")
}
