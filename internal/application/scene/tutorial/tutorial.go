// Package tutorial implements the first playable screen: a wide world the
// camera can pan across, faded in from black on entry.
package tutorial

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/darkanmon/internal/application/scene"
	"github.com/younwookim/darkanmon/internal/application/system"
	"github.com/younwookim/darkanmon/internal/domain/entity"
	"github.com/younwookim/darkanmon/internal/infrastructure/config"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
)

const (
	// Level is the level file the tutorial is built from.
	Level = "tutorial"

	// PanSpeed is the camera speed in world units per second.
	PanSpeed = 600
	// FadeDuration is the fade-in length in seconds.
	FadeDuration = 1.0
)

// Scene is the tutorial level.
type Scene struct {
	scene.Base

	font config.FontConfig
	back func() scene.Scene

	control    system.CameraControl
	fade       *gween.Tween
	brightness float32
	target     gfx.RenderTarget
}

// New returns a tutorial that returns to back() on Escape.
func New(font config.FontConfig, back func() scene.Scene) *Scene {
	return &Scene{font: font, back: back}
}

// Name identifies the scene in logs and replays.
func (s *Scene) Name() string { return Level }

// Init builds the level, places the camera and starts the fade.
func (s *Scene) Init(ctx scene.Context) error {
	if err := s.Base.Init(ctx); err != nil {
		return err
	}
	cfg, err := ctx.Levels().LoadLevel(Level)
	if err != nil {
		return err
	}
	lvl, err := system.LoadLevel(cfg, ctx.Assets(), s.font, s.World(), s.UI())
	if err != nil {
		return err
	}
	if lvl.Camera != nil {
		s.Camera().SetOrigin(*lvl.Camera)
	}

	// The camera may pan as far as the background reaches.
	game := ctx.GameResolution()
	half := game.Center()
	s.control = system.CameraControl{Speed: PanSpeed, Min: half, Max: half}
	if bg := lvl.Entity("background"); bg != nil {
		s.control.Min, s.control.Max = PanBounds(bg.Bounds(), game)
	}

	s.target, err = ctx.Device().NewRenderTarget(game.Width, game.Height)
	if err != nil {
		return errors.Wrap(err, "tutorial: fade target")
	}
	s.brightness = 0
	s.fade = gween.New(0, 1, FadeDuration, ease.OutQuad)
	return nil
}

// Update pans the camera, advances the fade and handles Escape.
func (s *Scene) Update(delta float64) error {
	in := s.Ctx.Input()
	if in.JustPressed(ebiten.KeyEscape) {
		return s.Ctx.SetScene(s.back())
	}

	s.control.Update(in, s.Camera(), delta)

	if s.fade != nil {
		v, done := s.fade.Update(float32(delta))
		s.brightness = v
		if done {
			s.brightness = 1
			s.fade = nil
		}
	}
	return nil
}

// PostProcess darkens the frame while the fade runs.
func (s *Scene) PostProcess(fbo *gfx.FBO) gfx.Texture {
	if !s.Fading() || s.target == nil {
		return nil
	}
	s.Ctx.Device().ApplyColorMatrix(s.target, fbo.Texture(), gfx.BrightnessMatrix(s.brightness))
	return s.target.Texture()
}

// Finish releases the fade target.
func (s *Scene) Finish() {
	s.Base.Finish()
	if s.target != nil {
		s.target.Dispose()
		s.target = nil
	}
	s.fade = nil
}

// Fading reports whether the fade-in is still running.
func (s *Scene) Fading() bool { return s.fade != nil }

// Brightness returns the current fade level in [0,1].
func (s *Scene) Brightness() float32 { return s.brightness }

// PanBounds returns the camera origins that keep the view inside bg. An
// axis where bg is smaller than the game resolution is pinned to the
// game center.
func PanBounds(bg entity.Rect, game gfx.Resolution) (lo, hi mgl32.Vec2) {
	half := game.Center()
	lo = mgl32.Vec2{bg.X + half.X(), bg.Y + half.Y()}
	hi = mgl32.Vec2{bg.X + bg.Width - half.X(), bg.Y + bg.Height - half.Y()}
	for i := range 2 {
		if lo[i] > hi[i] {
			lo[i], hi[i] = half[i], half[i]
		}
	}
	return lo, hi
}
