// Package mainmenu implements the title screen: a background, the game
// title and a play button that leads into the tutorial.
package mainmenu

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
)

const (
	// Level is the level file the menu is built from.
	Level = "mainmenu"

	// ButtonY is the play button's distance from the top of the window.
	ButtonY = 150

	hoverScale    = 1.1
	hoverDuration = 0.15
)

// Scene is the main menu.
type Scene struct {
	scene.Base

	font config.FontConfig
	next func() scene.Scene

	play      *entity.Entity
	playLabel *entity.Text
	baseScale mgl32.Vec2

	hovered bool
	zoom    float32
	pulse   *gween.Tween
}

// New returns a menu whose play button switches to next().
func New(font config.FontConfig, next func() scene.Scene) *Scene {
	return &Scene{font: font, next: next}
}

// Name identifies the scene in logs and replays.
func (s *Scene) Name() string { return Level }

// Init builds the menu from its level file.
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

	s.play = lvl.Entity("play")
	if s.play == nil {
		return errors.New("mainmenu: level has no play button")
	}
	s.playLabel = lvl.Texts["play"]
	s.baseScale = s.play.Scale
	s.hovered = false
	s.zoom = 1
	s.pulse = nil
	return nil
}

// Update animates the button hover and handles the click.
func (s *Scene) Update(delta float64) error {
	in := s.Ctx.Input()

	hovered := in.Colliding(s.play)
	if hovered != s.hovered {
		s.hovered = hovered
		target := float32(1)
		if hovered {
			target = hoverScale
		}
		s.pulse = gween.New(s.zoom, target, hoverDuration, ease.OutQuad)
	}
	if s.pulse != nil {
		zoom, done := s.pulse.Update(float32(delta))
		s.zoom = zoom
		if done {
			s.pulse = nil
		}
		s.play.SetScale(s.baseScale.Mul(s.zoom))
	}

	if (hovered && in.Clicked(ebiten.MouseButtonLeft)) || in.JustPressed(ebiten.KeyEnter) {
		return s.Ctx.SetScene(s.next())
	}
	return nil
}

// OnWindowResize keeps the play button centered horizontally.
func (s *Scene) OnWindowResize() {
	win := s.Ctx.WindowSize()
	pos := mgl32.Vec2{float32(win.Width) / 2, ButtonY}
	s.play.SetPosition(pos)
	if s.playLabel != nil {
		s.playLabel.Position = pos
	}
}

// Finish drops the menu's entities.
func (s *Scene) Finish() {
	s.Base.Finish()
	s.play = nil
	s.playLabel = nil
}

// Zoom returns the current hover scale factor of the play button.
func (s *Scene) Zoom() float32 { return s.zoom }

// PlayButton returns the play button entity.
func (s *Scene) PlayButton() *entity.Entity { return s.play }
