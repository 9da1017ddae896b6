package main

import (
	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/application/scene"
	"github.com/younwookim/darkanmon/internal/application/scene/mainmenu"
	"github.com/younwookim/darkanmon/internal/application/scene/tutorial"
	"github.com/younwookim/darkanmon/internal/infrastructure/config"
)

// registry builds scenes by name and wires their transitions.
type registry struct {
	font config.FontConfig
}

func newRegistry(font config.FontConfig) *registry {
	return &registry{font: font}
}

func (r *registry) scene(name string) (scene.Scene, error) {
	switch name {
	case mainmenu.Level:
		return r.menu(), nil
	case tutorial.Level:
		return r.tutorial(), nil
	default:
		return nil, errors.Errorf("unknown scene %q", name)
	}
}

func (r *registry) menu() scene.Scene {
	return mainmenu.New(r.font, r.tutorial)
}

func (r *registry) tutorial() scene.Scene {
	return tutorial.New(r.font, r.menu)
}
