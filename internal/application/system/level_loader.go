package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/domain/entity"
	"github.com/younwookim/darkanmon/internal/infrastructure/asset"
	"github.com/younwookim/darkanmon/internal/infrastructure/config"
)

// Level is the result of loading a LevelConfig: the created items, by
// config name, so scenes can find what they need to animate.
type Level struct {
	ID       string
	Camera   *mgl32.Vec2
	Entities map[string][]*entity.Entity
	Texts    map[string]*entity.Text
}

// Entity returns the first entity with the given name, or nil.
func (l *Level) Entity(name string) *entity.Entity {
	if es := l.Entities[name]; len(es) > 0 {
		return es[0]
	}
	return nil
}

// LoadLevel converts a LevelConfig into entities and texts and adds them
// to the world and ui layers. Textures and fonts come from assets;
// anything missing fails the whole load.
func LoadLevel(cfg *config.LevelConfig, assets *asset.Manager, font config.FontConfig, world, ui *entity.Layer) (*Level, error) {
	lvl := &Level{
		ID:       cfg.ID,
		Entities: make(map[string][]*entity.Entity),
		Texts:    make(map[string]*entity.Text),
	}
	if cfg.Camera != nil {
		lvl.Camera = &mgl32.Vec2{cfg.Camera.X, cfg.Camera.Y}
	}

	// Build everything before touching the layers.
	worldEntities, err := buildEntities(cfg.ID, cfg.World, assets, lvl)
	if err != nil {
		return nil, err
	}
	uiEntities, err := buildEntities(cfg.ID, cfg.UI, assets, lvl)
	if err != nil {
		return nil, err
	}

	var worldTexts, uiTexts []*entity.Text
	for _, tc := range cfg.Text {
		name, size := tc.Font, tc.FontSize
		if name == "" {
			name = font.Name
		}
		if size <= 0 {
			size = font.Size
		}
		f, err := assets.Font(name, size)
		if err != nil {
			return nil, errors.Wrapf(err, "level %s: text %q", cfg.ID, tc.Name)
		}

		t := entity.NewText(tc.Content, f, mgl32.Vec2{tc.X, tc.Y})
		if tc.Scale > 0 {
			t.Size = tc.Scale
		}
		t.Color = tc.Color.Or(t.Color)
		t.Depth = tc.Depth
		t.Centered = tc.Centered
		if tc.Name != "" {
			lvl.Texts[tc.Name] = t
		}

		if tc.Layer == "world" {
			worldTexts = append(worldTexts, t)
		} else {
			uiTexts = append(uiTexts, t)
		}
	}

	for _, e := range worldEntities {
		world.Add(e)
	}
	for _, e := range uiEntities {
		ui.Add(e)
	}
	for _, t := range worldTexts {
		world.AddText(t)
	}
	for _, t := range uiTexts {
		ui.AddText(t)
	}
	return lvl, nil
}

func buildEntities(level string, cfgs []config.EntityConfig, assets *asset.Manager, lvl *Level) ([]*entity.Entity, error) {
	out := make([]*entity.Entity, 0, len(cfgs))
	for _, ec := range cfgs {
		tex, err := assets.Texture(ec.Texture)
		if err != nil {
			return nil, errors.Wrapf(err, "level %s: entity %q", level, ec.Name)
		}
		e := entity.New(mgl32.Vec2{ec.X, ec.Y}, ec.Width, ec.Height, assets.DefaultMesh(), tex)
		e.Depth = ec.Depth
		if ec.Tint.Set {
			e.Tint = ec.Tint.RGBA
		}
		if ec.Name != "" {
			lvl.Entities[ec.Name] = append(lvl.Entities[ec.Name], e)
		}
		out = append(out, e)
	}
	return out, nil
}
