package config

import (
	"encoding/json"
	"io/fs"
	"os"
	"path"

	"github.com/pkg/errors"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrapf(err, "failed to parse %s", name)
	}
	return nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return nil, errors.Errorf("display.json: invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Game.Width <= 0 || cfg.Game.Height <= 0 {
		return nil, errors.Errorf("display.json: invalid game resolution %dx%d", cfg.Game.Width, cfg.Game.Height)
	}
	if cfg.Font.Name == "" {
		cfg.Font.Name = "default"
	}
	if cfg.Font.Size <= 0 {
		cfg.Font.Size = 24
	}
	return &cfg, nil
}

// LoadLevel loads a level JSON file
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := l.readJSON(path.Join("levels", name+".json"), &cfg); err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		cfg.ID = name
	}
	for _, t := range cfg.Text {
		if t.Layer != "" && t.Layer != "world" && t.Layer != "ui" {
			return nil, errors.Errorf("level %s: text %q has unknown layer %q", name, t.Name, t.Layer)
		}
	}
	return &cfg, nil
}

// Levels lists the names of the available levels.
func (l *Loader) Levels() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "levels/*.json")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		names = append(names, base[:len(base)-len(".json")])
	}
	return names, nil
}
