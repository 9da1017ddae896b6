package main

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/darkanmon/internal/application/replay"
	"github.com/younwookim/darkanmon/internal/infrastructure/config"
)

func writeReplay(t *testing.T, path string, data replay.ReplayData) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
}

func TestRegistry(t *testing.T) {
	r := newRegistry(config.FontConfig{Name: "default", Size: 16})

	for _, name := range []string{"mainmenu", "tutorial"} {
		sc, err := r.scene(name)
		require.NoError(t, err, name)
		assert.NotNil(t, sc)
	}

	_, err := r.scene("battle")
	assert.ErrorContains(t, err, `unknown scene "battle"`)
}

func TestRun_HeadlessRecordAndScreenshot(t *testing.T) {
	dir := t.TempDir()
	shot := filepath.Join(dir, "frame.png")
	rec := filepath.Join(dir, "replay.json")

	err := run(options{headless: true, frames: 3, screenshot: shot, record: rec})
	require.NoError(t, err)

	f, err := os.Open(shot)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 720, img.Bounds().Dy())

	data, err := replay.LoadReplay(rec)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 3)
	assert.Equal(t, "mainmenu", data.Scene)
}

func TestRun_ReplayClicksIntoTutorial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "click.json")

	data := replay.CreateTestReplayData(4, 640, 150)
	data.Scene = "mainmenu"
	data.Frames[1].B = []ebiten.MouseButton{ebiten.MouseButtonLeft}
	writeReplay(t, path, data)

	rec := filepath.Join(dir, "out.json")
	shot := filepath.Join(dir, "frame.png")
	require.NoError(t, run(options{replay: path, record: rec, screenshot: shot}))

	out, err := replay.LoadReplay(rec)
	require.NoError(t, err)
	assert.Len(t, out.Frames, 4, "the replay runs until the feed is exhausted")

	f, err := os.Open(shot)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	// The menu background is bright here; the tutorial is still fading in.
	r, g, b, _ := img.At(10, 700).RGBA()
	assert.Less(t, r>>8, uint32(40))
	assert.Less(t, g>>8, uint32(40))
	assert.Less(t, b>>8, uint32(40))
}

func TestRun_Errors(t *testing.T) {
	err := run(options{headless: true, frames: 1, configDir: t.TempDir()})
	assert.ErrorContains(t, err, "display.json")

	err = run(options{replay: filepath.Join(t.TempDir(), "missing.json")})
	assert.ErrorContains(t, err, "failed to open file")
}
