package main

import (
	"image/png"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/application/game"
	"github.com/younwookim/darkanmon/internal/application/replay"
	"github.com/younwookim/darkanmon/internal/infrastructure/asset"
	"github.com/younwookim/darkanmon/internal/infrastructure/config"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/logging"
	"github.com/younwookim/darkanmon/internal/infrastructure/window"
	"github.com/younwookim/darkanmon/internal/infrastructure/window/ebitenwin"
	"github.com/younwookim/darkanmon/internal/infrastructure/window/headless"
)

// options are the parsed command line.
type options struct {
	configDir  string
	assetDir   string
	headless   bool
	frames     int
	record     string
	replay     string
	screenshot string
	logger     *slog.Logger
}

func subFS(dir string, embedded fs.FS, sub string) (fs.FS, error) {
	if dir != "" {
		return os.DirFS(dir), nil
	}
	return fs.Sub(embedded, sub)
}

// run loads the configuration, opens the window and drives the pipeline
// until the window closes.
func run(opts options) error {
	if opts.logger != nil {
		logging.SetLogger(opts.logger)
		defer logging.SetLogger(nil)
	}
	logger := logging.For("main")

	configs, err := subFS(opts.configDir, configFS, "configs")
	if err != nil {
		return errors.Wrap(err, "config filesystem")
	}
	resources, err := subFS(opts.assetDir, resFS, "res")
	if err != nil {
		return errors.Wrap(err, "asset filesystem")
	}

	loader := config.NewFSLoader(configs)
	display, err := loader.LoadDisplay()
	if err != nil {
		return err
	}

	startScene := display.StartScene
	width, height := display.Window.Width, display.Window.Height

	var replayer *replay.Replayer
	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		replayer = replay.NewReplayer(*data)
		startScene = replayer.Scene()
		width, height = replayer.Window()
		opts.headless = true
		logger.Info("replaying", "file", opts.replay, "frames", replayer.TotalFrames())
	}

	var (
		win  window.Window
		soft *headless.Window
	)
	if opts.headless {
		hopts := headless.Options{Width: width, Height: height, MaxFrames: opts.frames}
		if replayer != nil {
			hopts.Feed = replayer
		}
		soft = headless.New(hopts)
		win = soft
	} else {
		wopts := ebitenwin.Options{
			Width:     width,
			Height:    height,
			Title:     display.Title,
			VSync:     display.VSync,
			Resizable: display.Resizable,
		}
		if display.Icon != "" {
			icon, err := asset.LoadImage(resources, display.Icon)
			if err != nil {
				return err
			}
			wopts.Icon = icon
		}
		win = ebitenwin.New(wopts)
	}

	scenes := newRegistry(display.Font)
	start, err := scenes.scene(startScene)
	if err != nil {
		return err
	}

	gopts := game.Options{
		Window:         win,
		GameResolution: gfx.Resolution{Width: display.Game.Width, Height: display.Game.Height},
		Scene:          start,
		Assets:         asset.NewManager(resources, win.Device()),
		Levels:         loader,
		ClearColor:     display.ClearColor.Or(nil),
	}
	if replayer != nil {
		gopts.Clock = replayer.Now
	}
	var recorder *replay.Recorder
	if opts.record != "" {
		recorder = replay.NewRecorder(startScene, width, height)
		gopts.Recorder = recorder
	}

	pipeline, err := game.New(gopts)
	if err != nil {
		return err
	}
	runErr := pipeline.Run()
	pipeline.Shutdown()
	if runErr != nil {
		return runErr
	}

	if recorder != nil {
		if err := recorder.Save(opts.record); err != nil {
			return errors.Wrap(err, "save recording")
		}
		logger.Info("recording saved", "file", opts.record, "frames", recorder.FrameCount())
	}

	if opts.screenshot != "" {
		if soft == nil {
			logger.Warn("screenshots need -headless, skipped")
			return nil
		}
		if err := writePNG(opts.screenshot, soft); err != nil {
			return err
		}
		logger.Info("screenshot saved", "file", opts.screenshot)
	}
	return nil
}

func writePNG(path string, win *headless.Window) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create screenshot")
	}
	defer func() { _ = f.Close() }()
	return errors.Wrap(png.Encode(f, win.SoftDevice().Screen()), "encode screenshot")
}
