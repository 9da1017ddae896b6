package main

import (
	"embed"
	"flag"
	"log"
	"log/slog"
	"os"
)

//go:embed configs
var configFS embed.FS

//go:embed res
var resFS embed.FS

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "Config directory (default: embedded configs)")
	flag.StringVar(&opts.assetDir, "assets", "", "Asset directory (default: embedded res)")
	flag.BoolVar(&opts.headless, "headless", false, "Run without a window on the software renderer")
	flag.IntVar(&opts.frames, "frames", 0, "Stop after this many frames (0 = until closed)")
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&opts.replay, "replay", "", "Play back a recording headlessly")
	flag.StringVar(&opts.screenshot, "screenshot", "", "Write the last headless frame as PNG")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(opts); err != nil {
		log.Fatalf("darkanmon: %+v", err)
	}
}
