package game

import "github.com/pkg/errors"

var (
	// ErrPipelineExists is returned by New while another pipeline is alive.
	ErrPipelineExists = errors.New("game: pipeline already exists")
	// ErrNilScene is returned when a nil scene is installed.
	ErrNilScene = errors.New("game: nil scene")
	// ErrNotRunning is returned when frames or resizes arrive before a scene
	// is active or after shutdown.
	ErrNotRunning = errors.New("game: pipeline not running")
)
