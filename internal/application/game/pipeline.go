// Package game provides the frame pipeline: it drives the active scene,
// renders its world into an off-screen framebuffer and composites that
// framebuffer plus the UI onto the window every frame.
package game

import (
	"image"
	"image/color"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/younwookim/darkanmon/internal/application/render"
	"github.com/younwookim/darkanmon/internal/application/scene"
	"github.com/younwookim/darkanmon/internal/application/state"
	"github.com/younwookim/darkanmon/internal/domain/entity"
	"github.com/younwookim/darkanmon/internal/domain/input"
	"github.com/younwookim/darkanmon/internal/infrastructure/asset"
	"github.com/younwookim/darkanmon/internal/infrastructure/config"
	"github.com/younwookim/darkanmon/internal/infrastructure/gfx"
	"github.com/younwookim/darkanmon/internal/infrastructure/logging"
	"github.com/younwookim/darkanmon/internal/infrastructure/window"
)

// claimed is set while a pipeline is alive.
var claimed atomic.Bool

// Recorder receives every frame's latched input and every window resize.
type Recorder interface {
	Record(snap input.Snapshot, delta float64)
	RecordResize(width, height int)
}

// Options are the startup parameters of a pipeline.
type Options struct {
	Window         window.Window
	GameResolution gfx.Resolution
	Scene          scene.Scene

	Assets *asset.Manager
	Levels *config.Loader

	// ClearColor fills the framebuffer and the letterbox. Black when nil.
	ClearColor color.Color
	// Recorder, when set, records input for replay.
	Recorder Recorder
	// Clock measures frame deltas. time.Now when nil.
	Clock func() time.Time
}

// Pipeline owns the framebuffer, the view entity and both renderers, and
// runs one scene at a time. Only one pipeline may exist per process.
type Pipeline struct {
	window window.Window
	device gfx.Device
	game   gfx.Resolution

	fbo        *gfx.FBO
	view       *entity.Entity
	viewCamera *gfx.Camera
	entities   *render.EntityRenderer
	fonts      *render.FontRenderer

	scene      scene.Scene
	sceneState state.Lifecycle
	pending    scene.Scene
	inFrame    bool
	switching  bool
	shutdown   bool

	assets   *asset.Manager
	levels   *config.Loader
	recorder Recorder
	clock    func() time.Time
	last     time.Time
	frames   uint64

	log *slog.Logger
}

// New builds the pipeline and activates opts.Scene. It fails with
// ErrPipelineExists while another pipeline is alive; that pipeline is not
// affected.
func New(opts Options) (p *Pipeline, err error) {
	if opts.Window == nil {
		return nil, errors.New("game: nil window")
	}
	if opts.Scene == nil {
		return nil, ErrNilScene
	}
	if !claimed.CompareAndSwap(false, true) {
		return nil, ErrPipelineExists
	}
	defer func() {
		if err != nil {
			claimed.Store(false)
		}
	}()

	device := opts.Window.Device()
	fbo, err := gfx.NewFBO(device, opts.GameResolution)
	if err != nil {
		return nil, err
	}

	p = &Pipeline{
		window:     opts.Window,
		device:     device,
		game:       opts.GameResolution,
		fbo:        fbo,
		viewCamera: gfx.NewCamera(mgl32.Vec2{}),
		entities:   render.NewEntityRenderer(device),
		fonts:      render.NewFontRenderer(device),
		assets:     opts.Assets,
		levels:     opts.Levels,
		recorder:   opts.Recorder,
		clock:      opts.Clock,
		log:        logging.For("pipeline"),
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	p.view = entity.New(mgl32.Vec2{}, float32(fbo.Width()), float32(fbo.Height()), nil, fbo.Texture())

	bg := opts.ClearColor
	if bg == nil {
		bg = color.Black
	}
	device.SetClearColor(bg)

	opts.Window.OnResize(func(width, height int) {
		if p.recorder != nil {
			p.recorder.RecordResize(width, height)
		}
		if err := p.NotifyWindowResize(); err != nil {
			p.log.Warn("resize ignored", "width", width, "height", height, "err", err)
		}
	})

	p.log.Info("pipeline created", "game", p.game, "window", p.WindowSize())

	if err := p.SetScene(opts.Scene); err != nil {
		p.release()
		return nil, err
	}
	return p, nil
}

// SetScene replaces the active scene. Outside a frame the switch is
// immediate: the old scene finishes, the new one initializes, and the view
// layout is recomputed. During a frame the switch waits until the current
// scene's Update has returned.
func (p *Pipeline) SetScene(next scene.Scene) error {
	if next == nil {
		return ErrNilScene
	}
	if p.shutdown {
		return ErrNotRunning
	}
	if p.inFrame || p.switching {
		p.pending = next
		return nil
	}
	return p.switchTo(next)
}

func (p *Pipeline) switchTo(next scene.Scene) error {
	p.switching = true
	defer func() { p.switching = false }()

	for next != nil {
		p.finishScene()

		p.scene = next
		p.sceneState = state.Uninitialized
		if err := next.Init(p); err != nil {
			p.scene = nil
			p.pending = nil
			return errors.Wrapf(err, "game: init scene %T", next)
		}
		p.sceneState = state.Active
		p.log.Info("scene active", "scene", sceneName(next))
		p.resizeScreen()

		// Init itself may have asked for another scene.
		next, p.pending = p.pending, nil
	}
	return nil
}

func (p *Pipeline) finishScene() {
	if p.scene == nil || !p.sceneState.CanTransition(state.Finished) {
		return
	}
	p.scene.Finish()
	p.sceneState = state.Finished
	p.log.Debug("scene finished", "scene", sceneName(p.scene))
}

func (p *Pipeline) applyPending() error {
	if p.pending == nil {
		return nil
	}
	next := p.pending
	p.pending = nil
	return p.switchTo(next)
}

// RunFrame advances and draws one frame.
func (p *Pipeline) RunFrame(delta float64) error {
	if p.shutdown || p.scene == nil {
		return ErrNotRunning
	}

	p.inFrame = true
	defer func() { p.inFrame = false }()

	in := p.window.Input()
	in.Update()
	if p.recorder != nil {
		p.recorder.Record(in.Snapshot(), delta)
	}

	if p.sceneState.CanUpdate() {
		if err := p.scene.Update(delta); err != nil {
			return errors.Wrapf(err, "game: update scene %s", sceneName(p.scene))
		}
	}
	if err := p.applyPending(); err != nil {
		return err
	}

	if err := p.renderWorld(); err != nil {
		return err
	}
	p.view.SetTexture(p.postProcess())
	if err := p.composite(); err != nil {
		return err
	}
	p.frames++

	// Switches requested from the render hooks land before the next frame.
	return p.applyPending()
}

// renderWorld draws the scene's world layer into the framebuffer.
func (p *Pipeline) renderWorld() error {
	sc := p.scene

	if err := p.entities.Prepare(); err != nil {
		return errors.Wrap(err, "game: prepare entity renderer")
	}
	p.fbo.Bind(p.device)
	defer p.fbo.Unbind(p.device)

	p.entities.SetProjection(p.game)
	p.entities.BindCamera(sc.Camera())
	p.device.SetViewport(image.Rect(0, 0, p.game.Width, p.game.Height))
	p.device.Clear()

	p.entities.RenderAll(sc.World())
	sc.RenderExtraWorldEntity(p.entities)

	if err := p.fonts.Prepare(); err != nil {
		p.entities.End()
		return errors.Wrap(err, "game: prepare font renderer")
	}
	p.fonts.SetProjection(p.game)
	p.fonts.BindCamera(sc.Camera())
	p.fonts.RenderAll(sc.World())
	sc.RenderExtraWorldText(p.fonts)
	return nil
}

// postProcess returns the texture the view entity shows this frame: the
// scene's replacement, or the framebuffer attachment.
func (p *Pipeline) postProcess() gfx.Texture {
	if tex := p.scene.PostProcess(p.fbo); tex != nil {
		return tex
	}
	return p.fbo.Texture()
}

// composite draws the view entity and the UI layer onto the window.
func (p *Pipeline) composite() error {
	sc := p.scene
	win := p.WindowSize()

	if err := p.entities.Prepare(); err != nil {
		return errors.Wrap(err, "game: prepare entity renderer")
	}
	p.device.Bind(nil)
	p.entities.SetProjection(win)
	p.device.SetViewport(image.Rect(0, 0, win.Width, win.Height))
	p.device.Clear()
	p.viewCamera.SetOrigin(win.Center())
	p.entities.BindCamera(p.viewCamera)

	p.entities.Render(p.view)
	p.entities.RenderAll(sc.UI())
	sc.RenderUIEntity(p.entities)

	if err := p.fonts.Prepare(); err != nil {
		return errors.Wrap(err, "game: prepare font renderer")
	}
	p.fonts.SetProjection(win)
	p.fonts.BindCamera(p.viewCamera)
	p.fonts.RenderAll(sc.UI())
	sc.RenderUIText(p.fonts)

	p.entities.End()
	p.fonts.End()
	return p.device.UseProgram(nil)
}

// NotifyWindowResize recomputes the view layout for the current window
// size and tells the scene. It fails with ErrNotRunning until a scene is
// active.
func (p *Pipeline) NotifyWindowResize() error {
	if p.shutdown || p.entities == nil || p.scene == nil {
		return ErrNotRunning
	}
	p.resizeScreen()
	return nil
}

// Shutdown finishes the active scene and releases GPU resources. Later
// calls are no-ops.
func (p *Pipeline) Shutdown() {
	if p.shutdown {
		return
	}
	p.finishScene()
	p.release()
	p.log.Info("pipeline shut down", "frames", p.frames)
}

func (p *Pipeline) release() {
	p.shutdown = true
	p.entities.Unload()
	p.fonts.Unload()
	p.fbo.Dispose()
	p.scene = nil
	p.pending = nil
	claimed.Store(false)
}

// Scene returns the active scene.
func (p *Pipeline) Scene() scene.Scene { return p.scene }

// SceneState returns the lifecycle stage of the active scene.
func (p *Pipeline) SceneState() state.Lifecycle { return p.sceneState }

// View returns the entity that displays the framebuffer.
func (p *Pipeline) View() *entity.Entity { return p.view }

// FBO returns the world framebuffer.
func (p *Pipeline) FBO() *gfx.FBO { return p.fbo }

// Frames returns the number of frames drawn.
func (p *Pipeline) Frames() uint64 { return p.frames }

// EntityRenderer returns the quad renderer.
func (p *Pipeline) EntityRenderer() *render.EntityRenderer { return p.entities }

// FontRenderer returns the text renderer.
func (p *Pipeline) FontRenderer() *render.FontRenderer { return p.fonts }

// GameResolution implements scene.Context.
func (p *Pipeline) GameResolution() gfx.Resolution { return p.game }

// WindowSize implements scene.Context.
func (p *Pipeline) WindowSize() gfx.Resolution {
	return gfx.Resolution{Width: p.window.Width(), Height: p.window.Height()}
}

// Input implements scene.Context.
func (p *Pipeline) Input() *input.State { return p.window.Input() }

// Assets implements scene.Context.
func (p *Pipeline) Assets() *asset.Manager { return p.assets }

// Levels implements scene.Context.
func (p *Pipeline) Levels() *config.Loader { return p.levels }

// Device implements scene.Context.
func (p *Pipeline) Device() gfx.Device { return p.device }

type named interface {
	Name() string
}

func sceneName(s scene.Scene) string {
	if n, ok := s.(named); ok {
		return n.Name()
	}
	return "unnamed"
}
