// Package app wires the desk scene viewer together and runs the main loop.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/calegray/deskscene/internal/config"
	"github.com/calegray/deskscene/internal/desk"
	"github.com/calegray/deskscene/internal/engine/camera"
	"github.com/calegray/deskscene/internal/engine/capture"
	"github.com/calegray/deskscene/internal/engine/input"
	"github.com/calegray/deskscene/internal/engine/mesh"
	"github.com/calegray/deskscene/internal/engine/scene"
	"github.com/calegray/deskscene/internal/engine/scene/shaders"
	"github.com/calegray/deskscene/internal/engine/shader"
	"github.com/calegray/deskscene/internal/engine/texture"
	"github.com/calegray/deskscene/internal/engine/window"
	"github.com/calegray/deskscene/internal/logger"
)

const windowTitle = "Desk Scene"

// Near and far clip planes. The desk spans roughly 40 units and the
// camera backs off to 120, so 500 leaves plenty of headroom.
const (
	nearPlane = 0.1
	farPlane  = 500.0
)

// App is the viewer instance.
type App struct {
	config  *config.Config
	running bool

	window  *window.Window
	program *shader.Program
	meshes  *mesh.Library
	manager *scene.Manager
	desk    *desk.Scene
	camera  *camera.OrbitCamera
	input   *input.Input
	shots   *capture.Writer

	width  int
	height int
}

// New creates the viewer. The window comes first so the OpenGL context
// exists before any GL resource is touched.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:       windowTitle,
		Width:       cfg.Graphics.Width,
		Height:      cfg.Graphics.Height,
		Fullscreen:  cfg.Graphics.Fullscreen,
		VSync:       cfg.Graphics.VSync,
		MSAASamples: cfg.Graphics.MSAASamples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if cfg.Graphics.MSAASamples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	a.program, err = shader.NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to build scene shader: %w", err)
	}

	a.meshes = mesh.NewLibrary()
	a.manager = scene.NewManager(a.program, a.meshes, texture.NewGLDevice())

	// Uniform writes target the bound program, so bind before Prepare
	// pushes lights and materials.
	a.program.Use()
	a.desk = desk.New(a.manager, cfg.Assets.Dir)
	a.desk.Prepare()

	a.camera = camera.NewOrbitCamera(cfg.Camera.Distance)
	a.input = input.New()
	a.shots = capture.NewWriter("screenshots", "deskscene")

	logger.Info("Viewer initialized")
	return a, nil
}

// Run starts the main loop. It returns when the window is closed or
// Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("Starting render loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()
		if a.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			a.running = false
			break
		}
		a.panCamera(dt)

		// 2. Render
		a.render()

		// 3. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("Frame rate",
				zap.Int("fps", frameCount),
				zap.String("frame", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// handleEvents routes window and mouse events to the viewport and the
// orbit camera. Dragging with the left button orbits, the wheel zooms.
func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.width = event.Width
			a.height = event.Height
			gl.Viewport(0, 0, int32(event.Width), int32(event.Height))
		case input.EventMouseMove:
			if a.input.IsMouseDown(sdl.BUTTON_LEFT) {
				a.camera.HandleDrag(float32(event.RelX), float32(event.RelY))
			}
		case input.EventMouseWheel:
			a.camera.HandleZoom(event.WheelY)
		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_F12 {
				a.saveScreenshot()
			}
		}
	}
}

// saveScreenshot reads the front buffer and writes it out as a PNG.
func (a *App) saveScreenshot() {
	buf := make([]byte, a.width*a.height*4)
	gl.ReadPixels(0, 0, int32(a.width), int32(a.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))

	path, err := a.shots.SavePixels(buf, a.width, a.height)
	if err != nil {
		logger.Warn("Failed to save screenshot", zap.Error(err))
		return
	}
	logger.Info("Screenshot saved", zap.String("path", path))
}

// panCamera moves the orbit center with WASD, and E/Q for height. The
// step is scaled to dt so panning speed does not depend on frame rate.
func (a *App) panCamera(dt float64) {
	var forward, right, up float32
	if a.input.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if a.input.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	if a.input.IsKeyDown(sdl.SCANCODE_E) {
		up++
	}
	if a.input.IsKeyDown(sdl.SCANCODE_Q) {
		up--
	}
	if forward == 0 && right == 0 && up == 0 {
		return
	}

	step := float32(dt) * 60
	a.camera.HandleMovement(forward*step, right*step, up*step)
}

// render draws the current frame.
func (a *App) render() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	a.program.Use()

	aspect := float32(a.width) / float32(a.height)
	projection := mgl32.Perspective(mgl32.DegToRad(a.config.Camera.FOV), aspect, nearPlane, farPlane)
	a.manager.SetView(a.camera.ViewMatrix(), projection, a.camera.Position())

	a.desk.Render()
}

// Close tears the viewer down in reverse creation order.
func (a *App) Close() {
	logger.Info("Closing viewer")

	if a.manager != nil {
		a.manager.Destroy()
	}
	if a.program != nil {
		a.program.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
