// Package viewer implements the terrain viewer loop.
package viewer

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terravis/internal/config"
	"github.com/Faultbox/terravis/internal/engine/camera"
	"github.com/Faultbox/terravis/internal/engine/debug"
	"github.com/Faultbox/terravis/internal/engine/input"
	"github.com/Faultbox/terravis/internal/engine/lighting"
	"github.com/Faultbox/terravis/internal/engine/renderer"
	"github.com/Faultbox/terravis/internal/engine/scene"
	"github.com/Faultbox/terravis/internal/engine/terrain"
	"github.com/Faultbox/terravis/internal/engine/window"
	"github.com/Faultbox/terravis/internal/logger"
	vmath "github.com/Faultbox/terravis/pkg/math"
)

// Viewer is the main viewer instance. It owns the window, the GL state
// and the camera, and runs the frame loop until quit.
type Viewer struct {
	config  *config.Config
	running bool

	window     *window.Window
	renderer   *renderer.Renderer
	terrain    *scene.TerrainRenderer
	input      *input.Input
	camera     *camera.FlyCamera
	screenshot *debug.ScreenshotCapture

	mesh *terrain.Mesh
}

// New creates the viewer: window and GL context first, then the
// renderer, then the terrain pipeline and upload.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("data", cfg.Terrain.DataPath),
		zap.String("shading", cfg.Shading.Mode),
	)

	v := &Viewer{
		config: cfg,
	}

	var err error
	v.window, err = window.New(window.Config{
		Title:      "terravis",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	shading := scene.ShadeNormals
	if cfg.Shading.Mode == config.ShadingPhong {
		shading = scene.ShadePhong
	}
	v.terrain, err = scene.NewTerrainRenderer(shading)
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create terrain renderer: %w", err)
	}

	if err := v.buildTerrain(); err != nil {
		v.terrain.Destroy()
		v.window.Close()
		return nil, err
	}

	v.input = input.New()

	v.camera = camera.NewFlyCamera()
	v.camera.MoveSpeed = cfg.Camera.MoveSpeed
	v.camera.MouseSensitivity = cfg.Camera.MouseSensitivity
	v.camera.RollSensitivity = cfg.Camera.RollSensitivity

	v.screenshot = debug.NewScreenshotCapture("screenshots", "terravis")

	v.window.CaptureMouse(true)

	logger.Info("viewer initialized")
	return v, nil
}

// buildTerrain runs the pipeline and uploads the result to the GPU.
func (v *Viewer) buildTerrain() error {
	mesh, err := prepareMesh(v.config.Terrain)
	if err != nil {
		return err
	}

	v.mesh = mesh
	v.terrain.UploadMesh(mesh)
	return nil
}

// Run starts the main viewer loop.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}

		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				v.renderer.Resize(event.Width, event.Height)
			}
		}

		if v.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			v.running = false
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.captureScreenshot()
		}

		v.updateCamera(dt)
		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("frame_ms", dt*1000),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// updateCamera applies held keys and mouse deltas to the fly camera.
// With the right button held a horizontal drag rolls instead of yawing.
func (v *Viewer) updateCamera(dt float32) {
	var forward, right float32
	if v.input.IsKeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if v.input.IsKeyDown(sdl.SCANCODE_D) {
		right++
	}
	if v.input.IsKeyDown(sdl.SCANCODE_A) {
		right--
	}
	v.camera.HandleMovement(forward, right, dt)

	dx, dy := v.input.MouseDelta()
	if dx == 0 && dy == 0 {
		return
	}
	if v.input.IsButtonDown(sdl.BUTTON_RIGHT) {
		v.camera.HandleRoll(dx)
	} else {
		v.camera.HandleMouseLook(dx, dy)
	}
}

// render draws the current frame.
func (v *Viewer) render() {
	v.renderer.Begin()

	width, height := v.renderer.Size()
	aspect := float32(width) / float32(max(height, 1))
	fov := v.config.Camera.FOV * float32(gomath.Pi) / 180
	proj := vmath.Perspective(fov, aspect, 0.01, 100)
	view := v.camera.ViewMatrix()

	shading := v.config.Shading
	v.terrain.Render(view, proj, v.camera.Position, scene.PhongParams{
		LightPos:   lighting.SunPosition(shading.LightLongitude, shading.LightLatitude, 5),
		LightColor: shading.LightColor,
		Ambient:    shading.Ambient,
		Diffuse:    shading.Diffuse,
		Specular:   shading.Specular,
		Shininess:  shading.Shininess,
	})
}

// captureScreenshot reads back the framebuffer and writes a PNG.
func (v *Viewer) captureScreenshot() {
	width, height := v.renderer.Size()
	pixels := v.renderer.ReadPixels()

	path, err := v.screenshot.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.terrain != nil {
		v.terrain.Destroy()
	}
	if v.window != nil {
		v.window.Close()
	}
}
