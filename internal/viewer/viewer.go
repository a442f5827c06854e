// Package viewer implements the interactive orbit camera viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitcam/internal/config"
	"github.com/Faultbox/orbitcam/internal/engine/camera"
	"github.com/Faultbox/orbitcam/internal/engine/debug"
	"github.com/Faultbox/orbitcam/internal/engine/gesture"
	"github.com/Faultbox/orbitcam/internal/engine/input"
	"github.com/Faultbox/orbitcam/internal/engine/picking"
	"github.com/Faultbox/orbitcam/internal/engine/renderer"
	"github.com/Faultbox/orbitcam/internal/engine/window"
	"github.com/Faultbox/orbitcam/internal/logger"
)

// Viewer owns the window, the camera and the per-frame loop.
type Viewer struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	camera  *camera.OrbitCamera
	tracker *gesture.Tracker
	shots   *debug.Screenshots

	static []debug.LineVertex
}

// New creates the window, GL renderer and camera described by cfg.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	v := &Viewer{cfg: cfg}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window, since the OpenGL context must exist
	fbWidth, fbHeight := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:  fbWidth,
		Height: fbHeight,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.input = input.New()

	_, winHeight := v.window.GetSize()
	v.tracker = gesture.NewTracker(gesture.Settings{
		OrbitSensitivity: cfg.Input.OrbitSensitivity,
		PanSensitivity:   cfg.Input.PanSensitivity,
		DollySensitivity: cfg.Input.DollySensitivity,
		InvertY:          cfg.Input.InvertY,
	}, winHeight)

	v.camera = camera.New(
		mgl32.Vec3(cfg.Camera.Position),
		mgl32.Vec3(cfg.Camera.Target),
		aspect(fbWidth, fbHeight, cfg.Aspect()),
	)

	v.shots = debug.NewScreenshots("screenshots", "orbitview")
	v.static = staticLines(cfg.Scene)

	logger.Info("viewer initialized", poseFields(v.camera)...)
	return v, nil
}

// Run starts the main loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}

		screenshot := false
		for _, event := range v.input.Events() {
			switch handleEvent(v.tracker, event) {
			case actionQuit:
				v.running = false
			case actionReset:
				v.resetCamera()
			case actionScreenshot:
				screenshot = true
			case actionResize:
				v.resize()
			case actionFocus:
				v.focus(event.MouseX, event.MouseY)
			case actionSavePose:
				v.savePose()
			}
		}

		// 2. Apply this frame's motion
		v.update()

		// 3. Render
		v.render()
		if screenshot {
			v.saveScreenshot()
		}

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			v.window.SetTitle(windowTitle(v.cfg.Window.Title, frameCount, v.camera.Distance()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the camera and GL/SDL resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.camera != nil {
		v.camera.Release()
		v.camera = nil
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// update feeds the accumulated gesture into the camera.
func (v *Viewer) update() {
	motion := v.tracker.Flush()
	if motion.IsZero() {
		return
	}

	v.camera.Update(motion)
	if ce := logger.Log.Check(zap.DebugLevel, "camera moved"); ce != nil {
		ce.Write(poseFields(v.camera)...)
	}
}

// render draws the reference scene through the camera.
func (v *Viewer) render() {
	v.renderer.Begin(v.camera.ViewMatrix(), v.camera.ProjectionMatrix())
	v.renderer.DrawLines(v.static)
	v.renderer.DrawLines(targetLines(v.cfg.Scene, v.camera))
	v.renderer.End()
}

// resize re-reads the window size so the viewport, drag scale and aspect match.
func (v *Viewer) resize() {
	_, winHeight := v.window.GetSize()
	fbWidth, fbHeight := v.window.DrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		// Minimized; keep the last aspect.
		return
	}

	v.renderer.Resize(fbWidth, fbHeight)
	v.tracker.Resize(winHeight)
	v.camera.SetAspect(aspect(fbWidth, fbHeight, v.camera.Aspect()))
}

func (v *Viewer) resetCamera() {
	v.tracker.Cancel()
	v.camera.SetTransform(mgl32.Vec3(v.cfg.Camera.Position), mgl32.Vec3(v.cfg.Camera.Target))
	logger.Info("camera reset", poseFields(v.camera)...)
}

// focus moves the target to the ground point under the cursor, keeping the
// current viewing direction and distance.
func (v *Viewer) focus(x, y int) {
	w, h := v.window.GetSize()
	hit, ok := groundPoint(v.camera, x, y, w, h)
	if !ok {
		return
	}

	v.tracker.Cancel()
	offset := v.camera.Position().Sub(v.camera.Target())
	v.camera.SetTransform(hit.Add(offset), hit)
	logger.Info("camera focused", poseFields(v.camera)...)
}

// savePose makes the current pose the configured default and writes the
// config to the user's config directory.
func (v *Viewer) savePose() {
	storePose(v.camera, &v.cfg.Camera)
	if err := v.cfg.Save(); err != nil {
		logger.Warn("saving camera pose failed", zap.Error(err))
		return
	}
	logger.Info("camera pose saved", poseFields(v.camera)...)
}

func (v *Viewer) saveScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.Save(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// aspect returns width / height, or fallback when the framebuffer is empty.
func aspect(width, height int, fallback float32) float32 {
	if width <= 0 || height <= 0 {
		return fallback
	}
	return float32(width) / float32(height)
}

func windowTitle(base string, fps int, distance float32) string {
	return fmt.Sprintf("%s - %d FPS - distance %.2f", base, fps, distance)
}

func storePose(c *camera.OrbitCamera, dst *config.CameraConfig) {
	dst.Position = c.Position()
	dst.Target = c.Target()
}

// groundPoint casts a ray through window pixel (x, y) and returns where it
// meets the y = 0 plane.
func groundPoint(c *camera.OrbitCamera, x, y, width, height int) (mgl32.Vec3, bool) {
	if width <= 0 || height <= 0 {
		return mgl32.Vec3{}, false
	}
	ray := picking.ScreenToRay(float32(x)+0.5, float32(y)+0.5,
		float32(width), float32(height), c.ViewProjection().Inv())
	return ray.IntersectPlaneY(0)
}

func poseFields(c *camera.OrbitCamera) []zap.Field {
	return []zap.Field{
		logger.Vec3("position", c.Position()),
		logger.Vec3("target", c.Target()),
		zap.Float32("distance", c.Distance()),
	}
}
