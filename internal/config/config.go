// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// minPoseDistance mirrors the camera's Epsilon so a bad pose is reported as
// a config error instead of a camera panic.
const minPoseDistance = 1e-5

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Input   InputConfig   `yaml:"input"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CameraConfig holds the initial (and reset) camera pose.
type CameraConfig struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
}

// InputConfig holds gesture sensitivities.
type InputConfig struct {
	OrbitSensitivity float32 `yaml:"orbit_sensitivity"`
	PanSensitivity   float32 `yaml:"pan_sensitivity"`
	DollySensitivity float32 `yaml:"dolly_sensitivity"`
	InvertY          bool    `yaml:"invert_y"`
}

// SceneConfig controls the reference geometry drawn around the target.
type SceneConfig struct {
	GridSize   int     `yaml:"grid_size"` // Cells per side
	GridStep   float32 `yaml:"grid_step"` // World units per cell
	ShowAxes   bool    `yaml:"show_axes"`
	ShowTarget bool    `yaml:"show_target"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Orbit View",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Position: [3]float32{0, 0, 5},
			Target:   [3]float32{0, 0, 0},
		},
		Input: InputConfig{
			OrbitSensitivity: 1,
			PanSensitivity:   1,
			DollySensitivity: 1,
			InvertY:          false,
		},
		Scene: SceneConfig{
			GridSize:   20,
			GridStep:   1,
			ShowAxes:   true,
			ShowTarget: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Aspect returns the window aspect ratio.
func (c *Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// Validate reports every setting that the viewer cannot start with.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	p, t := c.Camera.Position, c.Camera.Target
	dx, dy, dz := float64(p[0]-t[0]), float64(p[1]-t[1]), float64(p[2]-t[2])
	if d := math.Sqrt(dx*dx + dy*dy + dz*dz); !(d > minPoseDistance) {
		err = multierr.Append(err, fmt.Errorf("camera position %v must differ from target %v", p, t))
	}

	if c.Input.OrbitSensitivity < 0 || c.Input.PanSensitivity < 0 || c.Input.DollySensitivity < 0 {
		err = multierr.Append(err, errors.New("input sensitivities must not be negative"))
	}

	if c.Scene.GridSize < 0 {
		err = multierr.Append(err, fmt.Errorf("scene grid_size must not be negative, got %d", c.Scene.GridSize))
	}
	if c.Scene.GridSize > 0 && !(c.Scene.GridStep > 0) {
		err = multierr.Append(err, fmt.Errorf("scene grid_step must be positive, got %g", c.Scene.GridStep))
	}

	return err
}
