package viewer

import (
	"github.com/Faultbox/orbitcam/internal/config"
	"github.com/Faultbox/orbitcam/internal/engine/camera"
	"github.com/Faultbox/orbitcam/internal/engine/debug"
)

// markerScale sizes the target marker relative to the eye distance so it
// keeps a constant on-screen size while dollying.
const markerScale = 0.03

// staticLines returns the geometry that never moves: ground grid and world axes.
func staticLines(cfg config.SceneConfig) []debug.LineVertex {
	lines := debug.Grid(cfg.GridSize, cfg.GridStep)
	if cfg.ShowAxes {
		length := cfg.GridStep * float32(max(cfg.GridSize, 2)) / 2
		lines = append(lines, debug.Axes(length)...)
	}
	return lines
}

// targetLines returns the marker drawn around the camera target.
func targetLines(cfg config.SceneConfig, cam *camera.OrbitCamera) []debug.LineVertex {
	if !cfg.ShowTarget {
		return nil
	}
	return debug.TargetMarker(cam.Target(), cam.Distance()*markerScale)
}
