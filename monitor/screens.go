// Package monitor enumerates the attached displays and their working areas.
package monitor

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/making3/Comments/models"
)

// Fallback is used when no display can be queried, e.g. in console mode.
var Fallback = models.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

// Detect returns the working area of every attached monitor, primary first.
// It must be called from the main thread before the UI loop starts.
// GLFW is left initialised because the UI driver shares it.
func Detect() ([]models.Rect, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialising display: %w", err)
	}

	monitors := glfw.GetMonitors()
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors attached")
	}

	primary := glfw.GetPrimaryMonitor()
	areas := make([]models.Rect, 0, len(monitors))
	for _, m := range monitors {
		x, y, w, h := m.GetWorkarea()
		area := models.Rect{X: x, Y: y, Width: w, Height: h}
		if m == primary {
			areas = append([]models.Rect{area}, areas...)
			continue
		}
		areas = append(areas, area)
	}
	return areas, nil
}

// DetectOrFallback is Detect with a single Fallback screen on failure.
func DetectOrFallback() ([]models.Rect, error) {
	areas, err := Detect()
	if err != nil {
		return []models.Rect{Fallback}, err
	}
	return areas, nil
}
