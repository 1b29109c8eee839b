// Package positioner pins the note window to a corner of a monitor's
// working area and applies pixel nudges.
package positioner

import (
	"github.com/making3/Comments/models"
)

// Window is the part of a toplevel window the positioner drives.
type Window interface {
	Size() models.Size
	Move(to models.Point)
}

// Positioner tracks the selected monitor, the anchoring corner and the
// window's last known location.
type Positioner struct {
	screens  []models.Rect
	window   Window
	screen   int
	corner   models.ScreenPosition
	location models.Point
}

// New creates a positioner over the given monitor working areas. The
// first screen is the primary one. At least one screen is required.
func New(screens []models.Rect, window Window, corner models.ScreenPosition) *Positioner {
	if len(screens) == 0 {
		panic("positioner: no screens")
	}
	return &Positioner{
		screens: screens,
		window:  window,
		corner:  corner,
	}
}

// ScreenCount returns the number of attached monitors.
func (p *Positioner) ScreenCount() int { return len(p.screens) }

// Screen returns the index of the selected monitor.
func (p *Positioner) Screen() int { return p.screen }

// Corner returns the current anchoring corner.
func (p *Positioner) Corner() models.ScreenPosition { return p.corner }

// Location returns where the window was last moved to.
func (p *Positioner) Location() models.Point { return p.location }

// SelectMonitor switches to the monitor at index and re-applies the current
// corner there. Out of range indexes are ignored and false is returned.
func (p *Positioner) SelectMonitor(index int) bool {
	if index < 0 || index >= len(p.screens) {
		return false
	}
	p.screen = index
	p.Apply(p.corner)
	return true
}

// ApplyNamedPosition resolves name to a corner and moves the window there.
// Unknown names leave everything unchanged and return false.
func (p *Positioner) ApplyNamedPosition(name string) bool {
	pos, ok := models.ParseScreenPosition(name)
	if !ok {
		return false
	}
	p.Apply(pos)
	return true
}

// Apply moves the window to the corner pos of the selected monitor.
func (p *Positioner) Apply(pos models.ScreenPosition) {
	p.MoveTo(CornerLocation(p.screens[p.screen], p.window.Size(), pos))
	p.corner = pos
}

// Nudge moves the window relative to its current location. The corner is
// not re-applied, so the window may no longer sit on it.
func (p *Positioner) Nudge(deltaTop, deltaLeft int) models.Point {
	p.MoveTo(models.Point{X: p.location.X + deltaLeft, Y: p.location.Y + deltaTop})
	return p.location
}

// MoveTo places the window at an absolute location.
func (p *Positioner) MoveTo(to models.Point) {
	p.location = to
	p.window.Move(to)
}

// CornerLocation computes the top-left point that pins a window of the
// given size into corner pos of area.
func CornerLocation(area models.Rect, size models.Size, pos models.ScreenPosition) models.Point {
	switch pos {
	case models.BottomRight:
		return models.Point{X: area.Right() - size.Width, Y: area.Bottom() - size.Height}
	case models.BottomLeft:
		return models.Point{X: area.Left(), Y: area.Bottom() - size.Height}
	case models.TopRight:
		return models.Point{X: area.Right() - size.Width, Y: area.Top()}
	default:
		return models.Point{X: area.Left(), Y: area.Top()}
	}
}
