package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const (
	// dimOpacity is the window opacity while the pointer is outside the note.
	dimOpacity  = 0.15
	fullOpacity  = 1.0
)

// HoverPanel wraps content and reports when the pointer enters or leaves it.
type HoverPanel struct {
	widget.BaseWidget
	content fyne.CanvasObject
	hovered bool

	// OnHoverChanged is called with the new state on every enter and leave.
	OnHoverChanged func(hovered bool)
}

var _ desktop.Hoverable = (*HoverPanel)(nil)

// NewHoverPanel wraps content in a hover-aware panel
func NewHoverPanel(content fyne.CanvasObject) *HoverPanel {
	p := &HoverPanel{content: content}
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *HoverPanel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// Hovered reports whether the pointer is over the panel.
func (p *HoverPanel) Hovered() bool { return p.hovered }

// MouseIn implements desktop.Hoverable
func (p *HoverPanel) MouseIn(*desktop.MouseEvent) {
	p.setHovered(true)
}

// MouseMoved implements desktop.Hoverable
func (p *HoverPanel) MouseMoved(*desktop.MouseEvent) {}

// MouseOut implements desktop.Hoverable
func (p *HoverPanel) MouseOut() {
	p.setHovered(false)
}

func (p *HoverPanel) setHovered(hovered bool) {
	if p.hovered == hovered {
		return
	}
	p.hovered = hovered
	if p.OnHoverChanged != nil {
		p.OnHoverChanged(hovered)
	}
}

// opacityFor returns the window opacity for a hover state.
func opacityFor(hovered bool) float64 {
	if hovered {
		return fullOpacity
	}
	return dimOpacity
}
