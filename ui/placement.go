package ui

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"github.com/making3/Comments/models"
)

const (
	requestAttempts = 5
	requestBackoff  = 200 * time.Millisecond
)

// nativeWindow places the note window through the window manager. Fyne has
// no API for window position, stacking or opacity, so on X11 this drives
// wmctrl and xprop.
type nativeWindow struct {
	window fyne.Window
	title  string
	size   fyne.Size
	logger *slog.Logger

	mu         sync.Mutex
	moveSeq    int
	opacitySeq int
}

func newNativeWindow(w fyne.Window, title string, size fyne.Size, logger *slog.Logger) *nativeWindow {
	nw := &nativeWindow{window: w, title: title, size: size, logger: logger}
	if !toolAvailable("wmctrl") {
		logger.Info("window manager control unavailable, note placement is left to the desktop",
			"os", runtime.GOOS)
	}
	return nw
}

// Size returns the window size in pixels.
func (n *nativeWindow) Size() models.Size {
	size := n.window.Canvas().Size()
	if size.Width == 0 || size.Height == 0 {
		size = n.size
	}
	scale := n.window.Canvas().Scale()
	return models.Size{Width: int(size.Width * scale), Height: int(size.Height * scale)}
}

// Move asks the window manager to move the window. The window may not be
// mapped yet, so a few attempts are made in the background. A newer move
// supersedes an older one still retrying.
func (n *nativeWindow) Move(to models.Point) {
	seq := n.next(&n.moveSeq)
	geometry := fmt.Sprintf("0,%d,%d,-1,-1", to.X, to.Y)
	go n.retry(func() bool { return n.current(&n.moveSeq, seq) },
		"move", "wmctrl", moveArgs(n.title, geometry)...)
}

// keepAbove asks the window manager to keep the note above other windows.
func (n *nativeWindow) keepAbove() {
	go n.retry(func() bool { return true }, "keep above", "wmctrl", keepAboveArgs(n.title)...)
}

// SetOpacity sets the opacity of the whole window, between 0 and 1.
func (n *nativeWindow) SetOpacity(opacity float64) {
	seq := n.next(&n.opacitySeq)
	go n.retry(func() bool { return n.current(&n.opacitySeq, seq) },
		"opacity", "xprop", opacityArgs(n.title, opacity)...)
}

func (n *nativeWindow) next(seq *int) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	*seq++
	return *seq
}

func (n *nativeWindow) current(seq *int, want int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return *seq == want
}

func (n *nativeWindow) retry(current func() bool, what, tool string, args ...string) {
	if !toolAvailable(tool) {
		return
	}
	var err error
	for attempt := 0; attempt < requestAttempts; attempt++ {
		if !current() {
			return
		}
		if err = exec.Command(tool, args...).Run(); err == nil {
			return
		}
		time.Sleep(requestBackoff)
	}
	n.logger.Warn("window manager request failed", "request", what, "error", err)
}

// -F makes wmctrl match the title exactly rather than as a substring
func moveArgs(title, geometry string) []string {
	return []string{"-F", "-r", title, "-e", geometry}
}

func keepAboveArgs(title string) []string {
	return []string{"-F", "-r", title, "-b", "add,above"}
}

func opacityArgs(title string, opacity float64) []string {
	return []string{
		"-name", title,
		"-f", "_NET_WM_WINDOW_OPACITY", "32c",
		"-set", "_NET_WM_WINDOW_OPACITY", fmt.Sprint(opacityValue(opacity)),
	}
}

// opacityValue scales opacity to the 32 bit cardinal X11 compositors expect
func opacityValue(opacity float64) uint32 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 0xffffffff
	}
	return uint32(opacity * 0xffffffff)
}

// toolAvailable checks if an X11 helper can be used on this desktop
func toolAvailable(tool string) bool {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		return false
	}
	_, err := exec.LookPath(tool)
	return err == nil
}
