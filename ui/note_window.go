package ui

import (
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/making3/Comments/command"
	"github.com/making3/Comments/models"
	"github.com/making3/Comments/positioner"
	"github.com/making3/Comments/session"
)

const windowTitle = "Comments"

var noteSize = fyne.NewSize(300, 40)

// Config holds what the note window needs besides the Fyne app.
type Config struct {
	Settings  *models.Settings
	Store     session.SettingsStore
	Screens   []models.Rect
	LogDir    string
	Viewer    session.Viewer
	Lifecycle bool
	Logger    *slog.Logger
	// Window overrides native placement, mainly for tests.
	Window positioner.Window
}

// NoteWindow is the borderless always-on-top note
type NoteWindow struct {
	app     fyne.App
	window  fyne.Window
	session *session.Session
	entry   *widget.Entry
	panel   *HoverPanel
	logger  *slog.Logger
}

// NewNoteWindow creates the note window and its session
func NewNoteWindow(a fyne.App, cfg Config) *NoteWindow {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	window := newSplashWindow(a)
	window.SetTitle(windowTitle)
	window.Resize(noteSize)
	window.SetFixedSize(true)

	var native *nativeWindow
	placement := cfg.Window
	if placement == nil {
		native = newNativeWindow(window, windowTitle, noteSize, cfg.Logger)
		placement = native
	}

	nw := &NoteWindow{
		app:    a,
		window: window,
		logger: cfg.Logger,
	}
	nw.session = session.New(session.Options{
		Settings:  cfg.Settings,
		Store:     cfg.Store,
		Screens:   cfg.Screens,
		Window:    placement,
		Viewer:    cfg.Viewer,
		Dialogs:   &settingsDialogs{app: a},
		Notifier:  &notifier{app: a},
		Quit:      a.Quit,
		LogDir:    cfg.LogDir,
		Lifecycle: cfg.Lifecycle,
		Logger:    cfg.Logger,
	})

	nw.setupUI()
	if native != nil {
		nw.panel.OnHoverChanged = func(hovered bool) {
			native.SetOpacity(opacityFor(hovered))
		}
	}

	a.Lifecycle().SetOnStarted(func() {
		if native != nil {
			native.keepAbove()
			native.SetOpacity(opacityFor(nw.panel.Hovered()))
		}
		if err := nw.session.Start(); err != nil {
			nw.showError(err)
		}
	})
	a.Lifecycle().SetOnStopped(func() {
		if err := nw.session.Close(); err != nil {
			nw.logger.Error("closing session", "error", err)
		}
	})
	window.SetCloseIntercept(func() {
		if err := nw.session.Close(); err != nil {
			nw.logger.Error("closing session", "error", err)
		}
		a.Quit()
	})

	return nw
}

// newSplashWindow returns a borderless window where the driver supports it
func newSplashWindow(a fyne.App) fyne.Window {
	if drv, ok := a.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return a.NewWindow(windowTitle)
}

// Session returns the session driven by this window
func (nw *NoteWindow) Session() *session.Session { return nw.session }

// ShowAndRun shows the window and runs the application
func (nw *NoteWindow) ShowAndRun() {
	nw.window.ShowAndRun()
}

// setupUI sets up the entry and submit button
func (nw *NoteWindow) setupUI() {
	nw.entry = widget.NewEntry()
	nw.entry.SetPlaceHolder("Comment or /help")
	nw.entry.OnSubmitted = func(string) { nw.submit() }

	submitBtn := widget.NewButtonWithIcon("", theme.ConfirmIcon(), nw.submit)

	nw.panel = NewHoverPanel(container.NewBorder(nil, nil, nil, submitBtn, nw.entry))
	nw.window.SetContent(nw.panel)
	nw.window.Canvas().Focus(nw.entry)
}

// submit hands the entry text to the session and clears the entry
func (nw *NoteWindow) submit() {
	text := nw.entry.Text
	if strings.TrimSpace(text) == "" {
		return
	}

	cmd, err := nw.session.Submit(text)
	if err != nil {
		nw.showError(err)
	}
	if cmd.Action == command.Exit {
		return
	}

	nw.entry.SetText("")
	nw.window.Canvas().Focus(nw.entry)
}

// showError reports an error in its own window
func (nw *NoteWindow) showError(err error) {
	nw.logger.Error("command failed", "error", err)
	showMessage(nw.app, "Error", err.Error())
}
