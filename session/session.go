// Package session executes classified note input against the log, the
// window positioner and the reminder.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/making3/Comments/command"
	"github.com/making3/Comments/journal"
	"github.com/making3/Comments/models"
	"github.com/making3/Comments/positioner"
	"github.com/making3/Comments/reminder"
)

// ReminderTitle is the caption of the reminder popup.
const ReminderTitle = "Reminder!"

var defaultScreen = models.Rect{Width: 1920, Height: 1080}

// Viewer opens a file or folder for the user to read.
type Viewer interface {
	Open(path string) error
}

// Dialogs shows the settings dialogs. done receives the edited settings,
// or nil when the dialog was cancelled.
type Dialogs interface {
	ShowHelp(current *models.Settings, done func(updated *models.Settings))
	ShowReminderSettings(current *models.Settings, done func(updated *models.Settings))
}

// Notifier shows a message to the user. It may be called from any goroutine.
type Notifier interface {
	Notify(title, message string)
}

// SettingsStore persists settings.
type SettingsStore interface {
	SaveSettings(s *models.Settings) error
}

// Options are the collaborators of a Session.
type Options struct {
	Settings *models.Settings
	Store    SettingsStore
	Screens  []models.Rect
	Window   positioner.Window
	Viewer   Viewer
	Dialogs  Dialogs
	Notifier Notifier
	// Quit ends the UI loop.
	Quit func()
	// LogDir is the expanded log directory.
	LogDir string
	// Lifecycle enables the start and close markers. Off in debug runs.
	Lifecycle bool
	Now       func() time.Time
	Logger    *slog.Logger
}

// Session is one run of the note.
type Session struct {
	mu         sync.Mutex
	settings   *models.Settings
	store      SettingsStore
	positioner *positioner.Positioner
	journal    *journal.Writer
	viewer     Viewer
	dialogs    Dialogs
	notifier   Notifier
	reminder   *reminder.Timer
	quit       func()
	lifecycle  bool
	now        func() time.Time
	logger     *slog.Logger
	closeOnce  sync.Once
	closeErr   error
}

// New creates a session. Today's log file is fixed here. The reminder
// starts immediately when enabled.
func New(opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Quit == nil {
		opts.Quit = func() {}
	}
	if len(opts.Screens) == 0 {
		opts.Screens = []models.Rect{defaultScreen}
	}

	corner, ok := models.ParseScreenPosition(opts.Settings.Position)
	if !ok {
		corner = models.BottomRight
	}

	s := &Session{
		settings:   opts.Settings,
		store:      opts.Store,
		positioner: positioner.New(opts.Screens, opts.Window, corner),
		journal:    journal.NewWriter(opts.LogDir, opts.Now()).WithClock(opts.Now),
		viewer:     opts.Viewer,
		dialogs:    opts.Dialogs,
		notifier:   opts.Notifier,
		quit:       opts.Quit,
		lifecycle:  opts.Lifecycle,
		now:        opts.Now,
		logger:     opts.Logger,
	}
	s.reminder = reminder.NewTimer(reminderInterval(opts.Settings), opts.Settings.ReminderEnabled, s.remind)
	return s
}

func reminderInterval(s *models.Settings) time.Duration {
	return time.Duration(s.ReminderIntervalMS) * time.Millisecond
}

// Settings returns a copy of the current settings.
func (s *Session) Settings() *models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.Clone()
}

// LogPath returns today's log file.
func (s *Session) LogPath() string { return s.journal.Path() }

// Location returns where the window was last placed.
func (s *Session) Location() models.Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positioner.Location()
}

// ReminderRunning reports whether the reminder is ticking.
func (s *Session) ReminderRunning() bool { return s.reminder.Running() }

// Start places the window, writes the start marker and, on the first run
// of the day, opens the previous day's log.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	firstRunToday := !s.journal.Exists()

	var errs []error
	if s.lifecycle && s.settings.LogStartStop {
		if err := s.journal.Append(journal.StartMarker); err != nil {
			errs = append(errs, err)
		}
	}

	s.positioner.MoveTo(models.Point{X: s.settings.PositionLeft, Y: s.settings.PositionTop})
	if !s.positioner.SelectMonitor(s.settings.Screen) {
		s.logger.Warn("configured screen not attached, using primary",
			"screen", s.settings.Screen, "screens", s.positioner.ScreenCount())
		s.settings.Screen = 0
		s.positioner.SelectMonitor(0)
	}

	if s.settings.DisplayPreviousLog && firstRunToday {
		if err := s.openPrevious(); err != nil && !errors.Is(err, journal.ErrNoLog) {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Submit classifies input and carries it out. Whitespace-only input does
// nothing.
func (s *Session) Submit(input string) (command.Command, error) {
	cmd := command.Classify(input)
	if cmd.Action != command.None {
		s.logger.Debug("dispatching input", "action", cmd.Action.String())
	}

	switch cmd.Action {
	case command.None:
		return cmd, nil
	case command.Exit:
		err := s.Close()
		s.quit()
		return cmd, err
	case command.Help:
		s.dialogs.ShowHelp(s.Settings(), s.dialogClosed)
		return cmd, nil
	case command.Reminder:
		s.dialogs.ShowReminderSettings(s.Settings(), s.dialogClosed)
		return cmd, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch cmd.Action {
	case command.TodaysLog:
		return cmd, s.openToday()
	case command.AllLogs:
		return cmd, s.openAll()
	case command.Yesterday:
		return cmd, s.openPrevious()
	case command.Position:
		return cmd, s.reposition(cmd.Arg)
	case command.Screen:
		return cmd, s.changeScreen(cmd.Arg)
	case command.Nudge:
		return cmd, s.move(cmd.Direction, cmd.Pixels)
	default:
		return cmd, s.journal.Append(cmd.Text)
	}
}

func (s *Session) openToday() error {
	if !s.journal.Exists() {
		return fmt.Errorf("nothing logged today: %w", journal.ErrNoLog)
	}
	return s.viewer.Open(s.journal.Path())
}

func (s *Session) openAll() error {
	if err := os.MkdirAll(s.journal.Dir(), 0o755); err != nil {
		return fmt.Errorf("creating log directory %s: %w", s.journal.Dir(), err)
	}
	return s.viewer.Open(s.journal.Dir())
}

func (s *Session) openPrevious() error {
	path, err := journal.Previous(s.journal.Dir(), s.now())
	if err != nil {
		return err
	}
	return s.viewer.Open(path)
}

func (s *Session) reposition(name string) error {
	if !s.positioner.ApplyNamedPosition(name) {
		return nil
	}
	s.settings.Position = s.positioner.Corner().String()
	return s.save()
}

func (s *Session) changeScreen(arg string) error {
	index, err := strconv.Atoi(arg)
	if err != nil || !s.positioner.SelectMonitor(index) {
		return nil
	}
	s.settings.Screen = index
	return s.save()
}

// move applies a nudge and stores the new offsets.
func (s *Session) move(dir models.Direction, pixels int) error {
	var deltaTop, deltaLeft int
	switch dir {
	case models.Up:
		deltaTop = -pixels
	case models.Down:
		deltaTop = pixels
	case models.Left:
		deltaLeft = -pixels
	case models.Right:
		deltaLeft = pixels
	default:
		panic(fmt.Sprintf("session: move called with %s direction", dir))
	}

	loc := s.positioner.Nudge(deltaTop, deltaLeft)
	s.settings.PositionTop = loc.Y
	s.settings.PositionLeft = loc.X
	return s.save()
}

// dialogClosed stores what a dialog changed and refreshes the reminder.
func (s *Session) dialogClosed(updated *models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if updated != nil {
		s.settings.ReminderEnabled = updated.ReminderEnabled
		s.settings.ReminderIntervalMS = updated.ReminderIntervalMS
		s.settings.ReminderText = updated.ReminderText
		s.settings.LogStartStop = updated.LogStartStop
		s.settings.DisplayPreviousLog = updated.DisplayPreviousLog
		if err := s.save(); err != nil {
			s.logger.Warn("saving settings failed", "error", err)
		}
	}
	s.refreshReminder()
}

// ApplyExternalSettings picks up reminder changes made to the settings file
// while running.
func (s *Session) ApplyExternalSettings(updated *models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.ReminderEnabled = updated.ReminderEnabled
	s.settings.ReminderIntervalMS = updated.ReminderIntervalMS
	s.settings.ReminderText = updated.ReminderText
	s.refreshReminder()
}

// refreshReminder must be called with mu held.
func (s *Session) refreshReminder() {
	s.reminder.Update(reminderInterval(s.settings), s.settings.ReminderEnabled)
}

func (s *Session) remind() {
	s.mu.Lock()
	text := s.settings.ReminderText
	s.mu.Unlock()
	s.notifier.Notify(ReminderTitle, text)
}

// save must be called with mu held.
func (s *Session) save() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.SaveSettings(s.settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}

// Close writes the close marker, stops the reminder and saves settings.
// Only the first call has any effect.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		var errs []error
		if s.lifecycle && s.settings.LogStartStop {
			if err := s.journal.Append(journal.CloseMarker); err != nil {
				errs = append(errs, err)
			}
		}
		s.reminder.Stop()
		if err := s.save(); err != nil {
			errs = append(errs, err)
		}
		s.closeErr = errors.Join(errs...)
	})
	return s.closeErr
}
