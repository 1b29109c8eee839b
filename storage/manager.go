package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/making3/Comments/models"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	keyScreen             = "screen"
	keyPosition           = "position"
	keyPositionTop        = "position_top"
	keyPositionLeft       = "position_left"
	keyReminderEnabled    = "reminder_enabled"
	keyReminderIntervalMS = "reminder_interval_ms"
	keyReminderText       = "reminder_text"
	keyLogLocation        = "log_location"
	keyLogStartStop       = "log_start_stop"
	keyDisplayPreviousLog = "display_previous_log"
)

// Manager persists settings as a flat JSON key/value file.
type Manager struct {
	mu      sync.Mutex
	path    string
	v       *viper.Viper
	watcher *fsnotify.Watcher
}

// DefaultPath returns ~/.comments/settings.json.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".comments", "settings.json"), nil
}

// NewManager creates a settings store backed by the file at path. An
// empty path selects DefaultPath.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	d := models.DefaultSettings()
	v.SetDefault(keyScreen, d.Screen)
	v.SetDefault(keyPosition, d.Position)
	v.SetDefault(keyPositionTop, d.PositionTop)
	v.SetDefault(keyPositionLeft, d.PositionLeft)
	v.SetDefault(keyReminderEnabled, d.ReminderEnabled)
	v.SetDefault(keyReminderIntervalMS, d.ReminderIntervalMS)
	v.SetDefault(keyReminderText, d.ReminderText)
	v.SetDefault(keyLogLocation, d.LogLocation)
	v.SetDefault(keyLogStartStop, d.LogStartStop)
	v.SetDefault(keyDisplayPreviousLog, d.DisplayPreviousLog)

	return &Manager{path: path, v: v}, nil
}

// Path returns the settings file location.
func (m *Manager) Path() string { return m.path }

// LoadSettings reads the settings file. A missing file yields defaults.
func (m *Manager) LoadSettings() (*models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.path); err != nil {
		if os.IsNotExist(err) {
			return m.current(), nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", m.path, err)
	}
	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", m.path, err)
	}
	return m.current(), nil
}

// SaveSettings writes settings to disk, creating the directory if needed.
// The file stays the only source of values, so later edits made outside
// the app are picked up on reload.
func (m *Manager) SaveSettings(s *models.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(m.path), 0o700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	out := viper.New()
	out.SetConfigType("json")
	for key, value := range values(s) {
		out.Set(key, value)
	}
	if err := out.WriteConfigAs(m.path); err != nil {
		return fmt.Errorf("writing settings %s: %w", m.path, err)
	}
	if err := m.v.ReadInConfig(); err != nil {
		return fmt.Errorf("parsing settings %s: %w", m.path, err)
	}
	return nil
}

// Watch calls onChange with freshly read settings whenever the settings
// file is written or replaced. A write that leaves the file unreadable,
// such as a truncation before the new content lands, is skipped.
func (m *Manager) Watch(onChange func(*models.Settings)) error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watching settings: %w", err)
	}
	// Editors often save by replacing the file, so watch the directory.
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching settings directory %s: %w", dir, err)
	}

	m.mu.Lock()
	if m.watcher != nil {
		m.watcher.Close()
	}
	m.watcher = watcher
	m.mu.Unlock()

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(m.path) ||
					!(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				if s, ok := m.reload(); ok {
					onChange(s)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

// Close stops watching the settings file.
func (m *Manager) Close() error {
	m.mu.Lock()
	watcher := m.watcher
	m.watcher = nil
	m.mu.Unlock()

	if watcher == nil {
		return nil
	}
	return watcher.Close()
}

func (m *Manager) reload() (*models.Settings, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.v.ReadInConfig(); err != nil {
		return nil, false
	}
	return m.current(), true
}

func values(s *models.Settings) map[string]any {
	return map[string]any{
		keyScreen:             s.Screen,
		keyPosition:           s.Position,
		keyPositionTop:        s.PositionTop,
		keyPositionLeft:       s.PositionLeft,
		keyReminderEnabled:    s.ReminderEnabled,
		keyReminderIntervalMS: s.ReminderIntervalMS,
		keyReminderText:       s.ReminderText,
		keyLogLocation:        s.LogLocation,
		keyLogStartStop:       s.LogStartStop,
		keyDisplayPreviousLog: s.DisplayPreviousLog,
	}
}

// current must be called with mu held.
func (m *Manager) current() *models.Settings {
	return &models.Settings{
		Screen:             m.v.GetInt(keyScreen),
		Position:           m.v.GetString(keyPosition),
		PositionTop:        m.v.GetInt(keyPositionTop),
		PositionLeft:       m.v.GetInt(keyPositionLeft),
		ReminderEnabled:    m.v.GetBool(keyReminderEnabled),
		ReminderIntervalMS: m.v.GetInt(keyReminderIntervalMS),
		ReminderText:       m.v.GetString(keyReminderText),
		LogLocation:        m.v.GetString(keyLogLocation),
		LogStartStop:       m.v.GetBool(keyLogStartStop),
		DisplayPreviousLog: m.v.GetBool(keyDisplayPreviousLog),
	}
}

// LogDir returns the log directory from s with a leading ~ expanded.
func LogDir(s *models.Settings) (string, error) {
	dir, err := homedir.Expand(s.LogLocation)
	if err != nil {
		return "", fmt.Errorf("expanding log location %q: %w", s.LogLocation, err)
	}
	return filepath.Clean(dir), nil
}
