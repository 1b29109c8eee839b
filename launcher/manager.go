package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Manager opens files and folders with the desktop's default program.
type Manager struct {
	// command builds the process used to open a path. Replaced in tests.
	command func(path string) *exec.Cmd
}

// NewManager creates a new launcher for the current platform
func NewManager() *Manager {
	return &Manager{command: openCommand}
}

// Open opens a file or folder in the default program for it.
func (m *Manager) Open(path string) error {
	path = m.cleanPath(path)

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	cmd := m.command(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", cmd.Path, err)
	}
	// Reap the child without blocking the caller.
	go func() { _ = cmd.Wait() }()
	return nil
}

// openCommand returns the platform opener for path
func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "windows":
		// The empty argument is the window title expected by start.
		return exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		return exec.Command("open", path)
	default: // Linux and BSDs
		return exec.Command("xdg-open", path)
	}
}

// cleanPath cleans and normalizes a file path
func (m *Manager) cleanPath(path string) string {
	// Remove surrounding quotes
	path = strings.Trim(path, `"'`)

	path = filepath.Clean(path)

	if !filepath.IsAbs(path) {
		if absPath, err := filepath.Abs(path); err == nil {
			path = absPath
		}
	}

	return path
}
