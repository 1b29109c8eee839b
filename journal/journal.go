// Package journal appends timestamped comments to one text file per day.
package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	timeLayout  = "15:04:05"
	fileSuffix  = ".txt"
	StartMarker = "*Application Start*"
	CloseMarker = "*Application Close*"
)

// ErrNoLog is returned when a requested log file does not exist.
var ErrNoLog = errors.New("no log found")

// FileName returns the log file name for the day of t.
func FileName(t time.Time) string {
	return t.Format(dateLayout) + fileSuffix
}

// Writer appends entries to the log file of the day it was created on.
// The file does not roll over at midnight.
type Writer struct {
	dir  string
	path string
	now  func() time.Time
}

// NewWriter creates a writer for the log of day inside dir.
func NewWriter(dir string, day time.Time) *Writer {
	return &Writer{
		dir:  dir,
		path: filepath.Join(dir, FileName(day)),
		now:  time.Now,
	}
}

// WithClock makes the writer stamp entries with now instead of the wall
// clock.
func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// Dir returns the log directory.
func (w *Writer) Dir() string { return w.dir }

// Path returns the file entries are appended to.
func (w *Writer) Path() string { return w.path }

// Exists reports whether the log file has been created yet.
func (w *Writer) Exists() bool {
	_, err := os.Stat(w.path)
	return err == nil
}

// Append writes "HH:mm:ss - text" followed by a blank line. The file is
// opened, synced and closed on every call.
func (w *Writer) Append(text string) (err error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating log directory %s: %w", w.dir, err)
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log %s: %w", w.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing log %s: %w", w.path, cerr)
		}
	}()

	if _, err := fmt.Fprintf(f, "%s - %s\n\n", w.now().Format(timeLayout), text); err != nil {
		return fmt.Errorf("writing log %s: %w", w.path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing log %s: %w", w.path, err)
	}
	return nil
}

// LogFile is a day log found in the log directory.
type LogFile struct {
	Date time.Time
	Path string
	Size int64
}

// List returns the day logs in dir, oldest first. A missing directory
// yields no logs.
func List(dir string) ([]LogFile, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading log directory %s: %w", dir, err)
	}

	var logs []LogFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileSuffix) {
			continue
		}
		date, err := time.ParseInLocation(dateLayout, strings.TrimSuffix(e.Name(), fileSuffix), time.Local)
		if err != nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("reading log %s: %w", e.Name(), err)
		}
		logs = append(logs, LogFile{Date: date, Path: filepath.Join(dir, e.Name()), Size: info.Size()})
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.Before(logs[j].Date) })
	return logs, nil
}

// Previous returns the most recent log dated before the day of t, so a
// Monday finds Friday's log. ErrNoLog is returned if there is none.
func Previous(dir string, t time.Time) (string, error) {
	logs, err := List(dir)
	if err != nil {
		return "", err
	}
	today := t.Format(dateLayout)
	for i := len(logs) - 1; i >= 0; i-- {
		if logs[i].Date.Format(dateLayout) < today {
			return logs[i].Path, nil
		}
	}
	return "", ErrNoLog
}
