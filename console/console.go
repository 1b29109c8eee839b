// Package console drives a note session from a terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/making3/Comments/command"
	"github.com/making3/Comments/models"
	"github.com/making3/Comments/session"
)

// Config holds what a console session needs.
type Config struct {
	Settings  *models.Settings
	Store     session.SettingsStore
	LogDir    string
	Viewer    session.Viewer
	Lifecycle bool
	Logger    *slog.Logger
}

// ConsoleApp reads note input line by line
type ConsoleApp struct {
	reader  *bufio.Reader
	out     *syncWriter
	session *session.Session
	done    bool
}

// NewConsoleApp creates a console session reading in and writing out
func NewConsoleApp(in io.Reader, out io.Writer, cfg Config) *ConsoleApp {
	app := &ConsoleApp{
		reader: bufio.NewReader(in),
		out:    &syncWriter{w: out},
	}
	app.session = session.New(session.Options{
		Settings:  cfg.Settings,
		Store:     cfg.Store,
		Window:    &virtualWindow{out: app.out},
		Viewer:    cfg.Viewer,
		Dialogs:   &consoleDialogs{app: app},
		Notifier:  &consoleNotifier{out: app.out},
		Quit:      func() { app.done = true },
		LogDir:    cfg.LogDir,
		Lifecycle: cfg.Lifecycle,
		Logger:    cfg.Logger,
	})
	return app
}

// Session returns the session driven by this console
func (app *ConsoleApp) Session() *session.Session { return app.session }

// Run reads lines until /exit or end of input
func (app *ConsoleApp) Run() error {
	if err := app.session.Start(); err != nil {
		app.printError(err)
	}

	fmt.Fprintln(app.out, "Comments console. Type /help for commands.")
	for !app.done {
		fmt.Fprint(app.out, "> ")
		line, err := app.reader.ReadString('\n')
		if line != "" {
			if _, serr := app.session.Submit(line); serr != nil {
				app.printError(serr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	return app.session.Close()
}

func (app *ConsoleApp) printError(err error) {
	_, _ = color.New(color.FgRed).Fprintf(app.out, "Error: %v\n", err)
}

// prompt asks a question and returns the trimmed answer
func (app *ConsoleApp) prompt(question string) string {
	fmt.Fprint(app.out, question)
	input, _ := app.reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// promptBool keeps current unless the answer is yes or no
func (app *ConsoleApp) promptBool(question string, current bool) bool {
	switch strings.ToLower(app.prompt(fmt.Sprintf("%s (y/n, press Enter to keep %s): ", question, yesNo(current)))) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return current
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// consoleDialogs asks for settings on the terminal
type consoleDialogs struct {
	app *ConsoleApp
}

func (d *consoleDialogs) ShowHelp(current *models.Settings, done func(*models.Settings)) {
	PrintReference(d.app.out)
	current.DisplayPreviousLog = d.app.promptBool("Display previous day's log?", current.DisplayPreviousLog)
	current.LogStartStop = d.app.promptBool("Log start and close of application?", current.LogStartStop)
	done(current)
}

func (d *consoleDialogs) ShowReminderSettings(current *models.Settings, done func(*models.Settings)) {
	fmt.Fprintln(d.app.out, "\n=== Reminder ===")
	current.ReminderEnabled = d.app.promptBool("Enable reminder?", current.ReminderEnabled)

	input := d.app.prompt(fmt.Sprintf("Interval in minutes (press Enter to keep %d): ", current.ReminderIntervalMS/60000))
	if minutes, err := strconv.Atoi(input); err == nil && minutes > 0 {
		current.ReminderIntervalMS = minutes * 60000
	}

	if text := d.app.prompt("Reminder text (press Enter to keep current): "); text != "" {
		current.ReminderText = text
	}
	done(current)
}

// consoleNotifier prints reminders between prompts
type consoleNotifier struct {
	out io.Writer
}

func (n *consoleNotifier) Notify(title, message string) {
	_, _ = color.New(color.FgHiYellow, color.Bold).Fprintf(n.out, "\n%s %s\n", title, message)
}

// virtualWindow stands in for the note window
type virtualWindow struct {
	out io.Writer
}

func (w *virtualWindow) Size() models.Size {
	return models.Size{Width: 300, Height: 40}
}

func (w *virtualWindow) Move(to models.Point) {
	_, _ = color.New(color.Faint).Fprintf(w.out, "note at (%d, %d)\n", to.X, to.Y)
}

// PrintReference prints the command vocabulary as a table
func PrintReference(out io.Writer) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("COMMAND"), bold.Sprint("DESCRIPTION"))
	for _, u := range command.Reference() {
		tbl.AddRow(u.Commands, u.Description)
	}
	fmt.Fprintln(out, tbl)
}

// syncWriter serialises writes from the reminder goroutine and the prompt
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
