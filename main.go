package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/making3/Comments/launcher"
	"github.com/making3/Comments/models"
	"github.com/making3/Comments/monitor"
	"github.com/making3/Comments/storage"
	"github.com/making3/Comments/ui"
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every command
type rootOptions struct {
	settingsPath string
	debug        bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "comments",
		Short: "An always-on-top note that timestamps what you type into a daily log",
		Long: `comments shows a small borderless note pinned to a corner of the screen.
Every line typed into it is appended to a text file for the day.
Lines starting with / are commands; type /help in the note for the list.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.settingsPath, "settings", "", "settings file (default ~/.comments/settings.json)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "verbose logging; start and close are not written to the log")

	rootCmd.AddCommand(
		newConsoleCmd(opts),
		newAddCmd(opts),
		newTodayCmd(opts),
		newYesterdayCmd(opts),
		newLogsCmd(opts),
		newOpenCmd(opts),
	)
	return rootCmd
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadSettings opens the settings store and resolves the log directory
func loadSettings(opts *rootOptions) (*storage.Manager, *models.Settings, string, error) {
	store, err := storage.NewManager(opts.settingsPath)
	if err != nil {
		return nil, nil, "", err
	}
	settings, err := store.LoadSettings()
	if err != nil {
		return nil, nil, "", err
	}
	logDir, err := storage.LogDir(settings)
	if err != nil {
		return nil, nil, "", err
	}
	return store, settings, logDir, nil
}

// runGUI shows the note and blocks until it is closed
func runGUI(opts *rootOptions) error {
	store, settings, logDir, err := loadSettings(opts)
	if err != nil {
		return err
	}

	// Monitors are queried on the main thread before the UI loop owns it.
	screens, err := monitor.DetectOrFallback()
	if err != nil {
		slog.Warn("monitor detection failed, assuming a single screen", "error", err)
	}

	slog.Info("starting note", "log_dir", logDir, "screens", len(screens))
	a := app.NewWithID("io.github.making3.comments")
	note := ui.NewNoteWindow(a, ui.Config{
		Settings:  settings,
		Store:     store,
		Screens:   screens,
		LogDir:    logDir,
		Viewer:    launcher.NewManager(),
		Lifecycle: !opts.debug,
		Logger:    slog.Default(),
	})
	if err := store.Watch(note.Session().ApplyExternalSettings); err != nil {
		slog.Warn("settings file changes will not be picked up", "error", err)
	}
	defer store.Close()

	note.ShowAndRun()
	return nil
}
