package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/making3/Comments/console"
	"github.com/making3/Comments/journal"
	"github.com/making3/Comments/launcher"
	"github.com/spf13/cobra"
)

func newConsoleCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Use the note from the terminal instead of a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, settings, logDir, err := loadSettings(opts)
			if err != nil {
				return err
			}
			app := console.NewConsoleApp(os.Stdin, os.Stdout, console.Config{
				Settings:  settings,
				Store:     store,
				LogDir:    logDir,
				Viewer:    launcher.NewManager(),
				Lifecycle: !opts.debug,
				Logger:    slog.Default(),
			})
			return app.Run()
		},
	}
}

func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Append a line to today's log",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, logDir, err := loadSettings(opts)
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return nil
			}
			return journal.NewWriter(logDir, time.Now()).Append(text)
		},
	}
}

func newTodayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, logDir, err := loadSettings(opts)
			if err != nil {
				return err
			}
			w := journal.NewWriter(logDir, time.Now())
			if !w.Exists() {
				return fmt.Errorf("nothing logged today: %w", journal.ErrNoLog)
			}
			return console.PrintLog(cmd.OutOrStdout(), w.Path())
		},
	}
}

func newYesterdayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "yesterday",
		Aliases: []string{"yolo"},
		Short:   "Print the most recent log before today",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, logDir, err := loadSettings(opts)
			if err != nil {
				return err
			}
			path, err := journal.Previous(logDir, time.Now())
			if err != nil {
				return err
			}
			return console.PrintLog(cmd.OutOrStdout(), path)
		},
	}
}

func newLogsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "List the day logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, logDir, err := loadSettings(opts)
			if err != nil {
				return err
			}
			logs, err := journal.List(logDir)
			if err != nil {
				return err
			}
			console.PrintLogList(cmd.OutOrStdout(), logs)
			return nil
		},
	}
}

func newOpenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "open [today|yesterday|all]",
		Short:     "Open a log, or the log folder, in the default program",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"today", "yesterday", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, logDir, err := loadSettings(opts)
			if err != nil {
				return err
			}
			which := "today"
			if len(args) == 1 {
				which = args[0]
			}

			var path string
			switch which {
			case "today":
				w := journal.NewWriter(logDir, time.Now())
				if !w.Exists() {
					return fmt.Errorf("nothing logged today: %w", journal.ErrNoLog)
				}
				path = w.Path()
			case "yesterday":
				if path, err = journal.Previous(logDir, time.Now()); err != nil {
					return err
				}
			case "all":
				if err := os.MkdirAll(logDir, 0o755); err != nil {
					return fmt.Errorf("creating log directory %s: %w", logDir, err)
				}
				path = logDir
			default:
				return fmt.Errorf("unknown log %q, want today, yesterday or all", which)
			}
			return launcher.NewManager().Open(path)
		},
	}
}
