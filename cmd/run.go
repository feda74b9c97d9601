package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/tenfold/internal/app"
	"github.com/abhisek/tenfold/internal/config"
	"github.com/abhisek/tenfold/internal/console"
	"github.com/abhisek/tenfold/internal/problemgen"
)

// runApp loads settings and launches the TUI, or the plain console drill
// when stdin or stdout is not a terminal.
func runApp(cmd *cobra.Command) error {
	settings, closeLog, err := prepare(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	gen := newGenerator(cmd)
	if !isTerminal() {
		return runConsole(cmd.Context(), settings, gen, true)
	}
	return app.Run(app.Options{
		Settings:  &settings,
		Generator: gen,
	})
}

// prepare sets up logging and resolves settings from the config file, the
// environment and flags.
func prepare(cmd *cobra.Command) (config.Settings, func(), error) {
	paths, err := config.LoadPaths()
	if err != nil {
		return config.Settings{}, nil, err
	}
	closeLog, err := setupLogging(paths.LogFile)
	if err != nil {
		return config.Settings{}, nil, err
	}

	settings, err := config.Load(resolveConfigPath(cmd, paths))
	if err != nil {
		closeLog()
		return config.Settings{}, nil, err
	}
	applyFlags(cmd, &settings)
	if err := settings.Validate(); err != nil {
		closeLog()
		return config.Settings{}, nil, fmt.Errorf("invalid settings: %w", err)
	}
	log.Printf("settings: %s", settings.Describe())
	return settings, closeLog, nil
}

// setupLogging sends the standard logger to path, or discards it when no
// path is set. The TUI owns the terminal, so logs never go to stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "tenfold")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

func newGenerator(cmd *cobra.Command) problemgen.Generator {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return problemgen.New(problemgen.NewSource(seed))
	}
	return problemgen.New(nil)
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// runConsole runs one text drill on stdin and stdout. Ctrl+C cancels it.
func runConsole(ctx context.Context, settings config.Settings, gen problemgen.Generator, quick bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	c := console.New(os.Stdin, os.Stdout,
		console.WithGenerator(gen),
		console.WithQuick(quick),
	)
	_, err := c.Run(ctx, settings)
	return err
}
