package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/olivier-w/morphbutton/internal/button"
	"github.com/olivier-w/morphbutton/internal/config"
	"github.com/olivier-w/morphbutton/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	if len(args) > 0 && args[0] == "export" {
		return runExport(cfg, args[1:], os.Stdout)
	}
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q (usage: morphbutton [export <file.png> [width height]])", args[0])
	}

	model, err := ui.New(cfg)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// setupLogging sends button logs to the configured file. The terminal is
// owned by the UI, so without a file nothing is logged.
func setupLogging(cfg config.Config) (func() error, error) {
	if cfg.LogFile == "" {
		return func() error { return nil }, nil
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(cfg.LogFile, "morphbutton")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	button.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f.Close, nil
}
