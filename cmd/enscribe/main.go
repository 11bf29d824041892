package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amethyst/enscribe/internal/app"
	"github.com/amethyst/enscribe/internal/backup"
	"github.com/amethyst/enscribe/internal/model"
	"github.com/amethyst/enscribe/internal/settings"
	"github.com/amethyst/enscribe/internal/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "enscribe: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	s, err := store.NewSQLiteStore(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	// Subcommands run headless and exit.
	if len(args) > 0 {
		return runCommand(args, cfg, s)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cell := settings.NewCell(s)
	// Prime the cell so the first subscriber sees the persisted
	// settings instead of the defaults.
	if _, err := cell.Get(context.Background()); err != nil {
		return err
	}

	m := app.New(s, cell, cfg.BackupDir, cfg.BackupFileName)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// runCommand handles the non-interactive export/import subcommands.
func runCommand(args []string, cfg *model.AppConfig, s store.Store) error {
	path := filepath.Join(cfg.BackupDir, cfg.BackupFileName)
	if len(args) > 1 {
		path = args[1]
	}

	switch args[0] {
	case "export":
		data, err := backup.Export(context.Background(), s)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create backup dir: %w", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Printf("Backup written to %s\n", path)
		return nil

	case "import":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		if err := backup.Import(context.Background(), s, data); err != nil {
			return err
		}
		fmt.Printf("Entries restored from %s\n", path)
		return nil

	default:
		return fmt.Errorf("unknown command %q (expected export or import)", args[0])
	}
}

// setupLogging sends slog output to a file next to the database, since
// stderr belongs to the terminal UI.
func setupLogging(cfg *model.AppConfig) (func(), error) {
	logPath := filepath.Join(filepath.Dir(cfg.DatabasePath), "enscribe.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	return func() { f.Close() }, nil
}
