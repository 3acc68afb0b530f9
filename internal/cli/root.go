// Package cli wires configuration, storage and front-ends into commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CalistaIo/ip/internal/config"
	"github.com/CalistaIo/ip/internal/repository"
	"github.com/CalistaIo/ip/internal/service"
)

var (
	configPath string
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "tasktracker",
		Short: "A line-oriented personal task tracker",
		Long: `tasktracker reads commands one line at a time and keeps an ordered task list.

Type "bye" to leave. Tasks are saved after every change.`,
		RunE:          runConsole,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an optional YAML config file")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(exportCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// openStore returns the configured store and a function releasing it.
func openStore(cfg config.Config) (service.Store, func() error, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		db, err := repository.NewDB(cfg.DatabaseURL, os.Stderr)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		return repository.NewTaskRepository(db), func() error { return repository.CloseDB(db) }, nil
	default:
		return repository.NewFileStore(cfg.TasksFile), func() error { return nil }, nil
	}
}

// loadTasks reads config and hydrates the task service.
func loadTasks(ctx context.Context) (config.Config, *service.TaskService, func() error, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("config: %w", err)
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return cfg, nil, nil, err
	}
	tasks, err := service.NewTaskService(ctx, store)
	if err != nil {
		closeStore()
		return cfg, nil, nil, err
	}
	return cfg, tasks, closeStore, nil
}

func printRecords(w io.Writer, records []string) error {
	for _, record := range records {
		if _, err := fmt.Fprintln(w, record); err != nil {
			return err
		}
	}
	return nil
}
