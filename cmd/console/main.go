package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"inventory-service/config"
	"inventory-service/internal/item/delivery/console"
	itemRepo "inventory-service/internal/item/repository/sqlite"
	itemUC "inventory-service/internal/item/usecase"
	"inventory-service/pkg/log"
	"inventory-service/pkg/sqlite"
)

var (
	configPath string
	dbPath     string
	language   string
)

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive inventory menu",
	Long: `Runs the numbered inventory menu on stdin/stdout:

  1. add an item
  2. list items
  3. delete an item
  4. update an item
  0. exit

The same database and config.yaml as the HTTP API are used.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config.yaml (default: search ./config, ., /etc/app/)")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file (overrides database.path)")
	rootCmd.Flags().StringVar(&language, "lang", "", "message language: en or ru (overrides console.language)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.Database.Path = dbPath
	}
	if cmd.Flags().Changed("lang") {
		cfg.Console.Language = language
	}
	if !console.IsSupportedLanguage(cfg.Console.Language) {
		return fmt.Errorf("unsupported language %q", cfg.Console.Language)
	}

	// Logs go to stderr, the menu owns stdout.
	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	// Reads block on stdin, so Ctrl-C keeps its default behaviour.
	ctx := context.Background()

	db, err := sqlite.Open(sqlite.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	repo := itemRepo.New(db, logger)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	uc := itemUC.New(repo, logger, itemUC.Config{
		DefaultPageSize: cfg.Pagination.DefaultSize,
		MaxPageSize:     cfg.Pagination.MaxSize,
	})

	c := console.New(logger, uc, console.Config{
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Language: cfg.Console.Language,
	})
	return c.Run(ctx)
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}
