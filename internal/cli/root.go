// Package cli implements the terminal front end: an interactive numbered
// menu plus non-interactive subcommands for every planner operation.
package cli

import (
	"fmt"
	"os"

	"travel-planner/internal/config"
	"travel-planner/internal/storage"

	"github.com/spf13/cobra"
)

var (
	flagDB       string
	flagUser     string
	flagPassword string
)

var rootCmd = &cobra.Command{
	Use:   "travel",
	Short: "Personal travel booking and budgeting",
	Long:  "Book trips against a budget, get destination recommendations, and view travel statistics.",
	RunE:  runMenu,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Path to database file (defaults to config)")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "Username for non-interactive commands")
	rootCmd.PersistentFlags().StringVarP(&flagPassword, "password", "p", "", "Password (prompted when omitted)")
}

// openDB resolves the database path from flag, DB_PATH env var, or config
// file, in that order, and opens it.
func openDB() (*storage.DB, error) {
	path := flagDB
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		path = config.DBPath(cfg)
	}

	db, err := storage.NewDB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
