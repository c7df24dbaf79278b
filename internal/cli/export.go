package cli

import (
	"path/filepath"

	"travel-planner/internal/config"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your itinerary as tab-separated values",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "my_trips.txt", "Output filename")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := login(cmd, db)
	if err != nil {
		return err
	}

	filename := flagOutput
	if !filepath.IsAbs(filename) {
		if cfg, err := config.Load(); err == nil && cfg.Export.Dir != "" {
			filename = filepath.Join(cfg.Export.Dir, filename)
		}
	}

	result, err := p.ExportItinerary(filename)
	if err != nil {
		return err
	}

	printExportResult(cmd.OutOrStdout(), result)
	return nil
}
