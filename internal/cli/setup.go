package cli

import (
	"bufio"
	"fmt"

	"travel-planner/internal/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Welcome to Travel Planner!")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  1. Database file")
	fmt.Fprintf(out, "     Current: %s\n", cfg.Storage.Path)
	answer, err := readLine(in, out, "     > ")
	if err != nil {
		return err
	}
	if answer != "" {
		cfg.Storage.Path = answer
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  2. Web listen address")
	fmt.Fprintf(out, "     Current: %s\n", cfg.Server.ListenAddr)
	answer, err = readLine(in, out, "     > ")
	if err != nil {
		return err
	}
	if answer != "" {
		cfg.Server.ListenAddr = answer
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  3. Itinerary export directory (blank = current directory)")
	if cfg.Export.Dir != "" {
		fmt.Fprintf(out, "     Current: %s\n", cfg.Export.Dir)
	}
	answer, err = readLine(in, out, "     > ")
	if err != nil {
		return err
	}
	if answer != "" {
		cfg.Export.Dir = answer
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Saved to %s\n", config.ConfigPath())
	fmt.Fprintln(out, "  Run `travel setup` anytime to reconfigure.")
	fmt.Fprintln(out)

	return nil
}
