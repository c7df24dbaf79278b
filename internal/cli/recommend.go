package cli

import (
	"travel-planner/internal/recommend"

	"github.com/spf13/cobra"
)

var flagBudget int64

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List catalog destinations within a budget",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().Int64VarP(&flagBudget, "budget", "b", 0, "Budget in INR")
	_ = recommendCmd.MarkFlagRequired("budget")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	printRecommendations(cmd.OutOrStdout(), recommend.ForBudget(flagBudget))
	return nil
}
