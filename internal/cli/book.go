package cli

import (
	"travel-planner/internal/planner"

	"github.com/spf13/cobra"
)

var bookReq planner.BookingRequest

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book a trip against a budget",
	RunE:  runBook,
}

func init() {
	bookCmd.Flags().StringVar(&bookReq.Destination, "destination", "", "Destination name")
	bookCmd.Flags().StringVar(&bookReq.Mode, "mode", "Bus", "Travel mode (Bus/Train/Flight)")
	bookCmd.Flags().Int64Var(&bookReq.Days, "days", 1, "Number of days")
	bookCmd.Flags().Int64Var(&bookReq.CostPerDay, "cost-per-day", 0, "Cost per day in INR")
	bookCmd.Flags().StringVar(&bookReq.Date, "date", "", "Start date (YYYY-MM-DD)")
	bookCmd.Flags().StringVar(&bookReq.Category, "category", "Vacation", "Trip category (Business/Vacation/Family/Solo)")
	bookCmd.Flags().Int64Var(&bookReq.TotalBudget, "budget", 0, "Total budget in INR")
	_ = bookCmd.MarkFlagRequired("destination")
	_ = bookCmd.MarkFlagRequired("date")
	rootCmd.AddCommand(bookCmd)
}

func runBook(cmd *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := login(cmd, db)
	if err != nil {
		return err
	}

	result, err := p.BookTrip(bookReq)
	if err != nil {
		return err
	}

	printBookingResult(cmd.OutOrStdout(), result)
	return nil
}
