package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"travel-planner/internal/models"
	"travel-planner/internal/planner"
	"travel-planner/internal/recommend"
	"travel-planner/internal/storage"

	"github.com/spf13/cobra"
)

// runMenu is the root command: the interactive terminal menu.
func runMenu(cmd *cobra.Command, _ []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "🌍 Welcome to Travel Planner 🌍")

	for {
		fmt.Fprintln(out, "\n1. Login\n2. Register\n3. Forgot Password\n4. Exit")
		choice, err := readLine(in, out, "Enter choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = loginFlow(cmd, in, out, db)
		case "2":
			err = registerFlow(cmd, in, out, db)
		case "3":
			err = forgotFlow(cmd, in, out, db)
		case "4":
			fmt.Fprintln(out, "Goodbye! ✈️")
			return nil
		default:
			fmt.Fprintln(out, "❌ Invalid choice")
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func loginFlow(cmd *cobra.Command, in *bufio.Reader, out io.Writer, db *storage.DB) error {
	username, err := readLine(in, out, "Username: ")
	if err != nil {
		return err
	}
	password, err := readPassword(in, cmd.InOrStdin(), out, "Password: ")
	if err != nil {
		return err
	}

	user, ok, err := planner.Authenticate(db, username, password)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "❌ Invalid credentials")
		return nil
	}

	return sessionLoop(cmd, in, out, planner.New(db, user.Username))
}

func registerFlow(cmd *cobra.Command, in *bufio.Reader, out io.Writer, db *storage.DB) error {
	username, err := readLine(in, out, "Choose username: ")
	if err != nil {
		return err
	}
	password, err := readPassword(in, cmd.InOrStdin(), out, "Choose password: ")
	if err != nil {
		return err
	}
	answer, err := readLine(in, out, "Security Answer (Favourite place?): ")
	if err != nil {
		return err
	}

	if err := planner.Register(db, username, password, answer); err != nil {
		return err
	}
	fmt.Fprintln(out, okStyle.Render("✅ Registered successfully!"))
	return nil
}

func forgotFlow(cmd *cobra.Command, in *bufio.Reader, out io.Writer, db *storage.DB) error {
	username, err := readLine(in, out, "Username: ")
	if err != nil {
		return err
	}
	answer, err := readLine(in, out, "Favourite place? ")
	if err != nil {
		return err
	}
	newPassword, err := readPassword(in, cmd.InOrStdin(), out, "New password: ")
	if err != nil {
		return err
	}

	ok, err := planner.ResetPassword(db, username, answer, newPassword)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintln(out, okStyle.Render("✅ Password updated. Log in with your new password."))
	} else {
		fmt.Fprintln(out, "❌ Invalid answer")
	}
	return nil
}

// sessionLoop runs the authenticated menu until logout. The menu entries
// come from the shared command list.
func sessionLoop(cmd *cobra.Command, in *bufio.Reader, out io.Writer, p *planner.Planner) error {
	for {
		fmt.Fprintln(out, "\n🌐 Travel Menu")
		for i, c := range planner.Commands {
			fmt.Fprintf(out, "%d. %s\n", i+1, c)
		}

		choice, err := readLine(in, out, "Enter choice: ")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(out, "❌ Invalid choice")
			continue
		}
		command, ok := planner.ParseCommand(n)
		if !ok {
			fmt.Fprintln(out, "❌ Invalid choice")
			continue
		}

		switch command {
		case planner.CommandBookTrip:
			err = bookFlow(in, out, p)
		case planner.CommandRecommend, planner.CommandBudgetPlanner:
			var budget int64
			if budget, err = readInt(in, out, "Enter budget (INR): "); err == nil {
				printRecommendations(out, p.Recommend(budget))
			}
		case planner.CommandExport:
			err = exportFlow(in, out, p)
		case planner.CommandStats:
			err = printStats(out, p)
		case planner.CommandCalendar:
			err = printCalendar(out, p)
		case planner.CommandLogout:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func bookFlow(in *bufio.Reader, out io.Writer, p *planner.Planner) error {
	var req planner.BookingRequest
	var err error

	if req.Destination, err = readLine(in, out, "Destination: "); err != nil {
		return err
	}
	if req.Mode, err = readLine(in, out, "Mode (Bus/Train/Flight): "); err != nil {
		return err
	}
	if req.Days, err = readInt(in, out, "Number of days: "); err != nil {
		return err
	}
	if req.CostPerDay, err = readInt(in, out, "Cost per day (INR): "); err != nil {
		return err
	}
	if req.Date, err = readLine(in, out, "Start Date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if req.Category, err = readLine(in, out, "Category (Business/Vacation/Family/Solo): "); err != nil {
		return err
	}
	if req.TotalBudget, err = readInt(in, out, "Your total budget (INR): "); err != nil {
		return err
	}

	result, err := p.BookTrip(req)
	if err != nil {
		return err
	}

	printBookingResult(out, result)
	return nil
}

func printBookingResult(out io.Writer, result *planner.BookingResult) {
	if result.Denied {
		fmt.Fprintln(out, denyStyle.Render(fmt.Sprintf(
			"❌ Trip cost (%s) exceeds your total budget (%s). Booking Denied.",
			planner.FormatRupees(result.TripCost), planner.FormatRupees(result.TotalBudget))))
		return
	}

	fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("✅ Trip booked: %s for %d days via %s (%s)",
		result.Destination, result.Days, result.Mode, planner.FormatRupees(result.TripCost))))
	fmt.Fprintf(out, "💰 Total spent so far: %s\n", planner.FormatRupees(result.TotalSpent))
	fmt.Fprintf(out, "💵 Remaining budget: %s\n", planner.FormatRupees(result.Remaining))
}

func exportFlow(in *bufio.Reader, out io.Writer, p *planner.Planner) error {
	filename, err := readLine(in, out, "Filename [my_trips.txt]: ")
	if err != nil {
		return err
	}
	if filename == "" {
		filename = "my_trips.txt"
	}

	result, err := p.ExportItinerary(filename)
	if err != nil {
		return err
	}

	printExportResult(out, result)
	return nil
}

func printExportResult(out io.Writer, result *planner.ExportResult) {
	if result.Count == 0 {
		fmt.Fprintln(out, "No trips to export.")
		return
	}
	fmt.Fprintln(out, okStyle.Render(fmt.Sprintf("✅ %d trips exported to %s", result.Count, result.Filename)))
}

func printRecommendations(out io.Writer, options []recommend.Destination) {
	if len(options) == 0 {
		fmt.Fprintln(out, "No destinations found in this budget.")
		return
	}

	fmt.Fprintln(out, titleStyle.Render("🎯 Recommended for You:"))
	for i, d := range options {
		fmt.Fprintf(out, "%d. %s - %s (%s)\n", i+1, d.Name, planner.FormatRupees(d.Cost), d.Description)
	}
}

func printStats(out io.Writer, p *planner.Planner) error {
	stats, err := p.TripStatistics()
	if err != nil {
		return err
	}
	if stats.Count == 0 {
		fmt.Fprintln(out, "No trips yet.")
		return nil
	}

	fmt.Fprintln(out, RenderTitle("📊 Travel Stats"))
	fmt.Fprint(out, RenderTable(Table{
		Headers: []string{"Trips Planned", "Total Spent", "Most Visited"},
		Rows: [][]string{{
			strconv.Itoa(stats.Count),
			planner.FormatRupees(stats.TotalSpent),
			stats.MostVisited,
		}},
	}))
	return nil
}

func printCalendar(out io.Writer, p *planner.Planner) error {
	trips, err := p.ViewCalendar()
	if err != nil {
		return err
	}
	if len(trips) == 0 {
		fmt.Fprintln(out, "No upcoming trips.")
		return nil
	}

	fmt.Fprintln(out, RenderTitle("🗓 Upcoming Trips"))
	fmt.Fprint(out, RenderTable(calendarTable(trips)))
	return nil
}

func calendarTable(trips []models.Trip) Table {
	t := Table{Headers: []string{"Date", "Destination", "Mode", "Cost"}}
	for _, trip := range trips {
		t.Rows = append(t.Rows, []string{
			trip.Date, trip.Destination, trip.Mode, planner.FormatRupees(trip.Cost),
		})
	}
	return t
}
