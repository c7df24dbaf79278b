package cli

import (
	"bufio"
	"fmt"
	"strings"

	"travel-planner/internal/planner"
	"travel-planner/internal/storage"

	"github.com/spf13/cobra"
)

var flagAnswer string

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&flagAnswer, "answer", "", "Security answer (favourite place)")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if flagUser == "" {
		return fmt.Errorf("missing required flag: --user")
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	password := flagPassword
	if password == "" {
		var err error
		password, err = readPassword(in, cmd.InOrStdin(), out, "Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("password cannot be empty")
	}

	answer := flagAnswer
	if answer == "" {
		var err error
		answer, err = readLine(in, out, "Security Answer (Favourite place?): ")
		if err != nil {
			return fmt.Errorf("failed to read security answer: %w", err)
		}
	}
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("security answer cannot be empty")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := planner.Register(db, flagUser, password, answer); err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}

	fmt.Fprintf(out, "User %s registered\n", flagUser)
	return nil
}

// login authenticates using the --user/--password flags, prompting for the
// password when the flag is omitted. Shared by the non-interactive
// subcommands that operate on a user's trips.
func login(cmd *cobra.Command, db *storage.DB) (*planner.Planner, error) {
	if flagUser == "" {
		return nil, fmt.Errorf("missing required flag: --user")
	}

	password := flagPassword
	if password == "" {
		in := bufio.NewReader(cmd.InOrStdin())
		var err error
		password, err = readPassword(in, cmd.InOrStdin(), cmd.OutOrStdout(), "Password: ")
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
	}

	user, ok, err := planner.Authenticate(db, flagUser, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("invalid credentials")
	}

	return planner.New(db, user.Username), nil
}
