// Package cli implements the trailhead command-line client. Every command
// builds the app, runs one backend operation through the domain services,
// and prints the result; no state lives between invocations except the
// session file.
package cli

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	flagAPIURL  string
	flagMock    bool
	flagVerbose bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "trailhead",
	Short: "Discover, review, and share hiking trails",
	Long: `Trailhead is a client for the trail discovery service.

Browse and filter trails, read and write reviews, upvote the helpful
ones, and follow what your friends have been hiking. Run with --mock to
work against a built-in offline dataset instead of a live backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api", "", "Backend base URL (overrides TRAILHEAD_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&flagMock, "mock", false, "Use the built-in offline backend")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(hikesCmd)
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(friendsCmd)
}

// run wraps a command body with app construction, teardown, and a
// signal-cancelled context.
func run(body func(ctx context.Context, app *App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return body(ctx, app, args)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
