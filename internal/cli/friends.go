package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trailhead/trailhead/internal/social"
)

var activityLimit int

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Manage friends and follow their activity",
}

var friendsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your friends",
	RunE: run(func(ctx context.Context, app *App, _ []string) error {
		friends, err := app.Social.Friends(ctx)
		if err != nil {
			return err
		}
		return printFriends(friends)
	}),
}

var friendsAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Add a friend by username",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, app *App, args []string) error {
		friends, err := app.Social.Add(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Added %s\n", args[0])
		return printFriends(friends)
	}),
}

var friendsRemoveCmd = &cobra.Command{
	Use:   "remove <user-id>",
	Short: "Remove a friend by user id",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, app *App, args []string) error {
		friends, err := app.Social.Remove(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Removed user %s\n", args[0])
		return printFriends(friends)
	}),
}

var friendsActivityCmd = &cobra.Command{
	Use:   "activity <user-id>",
	Short: "Show a friend's recent reviews",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, app *App, args []string) error {
		acts, err := app.Social.Activity(ctx, args[0], activityLimit)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(acts)
		}
		for _, a := range acts {
			fmt.Printf("%s  rated %s %.1f\n", a.CreatedAt, a.TrailName, a.Rating)
			if a.Comment != "" {
				fmt.Printf("  %s\n", a.Comment)
			}
		}
		return nil
	}),
}

func printFriends(friends []social.Friend) error {
	if flagJSON {
		return printJSON(friends)
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tSINCE")
	for _, f := range friends {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.ID, f.Username, f.Email, f.Since)
	}
	return tw.Flush()
}

func init() {
	friendsActivityCmd.Flags().IntVar(&activityLimit, "limit", social.DefaultActivityLimit, "Maximum activity entries")

	friendsCmd.AddCommand(friendsListCmd)
	friendsCmd.AddCommand(friendsAddCmd)
	friendsCmd.AddCommand(friendsRemoveCmd)
	friendsCmd.AddCommand(friendsActivityCmd)
}
