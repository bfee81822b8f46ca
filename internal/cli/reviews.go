package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trailhead/trailhead/internal/review"
)

var (
	reviewsByUpvotes bool
	reviewRating     float64
	reviewComment    string
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Read, write, and upvote trail reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list <hike-id>",
	Short: "List a trail's reviews",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, app *App, args []string) error {
		state := review.NewListState()
		agg, err := app.Reviews.Fetch(ctx, state, args[0], app.currentUserID())
		if err != nil {
			return err
		}
		reviews := state.Reviews()
		if reviewsByUpvotes {
			reviews = review.SortByUpvotes(reviews)
		}
		if flagJSON {
			return printJSON(struct {
				AverageRating float64         `json:"average_rating"`
				TotalReviews  int             `json:"total_reviews"`
				Reviews       []review.Review `json:"reviews"`
			}{agg.AverageRating, agg.TotalReviews, reviews})
		}
		fmt.Printf("%d reviews, %.1f average\n\n", agg.TotalReviews, agg.AverageRating)
		for _, r := range reviews {
			marker := " "
			if r.UpvotedBy(app.currentUserID()) {
				marker = "*"
			}
			fmt.Printf("#%s %s rated %.1f  (%d upvotes%s)\n", r.ID, r.AuthorName, r.Rating, r.Upvotes, marker)
			fmt.Printf("   %s\n", r.Comment)
		}
		return nil
	}),
}

var reviewsAddCmd = &cobra.Command{
	Use:   "add <hike-id>",
	Short: "Post a review",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, app *App, args []string) error {
		state := review.NewListState()
		if _, err := app.Reviews.Fetch(ctx, state, args[0], app.currentUserID()); err != nil {
			return err
		}
		created, err := app.Reviews.Submit(ctx, state, args[0], reviewRating, reviewComment, app.currentUserID())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(created)
		}
		fmt.Printf("Posted review #%s\n", created.ID)
		return nil
	}),
}

var reviewsUpvoteCmd = &cobra.Command{
	Use:   "upvote <hike-id> <review-id>",
	Short: "Toggle your upvote on a review",
	Args:  cobra.ExactArgs(2),
	RunE: run(func(ctx context.Context, app *App, args []string) error {
		state := review.NewListState()
		if _, err := app.Reviews.Fetch(ctx, state, args[0], app.currentUserID()); err != nil {
			return err
		}
		if err := app.Reviews.Upvote(ctx, state, args[1], app.currentUserID()); err != nil {
			return err
		}
		for _, r := range state.Reviews() {
			if r.ID != args[1] {
				continue
			}
			direction := "removed from"
			if r.UpvotedBy(app.currentUserID()) {
				direction = "added to"
			}
			fmt.Printf("Upvote %s review #%s (now %d)\n", direction, r.ID, r.Upvotes)
			return nil
		}
		return fmt.Errorf("review %s not found on hike %s", args[1], args[0])
	}),
}

func init() {
	reviewsListCmd.Flags().BoolVar(&reviewsByUpvotes, "by-upvotes", false, "Sort by upvote count instead of fetch order")
	reviewsAddCmd.Flags().Float64Var(&reviewRating, "rating", 0, "Rating in half-star increments, 0.5 to 5")
	reviewsAddCmd.Flags().StringVar(&reviewComment, "comment", "", "Review text")

	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsAddCmd)
	reviewsCmd.AddCommand(reviewsUpvoteCmd)
}
