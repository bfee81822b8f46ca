package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trailhead/trailhead/internal/gateway"
	"github.com/trailhead/trailhead/internal/hike"
)

var (
	hikeFilterText   string
	hikeFilterTier   string
	hikeFilterMinLen float64
	hikeFilterMaxLen float64
	hikeFilterMinRat float64

	addHikeName     string
	addHikeLocation string
	addHikeTier     string
	addHikeLength   float64
	addHikeDesc     string
	addHikeImages   []string
)

var hikesCmd = &cobra.Command{
	Use:   "hikes",
	Short: "Browse, inspect, and add trails",
}

var hikesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trails, optionally filtered",
	RunE: run(func(ctx context.Context, app *App, _ []string) error {
		f := hike.Filter{
			Text:      hikeFilterText,
			MinLength: hikeFilterMinLen,
			MaxLength: hikeFilterMaxLen,
			MinRating: hikeFilterMinRat,
		}
		if hikeFilterTier != "" {
			tier, ok := hike.ParseTier(hikeFilterTier)
			if !ok {
				return fmt.Errorf("unknown difficulty %q", hikeFilterTier)
			}
			f.Tier = tier
		}
		trails, err := app.Hikes.List(ctx, f)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(trails)
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tDIFFICULTY\tMILES\tRATING")
		for _, t := range trails {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%.1f (%d)\n",
				t.ID, t.Name, t.Location, t.Difficulty, t.LengthMiles, t.AverageRating, t.TotalReviews)
		}
		return tw.Flush()
	}),
}

var hikesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one trail",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(ctx context.Context, app *App, args []string) error {
		t, err := app.Hikes.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if t == nil {
			fmt.Printf("Trail %s does not exist\n", args[0])
			return nil
		}
		if flagJSON {
			return printJSON(t)
		}
		fmt.Printf("%s (#%s)\n", t.Name, t.ID)
		fmt.Printf("  %s\n", t.Location)
		fmt.Printf("  %s, %.1f miles, rated %.1f by %d reviewers\n",
			t.Difficulty, t.LengthMiles, t.AverageRating, t.TotalReviews)
		fmt.Printf("\n%s\n", t.Description)
		for _, img := range t.ImageURLs {
			fmt.Printf("  image: %s\n", img)
		}
		return nil
	}),
}

var hikesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a trail with images",
	RunE: run(func(ctx context.Context, app *App, _ []string) error {
		tier, ok := hike.ParseTier(addHikeTier)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", addHikeTier)
		}
		input := hike.NewTrailInput{
			Name:        addHikeName,
			Location:    addHikeLocation,
			Difficulty:  tier,
			LengthMiles: addHikeLength,
			Description: addHikeDesc,
		}
		var closers []*os.File
		defer func() {
			for _, f := range closers {
				f.Close()
			}
		}()
		for _, path := range addHikeImages {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open image %s: %w", path, err)
			}
			closers = append(closers, f)
			input.Images = append(input.Images, gateway.ImageFile{Name: filepath.Base(path), Reader: f})
		}

		t, err := app.Hikes.Create(ctx, input)
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(t)
		}
		fmt.Printf("Created %s (#%s)\n", t.Name, t.ID)
		return nil
	}),
}

func init() {
	hikesListCmd.Flags().StringVarP(&hikeFilterText, "search", "s", "", "Match name or location")
	hikesListCmd.Flags().StringVar(&hikeFilterTier, "difficulty", "", "Easy, Moderate, Hard, or Expert")
	hikesListCmd.Flags().Float64Var(&hikeFilterMinLen, "min-length", 0, "Minimum length in miles")
	hikesListCmd.Flags().Float64Var(&hikeFilterMaxLen, "max-length", 0, "Maximum length in miles (0 = unbounded)")
	hikesListCmd.Flags().Float64Var(&hikeFilterMinRat, "min-rating", 0, "Minimum average rating")

	hikesAddCmd.Flags().StringVar(&addHikeName, "name", "", "Trail name")
	hikesAddCmd.Flags().StringVar(&addHikeLocation, "location", "", "Trail location")
	hikesAddCmd.Flags().StringVar(&addHikeTier, "difficulty", "Moderate", "Easy, Moderate, Hard, or Expert")
	hikesAddCmd.Flags().Float64Var(&addHikeLength, "length", 0, "Length in miles")
	hikesAddCmd.Flags().StringVar(&addHikeDesc, "description", "", "Trail description")
	hikesAddCmd.Flags().StringSliceVar(&addHikeImages, "image", nil, "Image file (repeatable)")

	hikesCmd.AddCommand(hikesListCmd)
	hikesCmd.AddCommand(hikesShowCmd)
	hikesCmd.AddCommand(hikesAddCmd)
}
