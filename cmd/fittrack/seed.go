package main

import (
	"context"
	"fmt"
	"io"

	"fittrack-backend-go/internal/seed"
	"fittrack-backend-go/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedConfirm bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Wipe every table and load the built-in catalog",
	Long: `Delete all data (users, logs, catalog) and load the built-in program:
17 exercises, 4 workouts, 9 medications and supplements, 10 meals, the weekly
schedule template and two starting body metrics.

This is destructive and requires --yes. Prints the new user's id and a
sign-in link.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !seedConfirm {
			return fmt.Errorf("seed deletes all data; rerun with --yes")
		}
		tracker, repo, err := openTracker(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer repo.Close()
		return runSeed(cmd.Context(), cmd.OutOrStdout(), tracker, tokenService())
	},
}

func runSeed(ctx context.Context, w io.Writer, tracker *services.Tracker, tokens services.TokenService) error {
	userID, err := seed.Run(ctx, tracker.Repo, tracker.Clock())
	if err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(w, "seeded user %s (id %d)\n", seed.UserName, userID)
	return printSignIn(w, tokens, userID)
}

func init() {
	seedCmd.Flags().BoolVar(&seedConfirm, "yes", false, "confirm that all data will be deleted")
	rootCmd.AddCommand(seedCmd)
}
