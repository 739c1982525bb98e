package main

import (
	"context"
	"fmt"
	"io"

	"fittrack-backend-go/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var summaryUser int64

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print today's macros, medication adherence and schedule position",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUserFlag(summaryUser); err != nil {
			return err
		}
		tracker, repo, err := openTracker(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer repo.Close()
		return runSummary(cmd.Context(), cmd.OutOrStdout(), tracker, summaryUser)
	},
}

func runSummary(ctx context.Context, w io.Writer, tracker *services.Tracker, userID int64) error {
	if err := tracker.RequireUser(ctx, userID); err != nil {
		return err
	}
	summary, err := tracker.Summary(ctx, userID)
	if err != nil {
		return err
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Fprintf(w, "%s, %s\n\n", summary.DayName, summary.Date.Format("Jan 2"))
	for _, m := range summary.Macros {
		marker := yellow
		if m.Reached {
			marker = green
		}
		marker.Fprintf(w, "%-9s", m.Name)
		fmt.Fprintf(w, "%6.0f / %-6.0f %s ", m.Current, m.Target, m.Unit)
		faint.Fprintf(w, "(%.0f%%)\n", m.Percent)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Medications  %d/%d\n", summary.MedicationsTaken, summary.MedicationsTotal)
	fmt.Fprintf(w, "Supplements  %d/%d\n", summary.SupplementsTaken, summary.SupplementsTotal)
	fmt.Fprintf(w, "Workouts     %d/%d this week\n", summary.WeeklyWorkouts, summary.WeeklyTarget)
	if summary.LatestWeight != nil {
		fmt.Fprintf(w, "Weight       %.1f %s\n", summary.LatestWeight.Value, summary.LatestWeight.Unit)
	}
	fmt.Fprintln(w)
	if b := summary.CurrentBlock; b != nil {
		green.Fprintf(w, "Now   %s", b.Title)
		faint.Fprintf(w, " %s-%s\n", b.StartLabel, b.EndLabel)
	} else {
		faint.Fprintln(w, "Now   nothing scheduled")
	}
	if b := summary.NextBlock; b != nil {
		fmt.Fprintf(w, "Next  %s", b.Title)
		faint.Fprintf(w, " at %s\n", b.StartLabel)
	}
	return nil
}

func init() {
	summaryCmd.Flags().Int64Var(&summaryUser, "user", 0, "user id")
	rootCmd.AddCommand(summaryCmd)
}
