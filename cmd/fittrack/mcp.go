package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"fittrack-backend-go/internal/mcp"

	"github.com/spf13/cobra"
)

var mcpUser int64

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long: `Start a Model Context Protocol server on stdin/stdout acting as one user.

AVAILABLE TOOLS:

  log_metric             Record weight, waist or a lab result
  log_meal               Log servings of a catalog meal
  quick_add_meal         Create a custom meal and log one serving
  toggle_medication      Mark a medication taken or not for a day
  toggle_schedule_block  Mark a schedule block done or not for a day
  complete_workout       Store a finished session with its sets in one call
  start_workout          Begin a guided session pre-filled from the last one
  workout_move           Next, previous or jump to an exercise
  record_set             Enter weight and reps for a set of the current exercise
  finish_workout         Submit the guided session
  daily_summary          Today's progress
  list_catalog           Meal, medication, workout and block ids

AVAILABLE RESOURCES:

  fittrack://summary     Today's progress as JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUserFlag(mcpUser); err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		tracker, repo, err := openTracker(ctx, false)
		if err != nil {
			return err
		}
		defer repo.Close()

		server, err := mcp.NewServer(ctx, tracker, mcpUser, version)
		if err != nil {
			return err
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	mcpCmd.Flags().Int64Var(&mcpUser, "user", 0, "user id the tools act as")
	rootCmd.AddCommand(mcpCmd)
}
