package main

import (
	"context"
	"fmt"

	"fittrack-backend-go/internal/app"
	"fittrack-backend-go/internal/config"
	httpapi "fittrack-backend-go/internal/http"
	"fittrack-backend-go/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "fittrack",
	Short:         "Operator tools for the FitTrack server",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `fittrack manages the FitTrack database and gives terminal and MCP access
to the tracker.

Configuration comes from the environment (a .env file is loaded first), the
same variables the server reads. DATABASE_URL and SESSION_SECRET are required.

EXAMPLES:

  fittrack migrate                 # apply pending SQL migrations
  fittrack seed --yes              # wipe and load the built-in catalog
  fittrack token --user 1          # print a sign-in link for user 1
  fittrack summary --user 1        # today's progress in the terminal
  fittrack mcp --user 1            # MCP server on stdio`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		if err := config.CheckEnv(); err != nil {
			return err
		}
		cfg = config.Load()
		return nil
	},
}

// openTracker opens the configured store. The caller closes the returned repository.
func openTracker(ctx context.Context, migrate bool) (*services.Tracker, app.Repository, error) {
	repo, err := app.OpenRepository(ctx, cfg, migrate)
	if err != nil {
		return nil, nil, err
	}
	return app.NewTracker(repo, cfg, nil), repo, nil
}

func tokenService() services.TokenService {
	return httpapi.NewTokenService(cfg)
}

func requireUserFlag(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("--user is required")
	}
	return nil
}
