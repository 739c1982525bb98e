package main

import (
	"fmt"
	"io"
	"time"

	"fittrack-backend-go/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var tokenUser int64

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a session token and sign-in link for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUserFlag(tokenUser); err != nil {
			return err
		}
		tracker, repo, err := openTracker(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer repo.Close()
		if err := tracker.RequireUser(cmd.Context(), tokenUser); err != nil {
			return err
		}
		return printSignIn(cmd.OutOrStdout(), tokenService(), tokenUser)
	},
}

func printSignIn(w io.Writer, tokens services.TokenService, userID int64) error {
	token, exp, err := tokens.CreateSessionToken(userID)
	if err != nil {
		return fmt.Errorf("token: %w", err)
	}
	faint := color.New(color.Faint)
	fmt.Fprintf(w, "token: %s\n", token)
	fmt.Fprintf(w, "sign in: http://localhost:%s/session?token=%s\n", cfg.Port, token)
	faint.Fprintf(w, "expires %s\n", time.Unix(exp, 0).Format(time.RFC1123))
	return nil
}

func init() {
	tokenCmd.Flags().Int64Var(&tokenUser, "user", 0, "user id")
	rootCmd.AddCommand(tokenCmd)
}
