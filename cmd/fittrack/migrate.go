package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	Long: `Apply every V<n>__*.sql file in MIGRATIONS_DIR that has not been recorded in
schema_migrations. Does nothing for DATABASE_URL=memory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, repo, err := openTracker(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer repo.Close()
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
