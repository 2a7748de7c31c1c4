package cli

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	Long: `Applies the embedded goose migrations to PostgreSQL, or creates the schema
from the models when DATABASE_DRIVER=sqlite.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, l, err := setup()
		if err != nil {
			return err
		}
		_, closeDB, err := openDB(cmd.Context(), s, l)
		if err != nil {
			return err
		}
		defer closeDB()
		l.WithField("driver", s.DatabaseDriver).Info("schema up to date")
		return nil
	},
}
