package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	pgrepo "github.com/yoockh/portfolio/internal/repositories/postgres"
	"github.com/yoockh/portfolio/internal/services"
)

var createAdminCmd = &cobra.Command{
	Use:   "createadmin",
	Short: "Create a staff account for the admin API",
	Long: `Creates a staff account that can log in to /admin/api/login.

The password is read from --password or, when omitted, from ADMIN_PASSWORD.

Examples:
  portfolio createadmin --username admin --email admin@example.com --password 'long secret'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}
		if username == "" || password == "" {
			return errors.New("--username and a password (--password or ADMIN_PASSWORD) are required")
		}

		s, l, err := setup()
		if err != nil {
			return err
		}
		db, closeDB, err := openDB(cmd.Context(), s, l)
		if err != nil {
			return err
		}
		defer closeDB()

		accounts := services.NewAccountService(pgrepo.NewAccountRepo(db), pgrepo.NewProfileRepo(db), pgrepo.NewTransactor(db), nil)
		acc, err := accounts.Create(cmd.Context(), services.AccountInput{
			Username: username,
			Email:    email,
			IsStaff:  true,
			Password: password,
		})
		if err != nil {
			return err
		}
		l.WithField("account_id", acc.ID).WithField("username", acc.Username).Info("staff account created")
		return nil
	},
}

func init() {
	createAdminCmd.Flags().String("username", "", "login name")
	createAdminCmd.Flags().String("email", "", "contact email")
	createAdminCmd.Flags().String("password", "", "password (min 8 characters)")
}
