// Package cli is the portfolio command line: serve, migrate and createadmin.
package cli

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yoockh/portfolio/config"
	"github.com/yoockh/portfolio/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Single-profile portfolio site with an admin API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, createAdminCmd)
}

// Execute runs the command named on the command line.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("command failed")
		return 1
	}
	return 0
}

// setup loads settings and the process logger shared by every command.
func setup() (config.Settings, *logrus.Logger, error) {
	s, err := config.LoadSettings()
	if err != nil {
		return s, nil, err
	}
	l := logger.New(s.LogLevel, s.LogFormat)
	logrus.SetOutput(os.Stdout)
	logrus.SetFormatter(l.Formatter)
	logrus.SetLevel(l.GetLevel())
	return s, l, nil
}
