package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/edudigital/internal/config"
	"github.com/spec-kit/edudigital/internal/observability"
)

var (
	flagLogLevel string

	cfg    *config.Config
	logger *zap.Logger
)

// NewRootCmd creates the root cobra command for the eductl CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "eductl",
		Short: "EduDigital operator tooling",
		Long:  "eductl issues and inspects access tokens, applies migrations and provisions accounts.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if flagLogLevel != "" {
				loaded.Logger.Level = flagLogLevel
			}
			l, err := observability.NewLogger(loaded.Logger)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			cfg, logger = loaded, l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	root.AddCommand(
		newTokenCmd(),
		newMigrateCmd(),
		newUserCmd(),
	)
	return root
}
