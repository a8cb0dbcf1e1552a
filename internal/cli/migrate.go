package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/edudigital/internal/persistence"
)

func newMigrateCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = cfg.Postgres.MigrationsDir
			}
			pg, err := persistence.NewPostgres(cmd.Context(), cfg.Postgres, logger)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pg.Close()

			if err := persistence.RunMigrations(cmd.Context(), pg.PoolHandle(), dir, logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations in %s applied\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Migrations directory (defaults to POSTGRES_MIGRATIONS_DIR)")
	return cmd
}
