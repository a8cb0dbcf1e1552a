package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/edudigital/internal/domain"
	"github.com/spec-kit/edudigital/internal/persistence"
	"github.com/spec-kit/edudigital/internal/repository"
	"github.com/spec-kit/edudigital/internal/service"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newUserCreateCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var in service.RegisterInput
	var role string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account of any role",
		Long:  "Create an account directly in the database. This is the only way to provision admins.",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := domain.ParseRole(role)
			if err != nil {
				return err
			}
			if len(in.Password) < 8 {
				return fmt.Errorf("--password must be at least 8 characters")
			}
			in.Role = parsed

			pg, err := persistence.NewPostgres(cmd.Context(), cfg.Postgres, logger)
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}
			defer pg.Close()

			authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
				UserRepo: repository.NewUserRepository(pg.PoolHandle()),
				Logger:   logger,
			})
			user, err := authService.CreateUser(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]string{
				"id":       user.ID,
				"email":    user.Email,
				"userType": string(user.Role),
			})
		},
	}

	cmd.Flags().StringVar(&in.Email, "email", "", "Account e-mail")
	cmd.Flags().StringVar(&in.Password, "password", "", "Initial password")
	cmd.Flags().StringVar(&in.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&in.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&role, "role", "", "Role: "+joinRoles())
	for _, name := range []string{"email", "password", "role"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
