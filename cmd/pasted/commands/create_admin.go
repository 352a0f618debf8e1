package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

func newCreateAdminCommand() *cobra.Command {
	var in ports.SignupInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Args:  cobra.NoArgs,
		Short: "Create an ADMIN account",
		Long:  `Create an account with the ADMIN role. Signup over HTTP only ever creates USER accounts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Role = domain.RoleAdmin
			return createAdmin(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVar(&in.Username, "username", "", "admin username")
	cmd.Flags().StringVar(&in.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&in.Password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func createAdmin(ctx context.Context, in ports.SignupInput) error {
	cfg, log, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	client, store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	auth, err := newAuthService(cfg, store, log)
	if err != nil {
		return err
	}

	user, err := auth.Signup(ctx, in)
	if err != nil {
		return fmt.Errorf("create admin %q: %w", in.Username, err)
	}
	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("admin created")
	return nil
}
