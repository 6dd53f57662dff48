package main

import (
	"fmt"
	"os"

	"kanbanflow/internal/auth"
	"kanbanflow/internal/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newRootCmd returns the devtoken command. The config is read lazily so
// tests can pass their own.
func newRootCmd(loadConfig func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devtoken",
		Short: "Mint a bearer token for local development",
		Long: `Mint a bearer token signed with JWT_SECRET.

Examples:
  # Token for a random user
  devtoken

  # Token for a given user, valid for 30 minutes
  devtoken --user=5f0c... --ttl=30m
`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			userID, err := cmd.Flags().GetString("user")
			if err != nil {
				return err
			}
			if userID == "" {
				userID = uuid.NewString()
			} else if _, err := uuid.Parse(userID); err != nil {
				return fmt.Errorf("invalid --user %q: %w", userID, err)
			}

			ttl, err := cmd.Flags().GetDuration("ttl")
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.JWTExpiry
			}

			token, err := auth.GenerateToken(cfg.JWTSecret, userID, ttl)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("user", "", "User ID to put in the token (random if empty)")
	cmd.Flags().Duration("ttl", 0, "Token lifetime (defaults to JWT_EXPIRY_HOURS)")

	return cmd
}

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		os.Exit(1)
	}
}
