package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/tenxcards-backend/internal/auth"
)

func newDevTokenCmd() *cobra.Command {
	var (
		secret string
		issuer string
		userID string
		email  string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "dev-token",
		Short: "Sign an access token for local development",
		Long: `Sign an HS256 access token with the server's AUTH_JWT_SECRET. Intended
for local and integration environments; production tokens come from the
auth provider.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if secret == "" {
				return errors.New("secret is required (--secret or AUTH_JWT_SECRET)")
			}

			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("user id: %w", err)
				}
				id = parsed
			}

			signed, err := auth.NewJWTVerifier(secret, issuer).Sign(auth.Identity{ID: id, Email: email}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", os.Getenv("AUTH_JWT_SECRET"), "HS256 signing secret")
	cmd.Flags().StringVar(&issuer, "issuer", os.Getenv("AUTH_JWT_ISSUER"), "token issuer")
	cmd.Flags().StringVar(&userID, "user", "", "user id (default: random)")
	cmd.Flags().StringVar(&email, "email", "dev@localhost", "user email")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
