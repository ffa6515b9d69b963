package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Chalhotra/LibMgmt/library/httpapi/auth"
	"github.com/Chalhotra/LibMgmt/library/shell/config"
	"github.com/Chalhotra/LibMgmt/store"
)

func newTokenCommand(opts *rootOptions) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for an existing user without a password",
		Long:  "Issues a token signed with JWT_SECRET for operators and scripts that already have database access.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.loadSettings()
			if err != nil {
				return err
			}

			if err = settings.RequireJWTSecret(); err != nil {
				return err
			}

			issuer, err := auth.NewIssuer(settings.JWTSecret, settings.JWTTTL)
			if err != nil {
				return err
			}

			libraryStore, closeStore, err := config.OpenStore(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer closeStore()

			user, err := libraryStore.FindUserByUsername(cmd.Context(), username)
			if errors.Is(err, store.ErrRowNotFound) {
				return fmt.Errorf("user %q not found", username)
			}

			if err != nil {
				return err
			}

			token, expiresAt, err := issuer.Issue(auth.Principal{
				UserID:   user.ID,
				Username: user.Username,
				IsAdmin:  user.IsAdmin,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "user to issue the token for")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
