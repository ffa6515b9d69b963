package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"

	"github.com/Chalhotra/LibMgmt/library/features/command/bootstrapadmin"
	"github.com/Chalhotra/LibMgmt/library/shell/config"
)

var errNoPassword = errors.New("no password given")

func newBootstrapAdminCommand(opts *rootOptions) *cobra.Command {
	var username string
	var passwordStdin bool

	cmd := &cobra.Command{
		Use:   "bootstrap-admin",
		Short: "Create the first admin, or grant admin rights to an existing user",
		Long: "Creates the user with admin rights when the username is free, or promotes the existing user.\n" +
			"Running it again for an admin changes nothing.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := opts.loadSettings()
			if err != nil {
				return err
			}

			password, err := readPassword(cmd, passwordStdin)
			if err != nil {
				return err
			}

			obs, err := setupObservability(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer obs.close()

			libraryStore, closeStore, err := config.OpenStore(cmd.Context(), settings, obs.storeOptions()...)
			if err != nil {
				return err
			}
			defer closeStore()

			result, err := bootstrapadmin.NewCommandHandler(libraryStore, bcrypt.DefaultCost).Handle(
				cmd.Context(),
				bootstrapadmin.BuildCommand(uuid.New(), username, password, time.Now()),
			)
			if err != nil {
				return err
			}

			if result.Idempotent {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already an admin\n", username)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is now an admin\n", username)

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username of the admin")
	cmd.Flags().BoolVar(&passwordStdin, "password-stdin", false, "read the password from stdin instead of prompting")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

// readPassword prompts without echo on a terminal and reads one line otherwise.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	fd := int(os.Stdin.Fd())

	if !fromStdin && term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return "", fmt.Errorf("reading password failed: %w", err)
		}

		return nonEmpty(string(raw))
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password failed: %w", err)
	}

	return nonEmpty(line)
}

func nonEmpty(password string) (string, error) {
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return "", errNoPassword
	}

	return password, nil
}
