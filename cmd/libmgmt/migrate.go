package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Chalhotra/LibMgmt/library/shell/config"
	"github.com/Chalhotra/LibMgmt/store/migrations"
)

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or revert the database schema",
	}

	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, opts, func(m *migrations.Migrator) error {
					if err := m.Up(); err != nil {
						return err
					}

					return printVersion(cmd, m)
				})
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "Revert the given number of migrations (default 1)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) == 1 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n < 1 {
						return fmt.Errorf("steps must be a positive number, got %q", args[0])
					}

					steps = n
				}

				return withMigrator(cmd, opts, func(m *migrations.Migrator) error {
					if err := m.Down(steps); err != nil {
						return err
					}

					return printVersion(cmd, m)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd, opts, func(m *migrations.Migrator) error {
					return printVersion(cmd, m)
				})
			},
		},
	)

	return migrate
}

func withMigrator(cmd *cobra.Command, opts *rootOptions, fn func(m *migrations.Migrator) error) error {
	settings, err := opts.loadSettings()
	if err != nil {
		return err
	}

	db, err := config.NewSQLDB(cmd.Context(), settings.DatabaseURL)
	if err != nil {
		return err
	}

	m, err := migrations.New(db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer func() { _ = m.Close() }()

	return fn(m)
}

func printVersion(cmd *cobra.Command, m *migrations.Migrator) error {
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", v, dirty)

	return nil
}
