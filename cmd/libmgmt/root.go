package main

import (
	"github.com/spf13/cobra"

	"github.com/Chalhotra/LibMgmt/library/shell/config"
)

type rootOptions struct {
	envFiles []string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "libmgmt",
		Short:         "Library management service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load before reading the environment (default .env)")

	root.AddCommand(
		newServeCommand(opts),
		newMigrateCommand(opts),
		newBootstrapAdminCommand(opts),
		newTokenCommand(opts),
		newVersionCommand(),
	)

	return root
}

func (o *rootOptions) loadSettings() (config.Settings, error) {
	return config.Load(o.envFiles...)
}
