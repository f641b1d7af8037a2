package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/infofinder-backend/internal/app"
	"github.com/heartmarshall/infofinder-backend/internal/config"
	"github.com/heartmarshall/infofinder-backend/internal/render"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "infofinder",
		Short:         "Look up mobile, Aadhaar, vehicle, family and IFSC identifiers",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config (defaults to $CONFIG_PATH)")

	cmd.AddCommand(
		newSearchCmd(opts),
		newCategoriesCmd(),
		newConfigCmd(),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configPath != "" {
		return config.LoadFrom(o.configPath)
	}
	return config.Load()
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List supported lookup categories",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), render.Categories())
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Describe the environment variables the config accepts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.Usage())
		},
	}
}
