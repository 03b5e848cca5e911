package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the settings file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				printf(cmd, "# %s\n", a.settingsPath)
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(a.settings)
			},
		},
		newConfigInitCmd(a),
	)
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(a.settingsPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.settingsPath)
			}
			if err := config.SaveSettings(a.settingsPath, config.DefaultSettings()); err != nil {
				return err
			}
			printf(cmd, "Wrote %s\n", a.settingsPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
