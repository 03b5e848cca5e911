package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/multicalc/loancalc/internal/config"
	"github.com/multicalc/loancalc/internal/output"
)

func newExampleCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example [path]",
		Short: "Write an example request file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := config.NewInputParser().CreateExampleRequest()
			if len(args) == 0 {
				b, err := yaml.Marshal(req)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := output.SaveRequest(req, args[0]); err != nil {
				return err
			}
			printf(cmd, "Wrote %s\n", args[0])
			return nil
		},
	}
}
