package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/config"
	"github.com/multicalc/loancalc/internal/output"
)

func newPrefsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Remembered loan and display preferences",
	}
	cmd.AddCommand(newPrefsShowCmd(a), newPrefsSetCmd(a))
	return cmd
}

func newPrefsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored preferences as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.loadPreferences(cmd.Context())
			b, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			printf(cmd, "%s\n", b)
			return nil
		},
	}
}

func newPrefsSetCmd(a *app) *cobra.Command {
	var format string
	var extras []float64
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change the default output format or extra payment amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			p := a.loadPreferences(ctx)

			if cmd.Flags().Changed("default-format") {
				if output.GetFormatterByName(format) == nil {
					return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
				}
				p.DefaultFormat = output.NormalizeFormatName(format)
			}
			if cmd.Flags().Changed("extra") {
				if len(extras) > config.MaxExtraPayments {
					return fmt.Errorf("at most %d extra payments", config.MaxExtraPayments)
				}
				for _, e := range extras {
					if e <= 0 || math.IsNaN(e) || math.IsInf(e, 0) {
						return fmt.Errorf("extra payment must be positive, got %v", e)
					}
				}
				p.ExtraPayments = extras
			}

			if err := a.savePreferences(ctx, p); err != nil {
				return err
			}
			printf(cmd, "Preferences saved\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "default-format", "", "Format used when --format is not given")
	cmd.Flags().Float64SliceVar(&extras, "extra", nil, "Extra monthly amounts compared by payoff and report")
	return cmd
}
