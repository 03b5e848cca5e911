package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/internal/output"
	"github.com/multicalc/loancalc/internal/store"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Recent calculations",
	}
	cmd.AddCommand(newHistoryListCmd(a), newHistoryClearCmd(a))
	return cmd
}

func newHistoryListCmd(a *app) *cobra.Command {
	var limit int
	var kind string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded calculations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			k := domain.Kind(kind)
			switch k {
			case "", domain.KindAmortizing, domain.KindSimple, domain.KindCompound:
			default:
				return fmt.Errorf("unknown kind %q: expected %s, %s or %s", kind, domain.KindAmortizing, domain.KindSimple, domain.KindCompound)
			}
			entries, err := s.ListHistoryByKind(cmd.Context(), k, limit)
			if err != nil {
				return err
			}
			if asJSON {
				if entries == nil {
					entries = []store.HistoryEntry{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			if len(entries) == 0 {
				printf(cmd, "No calculations recorded.\n")
				return nil
			}
			for _, e := range entries {
				printf(cmd, "%s  %-18s %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Kind, describeEntry(e))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", store.MaxHistoryEntries, "Maximum number of entries")
	cmd.Flags().StringVar(&kind, "kind", "", "Only list one kind (amortizing, simple_interest, compound_interest)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

func newHistoryClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded calculations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			n, err := s.ClearHistory(cmd.Context())
			if err != nil {
				return err
			}
			printf(cmd, "Removed %d entries\n", n)
			return nil
		},
	}
}

// describeEntry renders the headline figure of an entry, or "-" when its payload
// does not decode.
func describeEntry(e store.HistoryEntry) string {
	switch e.Kind {
	case domain.KindAmortizing:
		var in domain.LoanTerms
		var out domain.LoanSummary
		if json.Unmarshal(e.Inputs, &in) != nil || json.Unmarshal(e.Outputs, &out) != nil {
			return "-"
		}
		return fmt.Sprintf("%s at %s over %g years: %s/month",
			output.FormatCurrency(in.Principal), output.FormatPercentage(in.AnnualRatePercent), in.TermYears,
			output.FormatCurrency(out.MonthlyPayment))
	case domain.KindSimple, domain.KindCompound:
		var in domain.SimpleInterest
		var out domain.InterestResult
		if json.Unmarshal(e.Inputs, &in) != nil || json.Unmarshal(e.Outputs, &out) != nil {
			return "-"
		}
		return fmt.Sprintf("%s at %s over %g years: %s interest",
			output.FormatCurrency(in.Principal), output.FormatPercentage(in.RatePercent), in.Years,
			output.FormatCurrency(out.Interest))
	default:
		return "-"
	}
}
