// Command loancalc computes loan payments, amortization schedules and early
// payoff scenarios, and keeps a local history of calculations.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
