package calculation

import "errors"

var (
	// ErrInvalidInput reports terms outside the domain: principal <= 0, rate outside
	// [0,100], term too short or too long, or a non-finite field.
	ErrInvalidInput = errors.New("invalid loan input")

	// ErrNonFiniteResult reports a payment formula that overflowed or was undefined.
	ErrNonFiniteResult = errors.New("loan calculation produced a non-finite result")

	// ErrPayoffUnreachable reports a payment that cannot retire the balance, either
	// because it does not exceed the period interest or because payoff would take
	// longer than MaxPayoffMonths.
	ErrPayoffUnreachable = errors.New("payment too small to amortize")
)
