package calculator

import (
	"fmt"
	"math"
)

// MaxAmount keeps rounded amounts well inside the exact integer range of float64.
const MaxAmount = 1e15

type greedyCalculator struct{}

// New creates a Calculator that rounds on the last digit and pays out greedily.
func New() Calculator {
	return &greedyCalculator{}
}

// Round maps amount onto a multiple of 5 using its last base-10 digit,
// fractional part included.
func (c *greedyCalculator) Round(amount float64) (float64, error) {
	if err := validateAmount(amount); err != nil {
		return 0, err
	}

	lastDigit := math.Mod(amount, 10)
	base := amount - lastDigit

	switch {
	case lastDigit <= 2:
		return base, nil
	case lastDigit <= 4:
		return base + 5, nil
	case lastDigit <= 7:
		return base + 5, nil
	default:
		return base + 10, nil
	}
}

// Decompose splits amount into notes and coins, largest denomination first.
// Any remainder below the smallest denomination is dropped.
func (c *greedyCalculator) Decompose(amount int64) (Breakdown, error) {
	if amount < 0 {
		return Breakdown{}, ErrInvalidAmount
	}

	var result Breakdown
	remaining := amount
	for i, face := range faceValues {
		value := int64(face)
		count := remaining / value
		if count > 0 {
			result.counts[i] = int(count)
			remaining -= count * value
		}
	}

	return result, nil
}

func (c *greedyCalculator) Evaluate(amount float64) (Payout, error) {
	rounded, err := c.Round(amount)
	if err != nil {
		return Payout{}, err
	}

	breakdown, err := c.Decompose(int64(math.Round(rounded)))
	if err != nil {
		return Payout{}, err
	}

	return Payout{
		Raw:       amount,
		Rounded:   rounded,
		Breakdown: breakdown,
	}, nil
}

// ValidateManual checks an amount submitted on its own, which must be positive.
func ValidateManual(amount float64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// BuildEntries evaluates every amount and returns entries for all of them,
// or no entries at all if any amount fails.
func BuildEntries(calc Calculator, amounts []float64, newID func() string) ([]Entry, error) {
	entries := make([]Entry, 0, len(amounts))
	for i, amount := range amounts {
		payout, err := calc.Evaluate(amount)
		if err != nil {
			return nil, fmt.Errorf("amount %d (%v): %w", i+1, amount, err)
		}
		entries = append(entries, Entry{ID: newID(), Payout: payout})
	}
	return entries, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 || amount > MaxAmount {
		return ErrInvalidAmount
	}
	return nil
}
