package calculator

import "github.com/shopspring/decimal"

// Payout is a raw amount together with its rounded payable amount and the
// cash needed to pay it out.
type Payout struct {
	Raw       float64   `json:"raw"`
	Rounded   float64   `json:"rounded"`
	Breakdown Breakdown `json:"breakdown"`
}

// Difference is the rounded amount minus the raw amount.
func (p Payout) Difference() decimal.Decimal {
	return decimal.NewFromFloat(p.Rounded).Sub(decimal.NewFromFloat(p.Raw))
}

// Entry is a single submitted amount in the working list.
type Entry struct {
	ID string `json:"id"`
	Payout
}

// Calculator describes the behaviour required from a payout calculator.
type Calculator interface {
	Round(amount float64) (float64, error)
	Decompose(amount int64) (Breakdown, error)
	Evaluate(amount float64) (Payout, error)
}
