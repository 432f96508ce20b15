package calculator

import "github.com/shopspring/decimal"

// Summary aggregates a list of entries. It is always derived from the full
// list and never updated in place.
type Summary struct {
	Count         int
	TotalRaw      decimal.Decimal
	TotalRounded  decimal.Decimal
	RoundingDelta decimal.Decimal
	Breakdown     Breakdown
}

// Summarize folds entries into their combined totals and cash breakdown.
func Summarize(entries []Entry) Summary {
	summary := Summary{
		Count:         len(entries),
		TotalRaw:      decimal.Zero,
		TotalRounded:  decimal.Zero,
		RoundingDelta: decimal.Zero,
	}

	for _, entry := range entries {
		summary.TotalRaw = summary.TotalRaw.Add(decimal.NewFromFloat(entry.Raw))
		summary.TotalRounded = summary.TotalRounded.Add(decimal.NewFromFloat(entry.Rounded))
		summary.Breakdown = summary.Breakdown.Add(entry.Breakdown)
	}
	summary.RoundingDelta = summary.TotalRounded.Sub(summary.TotalRaw)

	return summary
}

// Pieces is the number of notes and coins needed across all entries.
func (s Summary) Pieces() int {
	return s.Breakdown.Pieces()
}

// CashValue is the face value of the combined breakdown.
func (s Summary) CashValue() int64 {
	return s.Breakdown.Value()
}
