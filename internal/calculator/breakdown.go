package calculator

import (
	"bytes"
	"strconv"
)

// Breakdown holds the number of notes and coins needed per denomination.
// The zero value is the empty breakdown and two breakdowns are equal
// exactly when they compare equal with ==.
type Breakdown struct {
	counts [denominationCount]int
}

// Count returns the number of pieces recorded for d.
func (b Breakdown) Count(d Denomination) int {
	if !d.valid() {
		return 0
	}
	return b.counts[d]
}

// With returns a copy of b with the count for d replaced.
func (b Breakdown) With(d Denomination, count int) Breakdown {
	if d.valid() {
		b.counts[d] = count
	}
	return b
}

// Add returns the elementwise sum of b and other.
func (b Breakdown) Add(other Breakdown) Breakdown {
	for i := range b.counts {
		b.counts[i] += other.counts[i]
	}
	return b
}

// Value is the total cash value, sum of face value times count.
func (b Breakdown) Value() int64 {
	var total int64
	for i, count := range b.counts {
		total += int64(faceValues[i]) * int64(count)
	}
	return total
}

// Pieces is the total number of notes and coins.
func (b Breakdown) Pieces() int {
	total := 0
	for _, count := range b.counts {
		total += count
	}
	return total
}

// Share returns the percentage of all pieces taken by d, or 0 for an empty breakdown.
func (b Breakdown) Share(d Denomination) float64 {
	pieces := b.Pieces()
	if pieces == 0 {
		return 0
	}
	return float64(b.Count(d)) / float64(pieces) * 100
}

// MarshalJSON encodes all seven denominations keyed by face value, largest first.
func (b Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, count := range b.counts {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(faceValues[i]))
		buf.WriteString(`":`)
		buf.WriteString(strconv.Itoa(count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
