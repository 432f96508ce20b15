package importer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/eugenenazirov/cash-payout/internal/calculator"
)

const separator = ","

// decimalPattern accepts plain decimal notation only. strconv.ParseFloat on
// its own would also take underscores, hex floats and "Inf".
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Parse splits raw on commas and parses every non-blank token as an amount.
// Tokens that are not plain decimal numbers, are negative, or exceed
// calculator.MaxAmount are all reported together in an *InvalidTokensError.
// A limit of zero or less disables the batch size check.
func Parse(raw string, limit int) ([]float64, error) {
	parts := strings.Split(raw, separator)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens = append(tokens, part)
	}

	if len(tokens) == 0 {
		return nil, ErrNoData
	}
	if limit > 0 && len(tokens) > limit {
		return nil, fmt.Errorf("%w: got %d, limit is %d", ErrTooManyAmounts, len(tokens), limit)
	}

	amounts := make([]float64, 0, len(tokens))
	var invalid []string
	for _, token := range tokens {
		if !decimalPattern.MatchString(token) {
			invalid = append(invalid, token)
			continue
		}
		value, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsInf(value, 0) || value < 0 || value > calculator.MaxAmount {
			invalid = append(invalid, token)
			continue
		}
		amounts = append(amounts, value)
	}

	if len(invalid) > 0 {
		return nil, &InvalidTokensError{Tokens: invalid}
	}
	return amounts, nil
}
