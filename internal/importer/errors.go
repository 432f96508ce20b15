package importer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoData is returned when the input contains no amounts once blank tokens are dropped.
	ErrNoData = errors.New("no amounts provided")
	// ErrTooManyAmounts is returned when a batch exceeds the configured limit.
	ErrTooManyAmounts = errors.New("too many amounts in batch")
)

// InvalidTokensError lists every token in a batch that is not a valid amount.
type InvalidTokensError struct {
	Tokens []string
}

func (e *InvalidTokensError) Error() string {
	quoted := make([]string, len(e.Tokens))
	for i, token := range e.Tokens {
		quoted[i] = fmt.Sprintf("%q", token)
	}
	return "invalid amounts: " + strings.Join(quoted, ", ")
}
