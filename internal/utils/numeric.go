// internal/utils/numeric.go
package utils

import (
	"math"
	"strconv"
	"strings"
)

// Numeric form inputs are parsed with a parse-or-keep-previous strategy: while
// the user is typing, an unparsable value must not clobber the last good one.

// ParseAmountOrKeep parses a price or discount input. Blank input resets to 0.
func ParseAmountOrKeep(raw string, previous float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return previous
	}
	return v
}

// ParseQuantityOrKeep parses a stock quantity input. Blank input clears it.
func ParseQuantityOrKeep(raw string, previous *int) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return previous
	}
	return &v
}

// NumericInput carries the raw text of a numeric form field. It accepts a JSON
// string or a JSON number so clients can forward the input box verbatim.
type NumericInput string

func (n *NumericInput) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = ""
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		*n = NumericInput(unquoted)
		return nil
	}
	*n = NumericInput(s)
	return nil
}
