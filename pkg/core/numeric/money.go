// Package numeric normalizes the loosely formatted money strings the
// model produces ("$55,000 - $60,000", "275000", "N/A") into numbers,
// and formats numbers back into US-dollar display strings.
package numeric

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches a maximal run of digits, commas and a decimal
// point. Negatives, scientific notation and non-USD symbols are out of
// scope; input is assumed non-negative and comma-grouped.
var amountPattern = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)

// ParseSingleAmount extracts the first number found in text.
// Returns 0 when nothing parseable is present; absence of a number is a
// valid, silent zero, never an error.
func ParseSingleAmount(text string) float64 {
	match := amountPattern.FindString(text)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseMaxOfRange extracts every number in text and returns the largest.
// Cost ranges are treated conservatively downstream: the high end of
// "$45,000 - $50,000" is what feeds the deal math. Returns 0 when no
// number is found.
func ParseMaxOfRange(text string) float64 {
	matches := amountPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0
	}
	max := 0.0
	for _, m := range matches {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max
}

// ParsePlainFloat parses a bare numeric string, 0 on failure. Used for
// the purchase-price form field, which arrives without currency dressing.
func ParsePlainFloat(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return v
}

// FormatCurrency renders v as US-locale currency with zero decimal
// places: 142500 -> "$142,500". Rounds half away from zero.
func FormatCurrency(v float64) string {
	neg := v < 0
	n := int64(math.Round(math.Abs(v)))

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
