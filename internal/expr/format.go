package expr

import (
	"math"
	"strconv"
	"strings"
)

// Decimals is the number of decimal places kept when a value is printed
// inside a substitution.
const Decimals = 4

// FormatNumber prints v the way substitutions do: rounded to Decimals places
// with trailing zeros dropped, negative values in parentheses.
func FormatNumber(v float64) string {
	var b strings.Builder
	writeNumber(&b, v)
	return b.String()
}

// FormatFixed prints v with exactly prec decimal places.
func FormatFixed(v float64, prec int) string {
	return strconv.FormatFloat(round(v, prec), 'f', prec, 64)
}

func writeNumber(b *strings.Builder, v float64) {
	r := round(v, Decimals)
	if r == 0 {
		// avoid "-0"
		r = 0
	}
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if r < 0 {
		b.WriteString("(−")
		b.WriteString(s[1:])
		b.WriteString(")")
		return
	}
	b.WriteString(s)
}

func round(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))
	return math.Round(v*p) / p
}
