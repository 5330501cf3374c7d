package exporter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the layout used for date range bounds
const DateLayout = "2006-01-02 15:04:05"

var amountPrinter = message.NewPrinter(language.English)

// formatAmount formats f with thousands separators and exactly 2 decimal places.
// NaN and infinities use the spellings nan, inf and -inf.
func formatAmount(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return amountPrinter.Sprintf("%.2f", f)
}

// formatDecimal formats an exact sum like formatAmount without passing
// through float64. Ties round half to even; a negative value that rounds
// to zero keeps its sign.
func formatDecimal(d decimal.Decimal) string {
	fixed := strings.TrimPrefix(d.RoundBank(2).StringFixed(2), "-")
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// formatCount formats a count as a plain integer
func formatCount(n int) string {
	return strconv.Itoa(n)
}

// formatDate formats a range bound; a nil bound renders NaT
func formatDate(t *time.Time) string {
	if t == nil {
		return "NaT"
	}
	return t.Format(DateLayout)
}
