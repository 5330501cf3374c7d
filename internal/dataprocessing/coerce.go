package dataprocessing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// dateLayouts are tried in order for text-typed date cells
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// groupedNumber matches comma thousands separators in their only valid positions
var groupedNumber = regexp.MustCompile(`^[+-]?\d{1,3}(,\d{3})+(\.\d+)?$`)

// CoerceNumeric converts each value to a decimal. Empty values are missing;
// values that do not parse are missing too and are counted in dropped.
func CoerceNumeric(values []string) (out []decimal.NullDecimal, dropped int) {
	out = make([]decimal.NullDecimal, len(values))
	for i, raw := range values {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		d, ok := parseDecimal(s)
		if !ok {
			dropped++
			continue
		}
		out[i] = decimal.NewNullDecimal(d)
	}
	return out, dropped
}

// parseDecimal accepts plain and exponent notation, or comma grouping such
// as 1,234,567.89. Misplaced commas make the value unparsable.
func parseDecimal(s string) (decimal.Decimal, bool) {
	if strings.Contains(s, ",") {
		if !groupedNumber.MatchString(s) {
			return decimal.Decimal{}, false
		}
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ParseDate interprets a raw cell value as an Excel date serial or as text
// in one of dateLayouts. The second result is false for missing or
// unparsable values.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(serial) || math.IsInf(serial, 0) || serial < 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CoerceDates applies ParseDate to every value
func CoerceDates(values []string) (out []*time.Time, dropped int) {
	out = make([]*time.Time, len(values))
	for i, raw := range values {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		t, ok := ParseDate(raw)
		if !ok {
			dropped++
			continue
		}
		out[i] = &t
	}
	return out, dropped
}
