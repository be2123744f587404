package stock

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// NormalizeKeys returns a copy of row with surrounding whitespace trimmed from
// every header name. Values are left untouched.
func NormalizeKeys(row map[string]string) map[string]string {
	normalized := make(map[string]string, len(row))
	for key, value := range row {
		normalized[strings.TrimSpace(key)] = value
	}
	return normalized
}

// ParseDate parses s as a calendar date in UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// Decimal magnitude limits of a float64. Values above overflow, values below
// round to zero.
const (
	maxMagnitude = 309
	minMagnitude = -400
)

func parseNumber(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}

	// Checked before any float conversion, which expands 10^exponent.
	coefficient := d.Coefficient()
	magnitude := int64(d.Exponent()) + int64(len(coefficient.Abs(coefficient).Text(10)))
	if magnitude > maxMagnitude {
		return decimal.Zero, fmt.Errorf("value %q is out of range", s)
	}
	if magnitude < minMagnitude {
		return decimal.Zero, nil
	}

	if f := d.InexactFloat64(); math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, fmt.Errorf("value %q is out of range", s)
	}

	return d, nil
}

// NewStockRecord validates row and builds its typed record. Integer columns
// drop their fractional part.
func NewStockRecord(row map[string]string) (StockRecord, error) {
	if result := ValidateRow(row); !result.IsValid {
		first := result.Errors[0]
		return StockRecord{}, fmt.Errorf("parse error %s: %q (%s)", first.Column, first.Value, first.Reason)
	}
	return buildRecord(row), nil
}

// buildRecord converts a row that already passed ValidateRow, so none of the
// parses below can fail.
func buildRecord(row map[string]string) StockRecord {
	date, _ := ParseDate(row[string(ColumnDate)])
	number := func(col Column) decimal.Decimal {
		d, _ := parseNumber(row[string(col)])
		return d
	}

	return StockRecord{
		Date:               date,
		Symbol:             row[string(ColumnSymbol)],
		Series:             row[string(ColumnSeries)],
		PrevClose:          number(ColumnPrevClose).InexactFloat64(),
		Open:               number(ColumnOpen).InexactFloat64(),
		High:               number(ColumnHigh).InexactFloat64(),
		Low:                number(ColumnLow).InexactFloat64(),
		Last:               number(ColumnLast).InexactFloat64(),
		Close:              number(ColumnClose).InexactFloat64(),
		VWAP:               number(ColumnVWAP).InexactFloat64(),
		Volume:             number(ColumnVolume).IntPart(),
		Turnover:           number(ColumnTurnover).InexactFloat64(),
		Trades:             number(ColumnTrades).IntPart(),
		Deliverable:        number(ColumnDeliverable).IntPart(),
		PercentDeliverable: number(ColumnPercentDeliverable).InexactFloat64(),
	}
}
