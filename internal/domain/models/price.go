package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PricePoint represents a single row in the financial_data table.
// Prices are stored as integer cents (decimal ×100) so that values like
// 124.08 survive a write/read round trip exactly.
//
// The pair (Symbol, Date) uniquely identifies a row and is the upsert key.
type PricePoint struct {
	ID         int64
	Symbol     string
	Date       time.Time
	OpenPrice  int64 // cents
	ClosePrice int64 // cents
	Volume     int64
	Created    time.Time
	Updated    time.Time
}

// PriceRecord is a normalized daily record produced by the ingestion job,
// not yet persisted. Open and close prices are kept as decimal strings
// exactly as the provider sent them; conversion to cents happens at upsert.
type PriceRecord struct {
	Symbol     string
	Date       time.Time
	OpenPrice  string
	ClosePrice string
	Volume     int64
}

// ParseCents converts a decimal price string (e.g. "124.08") into integer
// cents (12408). The conversion is purely string-based; going through a
// float here would reintroduce the rounding drift the cents encoding exists
// to avoid. Fractional digits beyond the second are truncated.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if len(frac) > 2 {
		frac = frac[:2]
	}
	for len(frac) < 2 {
		frac += "0"
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", s, err)
	}
	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return cents, nil
}

// CentsToDecimal renders integer cents back into a two-decimal string,
// the inverse of ParseCents.
func CentsToDecimal(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
