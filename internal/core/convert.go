package core

// convert.go turns raw CSV cells into typed product fields.
//
// Unlike a lenient importer these converters accept exactly one format per
// type: plain base-10 integers, plain decimals and ISO dates (YYYY-MM-DD).
// Every failure wraps one of the Err* conversion sentinels so callers can
// tell the kinds apart with errors.Is.

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Conversion failures.
var (
	ErrInvalidInteger = errors.New("invalid integer")
	ErrInvalidDecimal = errors.New("invalid decimal")
	ErrInvalidDate    = errors.New("invalid date")
)

// CleanCell trims surrounding whitespace from a cell value.
func CleanCell(s string) string {
	return strings.TrimSpace(s)
}

// ToInt converts a cell to an int in the signed 32-bit range.
func ToInt(s string) (int, error) {
	s = CleanCell(s)
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q out of range [%d, %d]", ErrInvalidInteger, s, math.MinInt32, math.MaxInt32)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, s)
	}
	return int(n), nil
}

// ToDecimal converts a cell to an exact decimal.
// Currency symbols and thousands separators are not accepted.
func ToDecimal(s string) (decimal.Decimal, error) {
	s = CleanCell(s)
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: empty value", ErrInvalidDecimal)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, s)
	}
	return d, nil
}

// ToDate converts a YYYY-MM-DD cell to a UTC date.
func ToDate(s string) (time.Time, error) {
	s = CleanCell(s)
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t, nil
}
