package ethutil

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var ErrEmptyAmount = errors.New("empty amount")

// ParseUnits converts a human readable decimal string into the token's
// smallest unit. Fraction digits beyond decimals are truncated.
func ParseUnits(value string, decimals uint8) (*big.Int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, ErrEmptyAmount
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q: %w", value, err)
	}

	return d.Shift(int32(decimals)).Truncate(0).BigInt(), nil
}

// FormatUnits is the inverse of ParseUnits. Trailing zeros are trimmed.
func FormatUnits(value *big.Int, decimals uint8) string {
	if value == nil {
		return "0"
	}

	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}

// FormatDisplay groups the integer part by thousands and keeps at most three
// fraction digits, e.g. "1234567.891234" becomes "1,234,567.891".
func FormatDisplay(value string) string {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return "0"
	}

	d = d.Round(3)
	sign := ""
	if d.IsNegative() {
		sign, d = "-", d.Abs()
	}

	integer := humanize.BigComma(d.Truncate(0).BigInt())
	if _, fraction, ok := strings.Cut(d.String(), "."); ok {
		return sign + integer + "." + fraction
	}

	return sign + integer
}
