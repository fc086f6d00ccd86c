package strparse

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// EmptyDecimal is returned by ParseDecimal for empty or white space only text
var EmptyDecimal = decimal.RequireFromString("-1.1")

// TryParseDecimal converts text matching [+-]?digits[.digits] to an arbitrary precision decimal.
// Exponents and group separators are not accepted, failures return zero.
func TryParseDecimal(text string) (decimal.Decimal, bool) {
	s := trimNumber(text)
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	integral, fraction := s, ""
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			integral, fraction = s[:i], s[i+1:]
			break
		}
	}
	digits := integral + fraction
	if digits == "" || !allDigits(digits) {
		return decimal.Zero, false
	}
	coefficient, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return decimal.Zero, false
	}
	if negative {
		coefficient.Neg(coefficient)
	}
	return decimal.NewFromBigInt(coefficient, -int32(len(fraction))), true
}

// ParseDecimal converts text to an arbitrary precision decimal.
// Blank text returns EmptyDecimal (-1.1), any other failure returns zero.
func ParseDecimal(text *string) (decimal.Decimal, error) {
	if text == nil {
		return decimal.Zero, absentError("decimal")
	}
	if isBlank(*text) {
		return EmptyDecimal, nil
	}
	value, _ := TryParseDecimal(*text)
	return value, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
