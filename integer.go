package strparse

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	minLongDecimal = decimal.NewFromInt(math.MinInt64)
	maxLongDecimal = decimal.NewFromInt(math.MaxInt64)
)

// TryParseInteger converts text to int32, blank text fails with zero
func TryParseInteger(text string) (int32, bool) {
	return trySigned[int32](text, 32)
}

// ParseInteger converts text to int32.
// Blank text returns 0, malformed or out of range text returns -1.
func ParseInteger(text *string) (int32, error) {
	if text == nil {
		return 0, absentError("int32")
	}
	if isBlank(*text) {
		return 0, nil
	}
	if value, ok := TryParseInteger(*text); ok {
		return value, nil
	}
	return -1, nil
}

// TryParseUnsignedInteger converts text to uint32, blank text fails with zero
func TryParseUnsignedInteger(text string) (uint32, bool) {
	return tryUnsigned[uint32](text, 32)
}

// ParseUnsignedInteger converts text to uint32.
// Blank text, text starting with '-' and values above the range return math.MaxUint32,
// malformed text returns ErrInvalidFormat.
func ParseUnsignedInteger(text *string) (uint32, error) {
	if text == nil {
		return 0, absentError("uint32")
	}
	if isBlank(*text) || strings.HasPrefix(*text, "-") {
		return math.MaxUint32, nil
	}
	value, status := parseUnsigned[uint64](*text, 64)
	switch status {
	case numberSyntax:
		return 0, formatError("uint32", *text)
	case numberRange:
		return math.MaxUint32, nil
	}
	if value > math.MaxUint32 {
		return math.MaxUint32, nil
	}
	return uint32(value), nil
}

// TryParseByte converts text to uint8, blank text fails with zero
func TryParseByte(text string) (uint8, bool) {
	return tryUnsigned[uint8](text, 8)
}

// ParseByte converts text to uint8.
// Blank or malformed text returns 255; text holding an int32 outside of [0, 255] returns 0.
func ParseByte(text *string) (uint8, error) {
	if text == nil {
		return 0, absentError("uint8")
	}
	if isBlank(*text) {
		return math.MaxUint8, nil
	}
	if value, ok := TryParseByte(*text); ok {
		return value, nil
	}
	if value, ok := TryParseInteger(*text); ok && (value < 0 || value > math.MaxUint8) {
		return 0, nil
	}
	return math.MaxUint8, nil
}

// TryParseSignedByte converts text to int8, blank text fails with zero
func TryParseSignedByte(text string) (int8, bool) {
	return trySigned[int8](text, 8)
}

// ParseSignedByte converts text to int8.
// Blank text returns math.MaxInt8, any other failure returns ErrOverflow.
func ParseSignedByte(text *string) (int8, error) {
	if text == nil {
		return 0, absentError("int8")
	}
	if isBlank(*text) {
		return math.MaxInt8, nil
	}
	if value, ok := TryParseSignedByte(*text); ok {
		return value, nil
	}
	return 0, overflowError("int8", *text)
}

// TryParseShort converts text to int16, blank text fails with zero
func TryParseShort(text string) (int16, bool) {
	return trySigned[int16](text, 16)
}

// ParseShort converts text to int16, blank, malformed and out of range text returns ErrInvalidFormat
func ParseShort(text *string) (int16, error) {
	if text == nil {
		return 0, absentError("int16")
	}
	if value, ok := TryParseShort(*text); ok {
		return value, nil
	}
	return 0, formatError("int16", *text)
}

// TryParseUnsignedShort converts text to uint16, blank text fails with zero
func TryParseUnsignedShort(text string) (uint16, bool) {
	return tryUnsigned[uint16](text, 16)
}

// ParseUnsignedShort converts text to uint16.
// Blank or malformed text returns 0; text starting with '-' or any integer outside the range returns math.MaxUint16.
func ParseUnsignedShort(text *string) (uint16, error) {
	if text == nil {
		return 0, absentError("uint16")
	}
	if isBlank(*text) {
		return 0, nil
	}
	if strings.HasPrefix(*text, "-") {
		return math.MaxUint16, nil
	}
	value, status := parseUnsigned[uint64](*text, 64)
	switch {
	case status == numberSyntax:
		return 0, nil
	case status == numberRange || value > math.MaxUint16:
		return math.MaxUint16, nil
	}
	return uint16(value), nil
}

// TryParseLong converts text to int64, blank text fails with zero
func TryParseLong(text string) (int64, bool) {
	return trySigned[int64](text, 64)
}

// ParseLong converts text to int64.
// Blank or malformed text returns math.MinInt64, a decimal outside of the int64 range returns -1.
func ParseLong(text *string) (int64, error) {
	if text == nil {
		return 0, absentError("int64")
	}
	if isBlank(*text) {
		return math.MinInt64, nil
	}
	if value, ok := TryParseLong(*text); ok {
		return value, nil
	}
	if value, ok := TryParseDecimal(*text); ok && (value.GreaterThan(maxLongDecimal) || value.LessThan(minLongDecimal)) {
		return -1, nil
	}
	return math.MinInt64, nil
}

// TryParseUnsignedLong converts text to uint64, blank text fails with zero
func TryParseUnsignedLong(text string) (uint64, bool) {
	return tryUnsigned[uint64](text, 64)
}

// ParseUnsignedLong converts text to uint64.
// Blank or malformed text returns ErrInvalidFormat; text starting with '-' or above the range returns ErrOverflow.
func ParseUnsignedLong(text *string) (uint64, error) {
	if text == nil {
		return 0, absentError("uint64")
	}
	if isBlank(*text) {
		return 0, formatError("uint64", *text)
	}
	if strings.HasPrefix(*text, "-") {
		return 0, overflowError("uint64", *text)
	}
	value, status := parseUnsigned[uint64](*text, 64)
	switch status {
	case numberSyntax:
		return 0, formatError("uint64", *text)
	case numberRange:
		return 0, overflowError("uint64", *text)
	}
	return value, nil
}
