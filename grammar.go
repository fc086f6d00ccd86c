package strparse

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type numberStatus int

const (
	numberOK numberStatus = iota
	numberSyntax
	numberRange
)

// isIntegerText matches [+-]?[0-9]+
func isIntegerText(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parseSigned[T constraints.Signed](text string, bitSize int) (T, numberStatus) {
	s := trimNumber(text)
	if !isIntegerText(s) {
		return 0, numberSyntax
	}
	value, err := strconv.ParseInt(s, 10, bitSize)
	if err != nil {
		return 0, numberRange
	}
	return T(value), numberOK
}

func parseUnsigned[T constraints.Unsigned](text string, bitSize int) (T, numberStatus) {
	s := trimNumber(text)
	if !isIntegerText(s) {
		return 0, numberSyntax
	}
	switch s[0] {
	case '-':
		if strings.Trim(s[1:], "0") == "" {
			return 0, numberOK
		}
		return 0, numberRange
	case '+':
		s = s[1:]
	}
	value, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, numberRange
	}
	return T(value), numberOK
}

func trySigned[T constraints.Signed](text string, bitSize int) (T, bool) {
	if isBlank(text) {
		return 0, false
	}
	value, status := parseSigned[T](text, bitSize)
	return value, status == numberOK
}

func tryUnsigned[T constraints.Unsigned](text string, bitSize int) (T, bool) {
	if isBlank(text) {
		return 0, false
	}
	value, status := parseUnsigned[T](text, bitSize)
	return value, status == numberOK
}

// isFloatText matches [+-]?(digits[.digits]|.digits)([eE][+-]?digits)?, a signed Infinity or NaN (case insensitive)
func isFloatText(s string) bool {
	if equalFoldASCII(s, "nan") {
		return true
	}
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if equalFoldASCII(s, "infinity") {
		return true
	}
	i, digits := 0, 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		for i++; i < len(s) && isDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		exponent := 0
		for ; i < len(s) && isDigit(s[i]); i++ {
			exponent++
		}
		if exponent == 0 {
			return false
		}
	}
	return i == len(s)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseFloat parses text with the float grammar, magnitudes beyond bitSize range yield ±Inf
func parseFloat(text string, bitSize int) (float64, bool) {
	s := trimNumber(text)
	if !isFloatText(s) {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return value, true
		}
		return 0, false
	}
	return value, true
}
