package strparse

import (
	"strings"
	"unicode"
)

// asciiSpace lists characters trimmed around numeric text
const asciiSpace = " \t\n\v\f\r"

// Text returns a present input for Parse functions
func Text(s string) *string {
	return &s
}

// isBlank returns true for empty or white space only text
func isBlank(text string) bool {
	return strings.IndexFunc(text, func(r rune) bool { return !unicode.IsSpace(r) }) == -1
}

// equalFoldASCII compares text with an ASCII literal ignoring ASCII letter case only
func equalFoldASCII(text, literal string) bool {
	if len(text) != len(literal) {
		return false
	}
	for i := 0; i < len(text); i++ {
		if lowerASCII(text[i]) != lowerASCII(literal[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func trimNumber(text string) string {
	return strings.Trim(text, asciiSpace)
}
