package strparse

import (
	"unicode/utf16"
	"unicode/utf8"
)

// blankChar is returned by ParseChar when text is not a single character
const blankChar = ' '

// TryParseChar returns the sole character of text. Text has to be exactly one
// UTF-16 code unit long, surrogate pairs and invalid UTF-8 fail.
func TryParseChar(text string) (rune, bool) {
	if text == "" {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(text)
	if size != len(text) || (r == utf8.RuneError && size == 1) || utf16.RuneLen(r) != 1 {
		return 0, false
	}
	return r, true
}

// ParseChar returns the sole character of text, or a space for empty or longer text
func ParseChar(text *string) (rune, error) {
	if text == nil {
		return 0, absentError("char")
	}
	if r, ok := TryParseChar(*text); ok {
		return r, nil
	}
	return blankChar, nil
}
