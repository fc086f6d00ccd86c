package strparse

const (
	trueLiteral  = "True"
	falseLiteral = "False"
)

// TryParseBoolean converts "True" or "False" (case insensitive) to a boolean.
// Empty or any other text fails with false.
func TryParseBoolean(text string) (bool, bool) {
	switch {
	case text == "":
		return false, false
	case equalFoldASCII(text, trueLiteral):
		return true, true
	case equalFoldASCII(text, falseLiteral):
		return false, true
	}
	return false, false
}

// ParseBoolean converts "True" or "False" (case insensitive) to a boolean.
// Empty or unrecognized text returns false without an error, nil text returns ErrInvalidArgument.
func ParseBoolean(text *string) (bool, error) {
	if text == nil {
		return false, absentError("bool")
	}
	value, _ := TryParseBoolean(*text)
	return value, nil
}
