package strparse

import "github.com/pkg/errors"

var (
	//ErrInvalidArgument reports an absent (nil) input passed to a Parse function
	ErrInvalidArgument = errors.New("invalid argument")
	//ErrInvalidFormat reports text that does not match the expected grammar
	ErrInvalidFormat = errors.New("invalid format")
	//ErrOverflow reports a number outside of the target type range
	ErrOverflow = errors.New("overflow")
)

func absentError(typeName string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s input string cannot be nil", typeName)
}

func formatError(typeName, text string) error {
	return errors.Wrapf(ErrInvalidFormat, "failed to parse %s from %q", typeName, text)
}

func overflowError(typeName, text string) error {
	return errors.Wrapf(ErrOverflow, "%q is outside of %s range", text, typeName)
}
