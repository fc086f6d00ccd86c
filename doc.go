// Package strparse converts text into primitive scalar values.
//
// Every target type comes with two contracts:
//
//   - TryParseXxx(text string) (value, ok) never fails loudly, a failed
//     conversion returns the zero value and false.
//   - ParseXxx(text *string) (value, error) returns the value directly. A nil
//     text is a caller error reported as ErrInvalidArgument; present but empty
//     or malformed text follows a per type policy, either a sentinel value or
//     an ErrInvalidFormat/ErrOverflow error. Policies intentionally differ
//     between types, see each function documentation.
//
// All functions are stateless and safe for concurrent use.
package strparse
