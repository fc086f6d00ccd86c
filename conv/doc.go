// Package conv provides a reflection-based converter of text into scalar destinations.
// It resolves the conversion kind from the destination type (or an explicit kind),
// applies strparse Try or Parse contracts and supports custom conversion functions
// registered per destination type.
package conv
