package gcolor

import (
	"errors"
	"fmt"
)

// Sentinel errors for color construction and parsing.
var (
	// ErrInvalidFormat is returned when text cannot be read as a color.
	ErrInvalidFormat = errors.New("gcolor: invalid color format")

	// ErrOutOfRange is returned when a float component lies outside [0, 1]
	// or an integer hue is below -1.
	ErrOutOfRange = errors.New("gcolor: component out of range")
)

// ParseError records a failed parse and the input that caused it.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func invalidFormat(input string) error {
	return &ParseError{Input: input, Err: ErrInvalidFormat}
}

func outOfRange(component string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrOutOfRange, component, v)
}
