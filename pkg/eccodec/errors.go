package eccodec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCurve indicates a curve outside the supported set for
	// the requested operation
	ErrUnsupportedCurve = errors.New("eccodec: unsupported curve")

	// ErrUnsupportedFormat indicates a point format that is not recognized
	// or not valid for the operation
	ErrUnsupportedFormat = errors.New("eccodec: unsupported point format")

	// ErrLengthMismatch indicates a byte buffer whose length does not match
	// the expected format-derived length
	ErrLengthMismatch = errors.New("eccodec: length mismatch")

	// ErrInvalidEncoding indicates a structurally malformed point encoding
	ErrInvalidEncoding = errors.New("eccodec: invalid point encoding")

	// ErrInvalidPoint indicates coordinates that do not lie on the claimed curve
	ErrInvalidPoint = errors.New("eccodec: point is not on the curve")

	// ErrWrongCurve indicates a non-curve25519 key passed where a curve25519
	// key was expected
	ErrWrongCurve = errors.New("eccodec: key is not a curve25519 key")

	// ErrUnexpectedCoordinate indicates a curve25519 key unexpectedly
	// carrying a y coordinate
	ErrUnexpectedCoordinate = errors.New("eccodec: unexpected y coordinate")

	// ErrInvalidInput indicates an absent or released handle or argument
	ErrInvalidInput = errors.New("eccodec: invalid input")

	// ErrProviderFailure indicates an internal failure reported by the
	// curve-arithmetic provider
	ErrProviderFailure = errors.New("eccodec: provider failure")
)

// Error wraps an underlying error with context
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("eccodec.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorf creates a new Error
func errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
