package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks malformed input to a single operation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState marks a precondition that does not hold for the whole operation.
	ErrInvalidState = errors.New("invalid state")
)

func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func InvalidState(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

// Code maps an error to a short machine readable kind.
func Code(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrInvalidArgument):
		return "INVALID_ARGUMENT"
	case errors.Is(err, ErrInvalidState):
		return "FAILED_PRECONDITION"
	default:
		return "INTERNAL"
	}
}
