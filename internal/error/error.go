package error

import (
	"errors"
	"fmt"
)

// Recoverable errors are turned into a re-prompt (or a re-sample) by the
// game controller. ErrSessionAborted and ErrStrategyExhausted end the session.
var (
	ErrParse             = errors.New("malformed input")
	ErrOutOfBounds       = errors.New("coordinate out of grid bound")
	ErrOverlap           = errors.New("ship overlaps another ship")
	ErrShipAlreadyPlaced = errors.New("ship already placed")
	ErrUnknownShip       = errors.New("unknown ship")
	ErrAlreadyStruck     = errors.New("coordinate already struck")
	ErrSessionAborted    = errors.New("session aborted by user")
	ErrStrategyExhausted = errors.New("targeting strategy exhausted its attempts")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

func ErrXorYOutOfGridBound(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOutOfBounds, row, col)
}

func ErrShipOutOfGridBound(key byte, row, col, length int) error {
	return fmt.Errorf("%w: ship %q of length %d does not fit from\trow: %d\tcol: %d", ErrOutOfBounds, key, length, row, col)
}

func ErrShipInTheWay(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrOverlap, row, col)
}

func ErrShipPlacedBefore(key byte) error {
	return fmt.Errorf("%w: %q", ErrShipAlreadyPlaced, key)
}

func ErrShipNotExists(key string) error {
	return fmt.Errorf("%w: %q", ErrUnknownShip, key)
}

func ErrPositionAlreadyStruck(row, col int) error {
	return fmt.Errorf("%w\trow: %d\tcol: %d", ErrAlreadyStruck, row, col)
}

func ErrMalformedCoordinates(input string) error {
	return fmt.Errorf("%w: must give two comma separated integers, got %q", ErrParse, input)
}

func ErrMalformedOrientation(input string) error {
	return fmt.Errorf("%w: orientation must be 0 (horizontal) or 1 (vertical), got %q", ErrParse, input)
}

func ErrAttemptsExhausted(attempts int) error {
	return fmt.Errorf("%w after %d attempts", ErrStrategyExhausted, attempts)
}

func ErrConfig(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, a...))
}

// IsRecoverable reports whether err should lead to a re-prompt rather than
// ending the session.
func IsRecoverable(err error) bool {
	switch {
	case errors.Is(err, ErrParse),
		errors.Is(err, ErrOutOfBounds),
		errors.Is(err, ErrOverlap),
		errors.Is(err, ErrShipAlreadyPlaced),
		errors.Is(err, ErrUnknownShip),
		errors.Is(err, ErrAlreadyStruck):
		return true
	}
	return false
}
