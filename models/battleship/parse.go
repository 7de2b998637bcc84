package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

// ParseCoordinates parses "row,col" with zero based indexes. Bounds are not
// checked here.
func ParseCoordinates(input string) (Coordinates, error) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return Coordinates{}, cerr.ErrMalformedCoordinates(input)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Coordinates{}, cerr.ErrMalformedCoordinates(input)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Coordinates{}, cerr.ErrMalformedCoordinates(input)
	}
	return NewCoordinates(row, col), nil
}

// ParseOrientation accepts "0" for horizontal and "1" for vertical.
func ParseOrientation(input string) (uint8, error) {
	switch strings.TrimSpace(input) {
	case "0":
		return OrientationHorizontal, nil
	case "1":
		return OrientationVertical, nil
	default:
		return 0, cerr.ErrMalformedOrientation(input)
	}
}
