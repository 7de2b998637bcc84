package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Coordinates
		expectedErr error
	}{
		{name: "plain", input: "1,2", expected: NewCoordinates(1, 2)},
		{name: "spaces", input: " 3 , 9 ", expected: NewCoordinates(3, 9)},
		{name: "out of grid is still parsed", input: "12,-1", expected: NewCoordinates(12, -1)},
		{name: "single value", input: "1", expectedErr: cerr.ErrParse},
		{name: "three values", input: "1,2,3", expectedErr: cerr.ErrParse},
		{name: "letters", input: "a,b", expectedErr: cerr.ErrParse},
		{name: "empty", input: "", expectedErr: cerr.ErrParse},
		{name: "missing col", input: "4,", expectedErr: cerr.ErrParse},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, err := ParseCoordinates(test.input)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, c)
		})
	}
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("0")
	require.NoError(t, err)
	require.Equal(t, OrientationHorizontal, o)

	o, err = ParseOrientation(" 1")
	require.NoError(t, err)
	require.Equal(t, OrientationVertical, o)

	for _, input := range []string{"2", "h", "", "-1"} {
		_, err := ParseOrientation(input)
		require.ErrorIs(t, err, cerr.ErrParse, "input %q", input)
	}
}
