package battleship

import (
	"testing"

	"github.com/stretchr/testify/require"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

func TestNewGrid(t *testing.T) {
	grid := NewGrid(DefaultGridSize)
	require.Equal(t, DefaultGridSize, grid.Size())
	require.Equal(t, DefaultGridSize*DefaultGridSize, grid.Count(Cell.IsEmpty))
}

func TestGridGet(t *testing.T) {
	grid := NewGrid(DefaultGridSize)

	tests := []struct {
		name        string
		coordinates Coordinates
		expectedErr error
	}{
		{name: "top left", coordinates: NewCoordinates(0, 0)},
		{name: "bottom right", coordinates: NewCoordinates(9, 9)},
		{name: "row too big", coordinates: NewCoordinates(10, 0), expectedErr: cerr.ErrOutOfBounds},
		{name: "col too big", coordinates: NewCoordinates(0, 10), expectedErr: cerr.ErrOutOfBounds},
		{name: "negative row", coordinates: NewCoordinates(-1, 3), expectedErr: cerr.ErrOutOfBounds},
		{name: "negative col", coordinates: NewCoordinates(3, -1), expectedErr: cerr.ErrOutOfBounds},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cell, err := grid.Get(test.coordinates)
			if test.expectedErr != nil {
				require.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			require.True(t, cell.IsEmpty())
		})
	}
}

func TestGridRowIsACopy(t *testing.T) {
	grid := NewGrid(3)
	row := grid.Row(1)
	row[0] = HitCell()

	cell, err := grid.Get(NewCoordinates(1, 0))
	require.NoError(t, err)
	require.True(t, cell.IsEmpty())
}

func TestCellGlyph(t *testing.T) {
	require.Equal(t, GlyphEmpty, EmptyCell().Glyph())
	require.Equal(t, GlyphHit, HitCell().Glyph())
	require.Equal(t, GlyphMiss, MissCell().Glyph())
	require.Equal(t, ShipKeyCruiser, ShipCell(ShipKeyCruiser).Glyph())
}
