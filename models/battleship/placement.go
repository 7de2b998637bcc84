package battleship

import (
	"errors"
	"strconv"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

const (
	OrientationHorizontal uint8 = iota
	OrientationVertical
)

// Rand is the subset of *rand.Rand used to draw placements and strikes.
type Rand interface {
	Intn(n int) int
}

// Span returns the cells covered by a ship of the given length laid from
// anchor. Cells may fall outside of any grid.
func Span(anchor Coordinates, orientation uint8, length int) []Coordinates {
	cells := make([]Coordinates, 0, length)
	for i := 0; i < length; i++ {
		if orientation == OrientationHorizontal {
			cells = append(cells, NewCoordinates(anchor.Row, anchor.Col+i))
		} else {
			cells = append(cells, NewCoordinates(anchor.Row+i, anchor.Col))
		}
	}
	return cells
}

// checkSpan returns the reason a ship can not be laid over span, or nil.
func checkSpan(grid *Grid, span []Coordinates) error {
	for _, c := range span {
		if !grid.InBounds(c) {
			return cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
		}
	}
	for _, c := range span {
		if !grid.cells[c.Row][c.Col].IsEmpty() {
			return cerr.ErrShipInTheWay(c.Row, c.Col)
		}
	}
	return nil
}

func CanPlace(grid *Grid, anchor Coordinates, orientation uint8, length int) bool {
	return checkSpan(grid, Span(anchor, orientation, length)) == nil
}

// Place lays ship key of fleet onto grid. The grid is only written once every
// check has passed.
func Place(grid *Grid, fleet *Fleet, key byte, anchor Coordinates, orientation uint8) error {
	ship, err := fleet.Ship(key)
	if err != nil {
		return err
	}
	if ship.placed {
		return cerr.ErrShipPlacedBefore(key)
	}
	if orientation != OrientationHorizontal && orientation != OrientationVertical {
		return cerr.ErrMalformedOrientation(strconv.Itoa(int(orientation)))
	}

	length := ship.spec.Length
	span := Span(anchor, orientation, length)
	if err := checkSpan(grid, span); err != nil {
		if errors.Is(err, cerr.ErrOutOfBounds) {
			return cerr.ErrShipOutOfGridBound(key, anchor.Row, anchor.Col, length)
		}
		return err
	}

	for _, c := range span {
		grid.cells[c.Row][c.Col] = ShipCell(key)
	}
	return fleet.MarkPlaced(key, span)
}

// PlaceRandom draws anchors and orientations until the ship fits, then places
// it. Anchors are drawn from [0, size-length] on both axes.
func PlaceRandom(grid *Grid, fleet *Fleet, key byte, rng Rand) (Coordinates, uint8, error) {
	ship, err := fleet.Ship(key)
	if err != nil {
		return Coordinates{}, 0, err
	}
	if ship.placed {
		return Coordinates{}, 0, cerr.ErrShipPlacedBefore(key)
	}
	length := ship.spec.Length
	if length > grid.size {
		return Coordinates{}, 0, cerr.ErrConfig("ship %q of length %d is longer than the grid size %d", key, length, grid.size)
	}

	for {
		anchor := NewCoordinates(rng.Intn(grid.size-length+1), rng.Intn(grid.size-length+1))
		orientation := uint8(rng.Intn(2))
		if !CanPlace(grid, anchor, orientation, length) {
			continue
		}
		return anchor, orientation, Place(grid, fleet, key, anchor, orientation)
	}
}

// PlaceFleetRandom places every ship still unplaced, in registration order.
func PlaceFleetRandom(grid *Grid, fleet *Fleet, rng Rand) error {
	for _, spec := range fleet.Remaining() {
		if _, _, err := PlaceRandom(grid, fleet, spec.Key, rng); err != nil {
			return err
		}
	}
	return nil
}
