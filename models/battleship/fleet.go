package battleship

import (
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

// Fleet is the catalog of ships of one player, kept in registration order.
type Fleet struct {
	order []byte
	ships map[byte]*Ship
}

func NewFleet(specs []ShipSpec) *Fleet {
	f := &Fleet{
		order: make([]byte, 0, len(specs)),
		ships: make(map[byte]*Ship, len(specs)),
	}
	for _, spec := range specs {
		// duplicates are rejected by config validation before we get here
		_ = f.Register(spec)
	}
	return f
}

func (f *Fleet) Register(spec ShipSpec) error {
	if _, prs := f.ships[spec.Key]; prs {
		return cerr.ErrConfig("ship key %q registered twice", spec.Key)
	}
	f.order = append(f.order, spec.Key)
	f.ships[spec.Key] = NewShip(spec)
	return nil
}

func (f *Fleet) Ship(key byte) (*Ship, error) {
	ship, prs := f.ships[key]
	if !prs {
		return nil, cerr.ErrShipNotExists(string(key))
	}
	return ship, nil
}

// Lookup resolves raw user input such as "C" to a ship of the fleet.
func (f *Fleet) Lookup(input string) (*Ship, error) {
	if len(input) != 1 {
		return nil, cerr.ErrShipNotExists(input)
	}
	return f.Ship(input[0])
}

func (f *Fleet) MarkPlaced(key byte, cells []Coordinates) error {
	ship, err := f.Ship(key)
	if err != nil {
		return err
	}
	if ship.placed {
		return cerr.ErrShipPlacedBefore(key)
	}
	ship.cells = make([]Coordinates, len(cells))
	copy(ship.cells, cells)
	ship.placed = true
	return nil
}

// Ships returns the ships in registration order.
func (f *Fleet) Ships() []*Ship {
	ships := make([]*Ship, 0, len(f.order))
	for _, key := range f.order {
		ships = append(ships, f.ships[key])
	}
	return ships
}

// Remaining returns the specs of ships not yet placed, in registration order.
func (f *Fleet) Remaining() []ShipSpec {
	var specs []ShipSpec
	for _, ship := range f.Ships() {
		if !ship.placed {
			specs = append(specs, ship.spec)
		}
	}
	return specs
}

func (f *Fleet) AllPlaced() bool {
	return len(f.ships) > 0 && len(f.Remaining()) == 0
}

func (f *Fleet) TotalLength() int {
	var total int
	for _, ship := range f.ships {
		total += ship.spec.Length
	}
	return total
}

func (f *Fleet) IsShipSunk(key byte, grid *Grid) bool {
	ship, err := f.Ship(key)
	if err != nil {
		return false
	}
	return ship.IsSunk(grid)
}

// SunkenShips counts the ships of the fleet that are sunk on grid.
func (f *Fleet) SunkenShips(grid *Grid) int {
	var n int
	for _, ship := range f.ships {
		if ship.IsSunk(grid) {
			n++
		}
	}
	return n
}

// IsFleetSunk reports whether every registered ship is placed and sunk on
// grid. A fleet that is not fully placed is never sunk.
func (f *Fleet) IsFleetSunk(grid *Grid) bool {
	if !f.AllPlaced() {
		return false
	}
	return f.SunkenShips(grid) == len(f.ships)
}
