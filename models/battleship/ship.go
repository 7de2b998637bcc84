package battleship

// ShipSpec describes a kind of ship. Specs are shared by both players and
// never change once the game starts.
type ShipSpec struct {
	Key    byte
	Name   string
	Length int
}

const (
	ShipKeyCarrier    byte = 'C'
	ShipKeyBattleship byte = 'b'
	ShipKeyCruiser    byte = 'c'
	ShipKeySubmarine  byte = 's'
	ShipKeyDestroyer  byte = 'd'
)

// CanonicalFleet returns the standard five ships in placement order.
func CanonicalFleet() []ShipSpec {
	return []ShipSpec{
		{Key: ShipKeyCarrier, Name: "Carrier", Length: 5},
		{Key: ShipKeyBattleship, Name: "Battleship", Length: 4},
		{Key: ShipKeyCruiser, Name: "Cruiser", Length: 3},
		{Key: ShipKeySubmarine, Name: "Submarine", Length: 3},
		{Key: ShipKeyDestroyer, Name: "Destroyer", Length: 2},
	}
}

// Ship is the placement state of one ship of a player. It is only mutated
// while the ship is being placed.
type Ship struct {
	spec   ShipSpec
	placed bool
	cells  []Coordinates
}

func NewShip(spec ShipSpec) *Ship {
	return &Ship{spec: spec}
}

func (sh *Ship) Spec() ShipSpec {
	return sh.spec
}

func (sh *Ship) IsPlaced() bool {
	return sh.placed
}

func (sh *Ship) Cells() []Coordinates {
	cells := make([]Coordinates, len(sh.cells))
	copy(cells, sh.cells)
	return cells
}

// IsSunk reports whether every cell of a placed ship is a hit on grid.
func (sh *Ship) IsSunk(grid *Grid) bool {
	if !sh.placed {
		return false
	}
	for _, c := range sh.cells {
		cell, err := grid.Get(c)
		if err != nil || !cell.IsHit() {
			return false
		}
	}
	return true
}
