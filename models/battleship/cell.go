package battleship

const (
	CellStateEmpty uint8 = iota
	CellStateShip
	CellStateHit
	CellStateMiss
)

// Glyphs used when a grid is rendered. Ship cells render as their ship key.
const (
	GlyphEmpty byte = '0'
	GlyphHit   byte = 'X'
	GlyphMiss  byte = 'M'
)

// Cell is one position of a grid. ShipKey is only meaningful when State is
// CellStateShip.
type Cell struct {
	State   uint8
	ShipKey byte
}

func EmptyCell() Cell {
	return Cell{State: CellStateEmpty}
}

func ShipCell(key byte) Cell {
	return Cell{State: CellStateShip, ShipKey: key}
}

func HitCell() Cell {
	return Cell{State: CellStateHit}
}

func MissCell() Cell {
	return Cell{State: CellStateMiss}
}

func (c Cell) IsEmpty() bool {
	return c.State == CellStateEmpty
}

func (c Cell) IsShip() bool {
	return c.State == CellStateShip
}

func (c Cell) IsHit() bool {
	return c.State == CellStateHit
}

// IsStruck reports whether the cell was already resolved by a strike.
// Struck cells never change again.
func (c Cell) IsStruck() bool {
	return c.State == CellStateHit || c.State == CellStateMiss
}

func (c Cell) Glyph() byte {
	switch c.State {
	case CellStateShip:
		return c.ShipKey
	case CellStateHit:
		return GlyphHit
	case CellStateMiss:
		return GlyphMiss
	default:
		return GlyphEmpty
	}
}
