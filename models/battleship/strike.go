package battleship

import (
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
)

const (
	StrikeOutcomeMiss uint8 = iota
	StrikeOutcomeHit
)

type StrikeResult struct {
	Coordinates Coordinates
	Outcome     uint8
	// ShipKey is the key of the ship that was hit; zero on a miss.
	ShipKey byte
}

func (sr StrikeResult) IsHit() bool {
	return sr.Outcome == StrikeOutcomeHit
}

// Strike resolves a strike at c against target and records it on guess.
// Both grids are checked before either is written. A coordinate already
// recorded on guess (or already struck on target) is rejected with
// cerr.ErrAlreadyStruck and leaves both grids untouched.
func Strike(target, guess *Grid, c Coordinates) (StrikeResult, error) {
	if !target.InBounds(c) || !guess.InBounds(c) {
		return StrikeResult{}, cerr.ErrXorYOutOfGridBound(c.Row, c.Col)
	}

	recorded := guess.cells[c.Row][c.Col]
	targetCell := target.cells[c.Row][c.Col]
	if recorded.IsStruck() || targetCell.IsStruck() {
		return StrikeResult{}, cerr.ErrPositionAlreadyStruck(c.Row, c.Col)
	}

	result := StrikeResult{Coordinates: c, Outcome: StrikeOutcomeMiss}
	mark := MissCell()
	if targetCell.IsShip() {
		result.Outcome = StrikeOutcomeHit
		result.ShipKey = targetCell.ShipKey
		mark = HitCell()
	}

	target.cells[c.Row][c.Col] = mark
	guess.cells[c.Row][c.Col] = mark
	return result, nil
}
