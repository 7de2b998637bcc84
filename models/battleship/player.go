package battleship

const (
	PlayerNameUser  = "User"
	PlayerNameEnemy = "Enemy"
)

type Player struct {
	name string
	// Grid holds the player's own ships and the strikes received.
	Grid *Grid
	// GuessGrid records the outcome of the player's strikes. It never
	// holds ship cells.
	GuessGrid *Grid
	Fleet     *Fleet
}

func NewPlayer(name string, gridSize int, specs []ShipSpec) *Player {
	return &Player{
		name:      name,
		Grid:      NewGrid(gridSize),
		GuessGrid: NewGrid(gridSize),
		Fleet:     NewFleet(specs),
	}
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) IsLoser() bool {
	return p.Fleet.IsFleetSunk(p.Grid)
}

// Attack is a strike of p against defender, enriched with what was hit.
type Attack struct {
	StrikeResult
	Ship ShipSpec
	Sunk bool
}

func (p *Player) Attack(defender *Player, c Coordinates) (Attack, error) {
	result, err := Strike(defender.Grid, p.GuessGrid, c)
	if err != nil {
		return Attack{}, err
	}

	attack := Attack{StrikeResult: result}
	if result.IsHit() {
		if ship, err := defender.Fleet.Ship(result.ShipKey); err == nil {
			attack.Ship = ship.Spec()
			attack.Sunk = ship.IsSunk(defender.Grid)
		}
	}
	return attack, nil
}
