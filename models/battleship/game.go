package battleship

import (
	"github.com/google/uuid"
)

// Game is the state of one user versus enemy session.
type Game struct {
	uuid        string
	isFinished  bool
	isAutomated bool
	gridSize    int
	turns       int
	User        *Player
	Enemy       *Player
}

func NewGame(gridSize int, specs []ShipSpec, isAutomated bool) *Game {
	return &Game{
		uuid:        uuid.NewString(),
		isAutomated: isAutomated,
		gridSize:    gridSize,
		User:        NewPlayer(PlayerNameUser, gridSize, specs),
		Enemy:       NewPlayer(PlayerNameEnemy, gridSize, specs),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) GridSize() int {
	return g.gridSize
}

func (g *Game) IsAutomated() bool {
	return g.isAutomated
}

func (g *Game) Turns() int {
	return g.turns
}

// CompleteRound is called once both players struck in a round.
func (g *Game) CompleteRound() {
	g.turns++
}

func (g *Game) FinishGame() {
	g.isFinished = true
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

// Winner checks both fleets and returns the winning player, if any. Should
// both fleets be sunk at once, the user wins.
func (g *Game) Winner() (*Player, bool) {
	if g.Enemy.IsLoser() {
		return g.User, true
	}
	if g.User.IsLoser() {
		return g.Enemy, true
	}
	return nil, false
}

// Opponent returns the other player of the game.
func (g *Game) Opponent(p *Player) *Player {
	if p == g.User {
		return g.Enemy
	}
	return g.User
}
