package controller

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saeidalz13/battleship-terminal/internal/config"
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

// scriptedStrategy strikes the given coordinates in order and keeps
// repeating the last one.
type scriptedStrategy struct {
	coords []mb.Coordinates
	next   int
}

func (ss *scriptedStrategy) ChooseCoordinates(ctx context.Context, gridSize int) (mb.Coordinates, error) {
	c := ss.coords[min(ss.next, len(ss.coords)-1)]
	ss.next++
	return c, nil
}

func (ss *scriptedStrategy) Interactive() bool {
	return false
}

func testConfig(mutate func(*config.Config)) config.Config {
	cfg := config.Default()
	cfg.Seed = 1
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(testConfig(func(c *config.Config) { c.GridSize = 3 }))
	require.ErrorIs(t, err, cerr.ErrInvalidConfig)

	_, err = New(testConfig(nil), WithIO(nil, nil))
	require.Error(t, err)
}

func TestRunAutomated(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		var out bytes.Buffer
		cfg := testConfig(func(c *config.Config) {
			c.Automated = true
			c.RandomUser = true
			c.Cheat = true
		})
		ctrl, err := New(cfg, WithIO(strings.NewReader(""), &out), WithRand(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)

		result, err := ctrl.Run(context.Background())
		require.NoError(t, err)

		game := ctrl.Game()
		require.True(t, game.IsFinished())
		require.Equal(t, game.Uuid(), result.SessionID)
		require.Equal(t, game.Turns(), result.Turns)

		winner, over := game.Winner()
		require.True(t, over)
		require.Equal(t, winner.Name(), result.Winner)
		loser := game.Opponent(winner)
		require.True(t, loser.IsLoser())
		require.False(t, winner.IsLoser())
		require.Equal(t, 17, loser.Grid.Count(mb.Cell.IsHit))

		userStrikes := game.User.GuessGrid.Count(mb.Cell.IsStruck)
		enemyStrikes := game.Enemy.GuessGrid.Count(mb.Cell.IsStruck)
		if winner == game.User {
			require.Equal(t, userStrikes-1, enemyStrikes)
		} else {
			require.Equal(t, userStrikes, enemyStrikes)
		}
		require.Equal(t, enemyStrikes, result.Turns+boolToInt(winner == game.Enemy))

		require.Equal(t, 0, game.User.GuessGrid.Count(mb.Cell.IsShip))
		require.Contains(t, out.String(), "won after")
		require.Contains(t, out.String(), "---Enemy game board")
		require.NotContains(t, out.String(), "Press enter")
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func TestRunManualPlacementAndStrikes(t *testing.T) {
	const size = 4
	cfg := testConfig(func(c *config.Config) {
		c.GridSize = size
		c.Fleet = []mb.ShipSpec{{Key: 'd', Name: "Destroyer", Length: 2}}
		c.Quiet = true
	})

	var script []string
	script = append(script,
		"z",             // unknown ship
		"d", "3,3", "0", // does not fit
		"d", "0,0", "2", // bad orientation
		"d", "0,0", "0", // placed on (0,0) and (0,1)
	)
	script = append(script, "a,b", "7,7")

	var cells []mb.Coordinates
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			cells = append(cells, mb.NewCoordinates(r, c))
		}
	}
	for i, cell := range cells {
		if i == 1 {
			script = append(script, "0,0")
		}
		script = append(script, fmt.Sprintf("%d,%d", cell.Row, cell.Col), "", "")
	}

	// the enemy keeps away from the user's destroyer until the very end
	enemy := &scriptedStrategy{}
	for _, cell := range cells {
		if cell.Row != 0 || cell.Col > 1 {
			enemy.coords = append(enemy.coords, cell)
		}
	}
	enemy.coords = append(enemy.coords, mb.NewCoordinates(0, 0))

	var out bytes.Buffer
	ctrl, err := New(cfg,
		WithIO(strings.NewReader(strings.Join(script, "\n")+"\n"), &out),
		WithEnemyStrategy(enemy),
	)
	require.NoError(t, err)

	result, err := ctrl.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, mb.PlayerNameUser, result.Winner)

	game := ctrl.Game()
	for _, c := range []mb.Coordinates{{Row: 0, Col: 0}, {Row: 0, Col: 1}} {
		cell, err := game.User.Grid.Get(c)
		require.NoError(t, err)
		require.False(t, cell.IsEmpty())
	}
	require.Equal(t, game.User.GuessGrid.Count(mb.Cell.IsStruck)-1, result.Turns)

	output := out.String()
	for _, expected := range []string{
		"Sorry, I did not understand your ship selection.",
		"will not allow\nfor the ship to fit on the board.",
		"orientation must be 0 (horizontal) or 1 (vertical)",
		"User board so far",
		"must give two comma separated integers",
		"Sorry, those coordinates are not on the board.",
		"We have already struck those coordinates.",
		"We have hit the enemy Destroyer",
		"The enemy Destroyer has been sunk!",
		"User won after",
	} {
		require.Contains(t, output, expected)
	}
}

func TestRunExit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "at ship selection", input: "exit\n"},
		{name: "at anchor", input: "C\nexit\n"},
		{name: "at orientation", input: "C\n0,0\nexit\n"},
		{name: "input closed", input: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl, err := New(testConfig(nil), WithIO(strings.NewReader(test.input), &bytes.Buffer{}))
			require.NoError(t, err)

			_, err = ctrl.Run(context.Background())
			require.ErrorIs(t, err, cerr.ErrSessionAborted)
			require.False(t, ctrl.Game().IsFinished())
		})
	}
}

func TestRunExitAtStrike(t *testing.T) {
	cfg := testConfig(func(c *config.Config) { c.RandomUser = true })
	ctrl, err := New(cfg, WithIO(strings.NewReader("0,0\n\n\nexit\n"), &bytes.Buffer{}))
	require.NoError(t, err)

	_, err = ctrl.Run(context.Background())
	require.ErrorIs(t, err, cerr.ErrSessionAborted)
	require.Equal(t, 1, ctrl.Game().User.GuessGrid.Count(mb.Cell.IsStruck))
	require.Equal(t, 1, ctrl.Game().Enemy.GuessGrid.Count(mb.Cell.IsStruck))
}

func TestRunStrategyExhausted(t *testing.T) {
	cfg := testConfig(func(c *config.Config) {
		c.Automated = true
		c.RandomUser = true
		c.MaxStrikeAttempts = 3
	})
	stubborn := &scriptedStrategy{coords: []mb.Coordinates{{Row: 1, Col: 1}}}
	ctrl, err := New(cfg, WithIO(strings.NewReader(""), &bytes.Buffer{}), WithUserStrategy(stubborn))
	require.NoError(t, err)

	_, err = ctrl.Run(context.Background())
	require.ErrorIs(t, err, cerr.ErrStrategyExhausted)
	require.Equal(t, 4, stubborn.next)
}

func TestRunCancelled(t *testing.T) {
	cfg := testConfig(func(c *config.Config) {
		c.Automated = true
		c.RandomUser = true
	})
	ctrl, err := New(cfg, WithIO(strings.NewReader(""), &bytes.Buffer{}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ctrl.Run(ctx)
	require.ErrorIs(t, err, cerr.ErrSessionAborted)
}
