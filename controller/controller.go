package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/saeidalz13/battleship-terminal/internal/config"
	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
	"github.com/saeidalz13/battleship-terminal/models/console"
)

type Result struct {
	SessionID string
	Winner    string
	Turns     int
}

// Controller drives one game from placement to the last strike.
type Controller struct {
	cfg  config.Config
	game *mb.Game
	rng  *rand.Rand
	log  zerolog.Logger

	reader io.Reader
	writer io.Writer
	in     *console.Input
	out    *console.Renderer

	userStrategy  mb.TargetingStrategy
	enemyStrategy mb.TargetingStrategy
}

func New(cfg config.Config, optFuncs ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := Controller{
		cfg:    cfg,
		log:    zerolog.Nop(),
		reader: os.Stdin,
		writer: os.Stdout,
	}
	for _, opt := range optFuncs {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}

	if c.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
	c.in = console.NewInput(c.reader, c.writer)
	c.out = console.NewRenderer(c.writer)
	c.game = mb.NewGame(cfg.GridSize, cfg.Fleet, cfg.Automated)
	c.log = c.log.With().Str("session", c.game.Uuid()).Logger()

	if c.userStrategy == nil {
		if cfg.Automated {
			c.userStrategy = mb.NewRandomStrategy(c.rng)
		} else {
			c.userStrategy = console.NewHumanStrategy(c.in)
		}
	}
	if c.enemyStrategy == nil {
		c.enemyStrategy = mb.NewRandomStrategy(c.rng)
	}
	return &c, nil
}

func (c *Controller) Game() *mb.Game {
	return c.game
}

// Run plays the game to its end. The only errors returned wrap
// cerr.ErrSessionAborted or cerr.ErrStrategyExhausted.
func (c *Controller) Run(ctx context.Context) (Result, error) {
	c.out.Printf("Generating %d x %d board\n", c.cfg.GridSize, c.cfg.GridSize)
	if err := c.placeFleets(ctx); err != nil {
		return Result{}, err
	}

	c.out.Banner("We will now begin the game!", "Good luck....")
	user, enemy := c.game.User, c.game.Enemy

gameLoop:
	for {
		c.out.Banner("Users turn")
		if err := c.takeTurn(ctx, user, c.userStrategy); err != nil {
			return Result{}, err
		}
		if c.isOver() {
			break gameLoop
		}

		c.out.Banner("Enemy turn")
		if err := c.takeTurn(ctx, enemy, c.enemyStrategy); err != nil {
			return Result{}, err
		}
		if c.isOver() {
			break gameLoop
		}

		c.out.Grid("----User guess board (X are hits, M are misses)", user.GuessGrid)
		c.out.Grid("----User game board (X are hits, M are misses)", user.Grid)
		if c.cfg.Cheat {
			c.out.Grid("---Enemy game board", enemy.Grid)
		}
		c.game.CompleteRound()
	}

	winner, _ := c.game.Winner()
	result := Result{SessionID: c.game.Uuid(), Winner: winner.Name(), Turns: c.game.Turns()}
	c.log.Info().Str("winner", result.Winner).Int("turns", result.Turns).Msg("game over")
	c.out.Banner(
		" Game over.",
		fmt.Sprintf(" %s won after %d turns.", result.Winner, result.Turns),
		" Please Play Again....",
	)
	return result, nil
}

func (c *Controller) isOver() bool {
	if _, over := c.game.Winner(); over {
		c.game.FinishGame()
		return true
	}
	return false
}

func (c *Controller) placeFleets(ctx context.Context) error {
	user, enemy := c.game.User, c.game.Enemy

	c.out.Println("Placing enemy pieces")
	if err := mb.PlaceFleetRandom(enemy.Grid, enemy.Fleet, c.rng); err != nil {
		return err
	}
	c.logFleet(enemy)

	if c.cfg.RandomUser || c.cfg.Automated {
		c.out.Println("Placing user pieces at random")
		if err := mb.PlaceFleetRandom(user.Grid, user.Fleet, c.rng); err != nil {
			return err
		}
		c.out.Grid("---Generated user board---", user.Grid)
	} else if err := c.placeUserFleet(ctx); err != nil {
		return err
	}
	c.logFleet(user)
	return nil
}

func (c *Controller) logFleet(p *mb.Player) {
	if c.log.GetLevel() > zerolog.DebugLevel {
		return
	}
	for _, ship := range p.Fleet.Ships() {
		c.log.Debug().
			Str("player", p.Name()).
			Str("ship", ship.Spec().Name).
			Interface("cells", ship.Cells()).
			Msg("ship placed")
	}
}

func (c *Controller) placeUserFleet(ctx context.Context) error {
	user := c.game.User
	c.out.Println("Now we will begin by placing your pieces")

	for !user.Fleet.AllPlaced() {
		c.out.Remaining(user.Fleet.Remaining())

		err := c.placeUserShip(ctx)
		if err == nil {
			c.out.Grid("User board so far", user.Grid)
			continue
		}
		if !cerr.IsRecoverable(err) {
			return err
		}
		c.log.Debug().Err(err).Msg("placement rejected")
		c.out.Banner(placementMessage(err))
	}
	return nil
}

func (c *Controller) placeUserShip(ctx context.Context) error {
	user := c.game.User

	selection, err := c.in.ReadLine(ctx, fmt.Sprintf(console.PromptShip, console.ShipKeys(user.Fleet.Remaining())))
	if err != nil {
		return err
	}
	ship, err := user.Fleet.Lookup(selection)
	if err != nil {
		return err
	}
	if ship.IsPlaced() {
		return cerr.ErrShipPlacedBefore(ship.Spec().Key)
	}

	anchor, err := c.in.ReadCoordinates(ctx, console.PromptAnchor)
	if err != nil {
		return err
	}
	orientation, err := c.in.ReadOrientation(ctx)
	if err != nil {
		return err
	}
	return mb.Place(user.Grid, user.Fleet, ship.Spec().Key, anchor, orientation)
}

// takeTurn asks strategy for coordinates until one resolves against the
// opponent. Non interactive strategies get cfg.MaxStrikeAttempts tries.
func (c *Controller) takeTurn(ctx context.Context, attacker *mb.Player, strategy mb.TargetingStrategy) error {
	defender := c.game.Opponent(attacker)
	var attempts int

	for {
		if !strategy.Interactive() {
			if attempts >= c.cfg.MaxStrikeAttempts {
				c.log.Error().Str("player", attacker.Name()).Int("attempts", attempts).Msg("no coordinates left to strike")
				return cerr.ErrAttemptsExhausted(attempts)
			}
			attempts++
		}

		coords, err := strategy.ChooseCoordinates(ctx, c.game.GridSize())
		if err == nil {
			var attack mb.Attack
			attack, err = attacker.Attack(defender, coords)
			if err == nil {
				c.log.Debug().
					Str("player", attacker.Name()).
					Int("row", coords.Row).
					Int("col", coords.Col).
					Bool("hit", attack.IsHit()).
					Int("attempts", attempts).
					Msg("strike")
				c.reportAttack(attacker, attack)
				if c.game.IsAutomated() {
					return nil
				}
				return c.in.Pause(ctx)
			}
		}

		switch {
		case cerr.IsRecoverable(err):
			if strategy.Interactive() {
				c.out.Banner(strikeMessage(err))
			}
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return fmt.Errorf("%w: %s", cerr.ErrSessionAborted, err)
		default:
			return err
		}
	}
}

func (c *Controller) reportAttack(attacker *mb.Player, attack mb.Attack) {
	userAttacks := attacker == c.game.User

	switch {
	case attack.IsHit() && userAttacks:
		c.out.Printf("Hurrah!!\nWe have hit the enemy %s\n", attack.Ship.Name)
	case attack.IsHit():
		c.out.Printf("Oh no!!\nOur %s has been hit\n", attack.Ship.Name)
	case userAttacks:
		c.out.Println("We have missed the enemy!")
	default:
		c.out.Println("The enemy has missed our ships!")
	}

	if !attack.Sunk {
		return
	}
	if userAttacks {
		c.out.Printf("The enemy %s has been sunk!\n", attack.Ship.Name)
	} else {
		c.out.Printf("Our %s has been sunk!\n", attack.Ship.Name)
	}
}

func parseMessage(err error) string {
	return "Sorry, " + strings.TrimPrefix(err.Error(), cerr.ErrParse.Error()+": ")
}

func placementMessage(err error) string {
	switch {
	case errors.Is(err, cerr.ErrUnknownShip):
		return "Sorry, I did not understand your ship selection."
	case errors.Is(err, cerr.ErrShipAlreadyPlaced):
		return "You have already set the coordinates for that ship."
	case errors.Is(err, cerr.ErrOutOfBounds):
		return "Sorry, the starting coordinate you have chosen will not allow\nfor the ship to fit on the board."
	case errors.Is(err, cerr.ErrOverlap):
		return "Sorry, there is a ship in the way."
	default:
		return parseMessage(err)
	}
}

func strikeMessage(err error) string {
	switch {
	case errors.Is(err, cerr.ErrAlreadyStruck):
		return "We have already struck those coordinates."
	case errors.Is(err, cerr.ErrOutOfBounds):
		return "Sorry, those coordinates are not on the board."
	default:
		return parseMessage(err)
	}
}
