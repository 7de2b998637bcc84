package controller

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/rs/zerolog"

	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

type Option func(*Controller) error

func WithIO(r io.Reader, w io.Writer) Option {
	return func(c *Controller) error {
		if r == nil || w == nil {
			return fmt.Errorf("reader and writer must not be nil")
		}
		c.reader = r
		c.writer = w
		return nil
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) error {
		c.log = log
		return nil
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) error {
		c.rng = rng
		return nil
	}
}

// WithUserStrategy replaces the strategy picked from the configuration.
func WithUserStrategy(strategy mb.TargetingStrategy) Option {
	return func(c *Controller) error {
		c.userStrategy = strategy
		return nil
	}
}

func WithEnemyStrategy(strategy mb.TargetingStrategy) Option {
	return func(c *Controller) error {
		c.enemyStrategy = strategy
		return nil
	}
}
