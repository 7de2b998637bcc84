package battleship

import "context"

// TargetingStrategy chooses where a player strikes next.
type TargetingStrategy interface {
	ChooseCoordinates(ctx context.Context, gridSize int) (Coordinates, error)
	// Interactive strategies are re-prompted without limit; the others
	// are bound by a retry cap.
	Interactive() bool
}

// RandomStrategy draws coordinates uniformly, previously struck ones
// included.
type RandomStrategy struct {
	rng Rand
}

var _ TargetingStrategy = (*RandomStrategy)(nil)

func NewRandomStrategy(rng Rand) *RandomStrategy {
	return &RandomStrategy{rng: rng}
}

func (rs *RandomStrategy) ChooseCoordinates(ctx context.Context, gridSize int) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	return NewCoordinates(rs.rng.Intn(gridSize), rs.rng.Intn(gridSize)), nil
}

func (rs *RandomStrategy) Interactive() bool {
	return false
}
