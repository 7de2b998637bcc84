package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

// ExitSentinel typed at any prompt ends the session.
const ExitSentinel = "exit"

const (
	PromptShip        = "Which ship would you like to add? (%s) "
	PromptAnchor      = "Input the coordinates to anchor ship on. "
	PromptOrientation = "Input direction which the ship will assume.\nHorizontal (0), or Vertical (1). "
	PromptStrike      = "Input coordinates to strike. "
	PromptContinue    = "Press enter to continue...."
)

type Input struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewInput(r io.Reader, w io.Writer) *Input {
	return &Input{scanner: bufio.NewScanner(r), out: w}
}

// ReadLine writes prompt and returns the next trimmed line. The exit
// sentinel, a closed input and a done context all yield
// cerr.ErrSessionAborted.
func (in *Input) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %s", cerr.ErrSessionAborted, err)
	}

	fmt.Fprint(in.out, prompt)
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", fmt.Errorf("%w: %s", cerr.ErrSessionAborted, err)
		}
		return "", fmt.Errorf("%w: input closed", cerr.ErrSessionAborted)
	}

	line := strings.TrimSpace(in.scanner.Text())
	if line == ExitSentinel {
		return "", cerr.ErrSessionAborted
	}
	return line, nil
}

func (in *Input) ReadCoordinates(ctx context.Context, prompt string) (mb.Coordinates, error) {
	line, err := in.ReadLine(ctx, prompt)
	if err != nil {
		return mb.Coordinates{}, err
	}
	return mb.ParseCoordinates(line)
}

func (in *Input) ReadOrientation(ctx context.Context) (uint8, error) {
	line, err := in.ReadLine(ctx, PromptOrientation)
	if err != nil {
		return 0, err
	}
	return mb.ParseOrientation(line)
}

// Pause waits for the user to acknowledge what was just printed.
func (in *Input) Pause(ctx context.Context) error {
	_, err := in.ReadLine(ctx, PromptContinue)
	return err
}

// HumanStrategy reads strike coordinates from the user.
type HumanStrategy struct {
	in *Input
}

var _ mb.TargetingStrategy = (*HumanStrategy)(nil)

func NewHumanStrategy(in *Input) *HumanStrategy {
	return &HumanStrategy{in: in}
}

func (hs *HumanStrategy) ChooseCoordinates(ctx context.Context, gridSize int) (mb.Coordinates, error) {
	return hs.in.ReadCoordinates(ctx, PromptStrike)
}

func (hs *HumanStrategy) Interactive() bool {
	return true
}
