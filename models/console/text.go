package console

import (
	"fmt"
	"strings"

	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

const Flags = `
Flags:
    -h --help            help page
    -r --random-user     generate a random user board
    -c --cheat           print enemy board to speed up game
    -q --quiet           suppress intro message
    -a --automated       automated gameplay
       --size N          board size (default 10)
       --seed N          random seed (default: time based)
       --fleet FILE      fleet catalog yaml file
       --log-level LVL   diagnostics level on stderr (default warn)
`

const introHead = `
Welcome to battleship.
You play against an enemy cpu that places its ships and takes its
shots fully at random.
Unless the -r flag is given you will be asked where to anchor each of
your ships. The ships available are:
`

const introTail = `
Coordinates are given as row and column separated by a single comma,
zero based: 1,2 is row 1 and column 2.
On the boards 0 is an empty space, M is a miss, X is a hit and any
other character is the key of a ship.

Type exit at any prompt to leave the game.

Good luck...
`

// Intro returns the welcome text with a table of the fleet.
func Intro(specs []mb.ShipSpec) string {
	var sb strings.Builder
	sb.WriteString(introHead)
	sb.WriteString("\n")
	sb.WriteString(FleetTable(specs))
	sb.WriteString(introTail)
	return sb.String()
}

func FleetTable(specs []mb.ShipSpec) string {
	nameWidth := len("Name")
	for _, spec := range specs {
		nameWidth = max(nameWidth, len(spec.Name))
	}

	rule := fmt.Sprintf("+-%s-+-----+--------+\n", strings.Repeat("-", nameWidth))
	var sb strings.Builder
	sb.WriteString(rule)
	sb.WriteString(fmt.Sprintf("| %-*s | Key | Length |\n", nameWidth, "Name"))
	sb.WriteString(rule)
	for _, spec := range specs {
		sb.WriteString(fmt.Sprintf("| %-*s | %-3c | %-6d |\n", nameWidth, spec.Name, spec.Key, spec.Length))
		sb.WriteString(rule)
	}
	return sb.String()
}
