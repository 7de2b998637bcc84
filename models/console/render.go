package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

const bannerRule = "=================================================================="

// Renderer writes everything the player reads.
type Renderer struct {
	w io.Writer
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

func (r *Renderer) Println(a ...any) {
	fmt.Fprintln(r.w, a...)
}

func (r *Renderer) Printf(format string, a ...any) {
	fmt.Fprintf(r.w, format, a...)
}

// Banner prints lines between two rules.
func (r *Renderer) Banner(lines ...string) {
	fmt.Fprintln(r.w, bannerRule)
	for _, line := range lines {
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintln(r.w, bannerRule)
}

// Grid prints g as a table with row and column headers.
func (r *Renderer) Grid(title string, g *mb.Grid) {
	if title != "" {
		fmt.Fprintln(r.w, title)
	}
	fmt.Fprint(r.w, FormatGrid(g))
}

func FormatGrid(g *mb.Grid) string {
	size := g.Size()
	width := len(strconv.Itoa(size - 1))
	pad := func(s string) string {
		return fmt.Sprintf("%*s", width, s)
	}
	segment := strings.Repeat("-", width+2)

	var sb strings.Builder
	border := "+" + strings.Repeat(segment+"+", size+1) + "\n"
	separator := "|" + strings.Repeat(segment+"+", size) + segment + "|\n"

	sb.WriteString(border)
	sb.WriteString("| " + pad("") + " |")
	for col := 0; col < size; col++ {
		sb.WriteString(" " + pad(strconv.Itoa(col)) + " |")
	}
	sb.WriteString("\n")
	sb.WriteString(separator)

	for row := 0; row < size; row++ {
		sb.WriteString("| " + pad(strconv.Itoa(row)) + " |")
		for _, cell := range g.Row(row) {
			sb.WriteString(" " + pad(string(cell.Glyph())) + " |")
		}
		sb.WriteString("\n")
		if row != size-1 {
			sb.WriteString(separator)
		}
	}
	sb.WriteString(border)
	return sb.String()
}

// ShipLabel formats a ship as "Carrier (C)".
func ShipLabel(spec mb.ShipSpec) string {
	return fmt.Sprintf("%s (%c)", spec.Name, spec.Key)
}

func ShipKeys(specs []mb.ShipSpec) string {
	keys := make([]string, 0, len(specs))
	for _, spec := range specs {
		keys = append(keys, string(spec.Key))
	}
	if len(keys) < 2 {
		return strings.Join(keys, "")
	}
	return strings.Join(keys[:len(keys)-1], ", ") + ", or " + keys[len(keys)-1]
}

func (r *Renderer) Remaining(specs []mb.ShipSpec) {
	fmt.Fprintln(r.w, "Remaining pieces to place:")
	for _, spec := range specs {
		fmt.Fprintln(r.w, ShipLabel(spec))
	}
}
