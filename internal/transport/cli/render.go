package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/connect4/internal/domain"
)

// RenderBoard draws the board top row first, with column numbers above and a
// closing border below:
//
//	 1 2 3 4 5
//	║ ║ ║ ║ ║ ║
//	║o║*║ ║ ║ ║
//	╚═╩═╩═╩═╩═╝
func RenderBoard(w io.Writer, b *domain.Board, symbol func(domain.Chip) rune) {
	var sb strings.Builder

	for col := 1; col <= b.Width(); col++ {
		fmt.Fprintf(&sb, " %d", col)
	}
	sb.WriteByte('\n')

	for row := b.Height() - 1; row >= 0; row-- {
		sb.WriteString("║")
		for col := 1; col <= b.Width(); col++ {
			sb.WriteRune(symbol(b.ChipAt(col, row)))
			sb.WriteString("║")
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("╚")
	sb.WriteString(strings.Repeat("═╩", b.Width()-1))
	sb.WriteString("═╝\n")

	io.WriteString(w, sb.String())
}

// RenderScore prints the running totals of a series.
func RenderScore(w io.Writer, first, second domain.Player) {
	fmt.Fprintln(w, "Score")
	fmt.Fprintf(w, "%s: %d %s: %d\n", first.Name, first.Score, second.Name, second.Score)
}
