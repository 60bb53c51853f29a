package domain

// direction is a step along one of the four axes a line can run on.
type direction struct{ dc, dr int }

var directions = [...]direction{
	{1, 0},  // horizontal
	{0, 1},  // vertical
	{1, 1},  // diagonal "/"
	{1, -1}, // diagonal "\"
}

// HasFourInARow reports whether any player has four chips in a line anywhere
// on the board.
func HasFourInARow(b *Board) bool {
	_, ok := Winner(b)
	return ok
}

// Winner scans the whole board and returns the chip of the first complete
// line it finds.
func Winner(b *Board) (Chip, bool) {
	for col := 1; col <= b.Width(); col++ {
		for row := 0; row < b.Height(); row++ {
			chip := b.ChipAt(col, row)
			if chip == Empty {
				// columns have no gaps
				break
			}
			if WinsAt(b, col, row) {
				return chip, true
			}
		}
	}
	return Empty, false
}

// WinsAt checks every window of four cells that passes through (col, row).
// Windows may hang off the board; those cells read as Empty and never match.
func WinsAt(b *Board, col, row int) bool {
	for _, d := range directions {
		for offset := -(ToWin - 1); offset <= 0; offset++ {
			if sameChip(b, col+offset*d.dc, row+offset*d.dr, d) {
				return true
			}
		}
	}
	return false
}

// sameChip reports whether the window starting at (col, row) along d holds
// ToWin identical player chips.
func sameChip(b *Board, col, row int, d direction) bool {
	first := b.ChipAt(col, row)
	if !first.Valid() {
		return false
	}
	for i := 1; i < ToWin; i++ {
		if b.ChipAt(col+i*d.dc, row+i*d.dr) != first {
			return false
		}
	}
	return true
}
