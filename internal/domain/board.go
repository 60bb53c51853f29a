package domain

// column is a fixed-capacity stack of chips, filled from the bottom.
type column struct {
	chips  [MaxSize]Chip
	filled int
}

// Board holds width columns of up to height chips each. Columns are
// addressed 1..width and rows 0..height-1 from the bottom.
type Board struct {
	width   int
	height  int
	columns [MaxSize]column
	count   int
}

func NewBoard(width, height int) (*Board, error) {
	if width < MinSize || width > MaxSize || height < MinSize || height > MaxSize {
		return nil, ErrInvalidDimensions
	}
	return &Board{width: width, height: height}, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Count returns the number of chips on the board.
func (b *Board) Count() int { return b.count }

// Insert drops chip on top of the given column and returns the row it landed
// on. It does nothing and returns ok=false when the column is out of range or
// already full.
func (b *Board) Insert(col int, chip Chip) (int, bool) {
	if !chip.Valid() || col < 1 || col > b.width {
		return -1, false
	}
	c := &b.columns[col-1]
	if c.filled >= b.height {
		return -1, false
	}
	row := c.filled
	c.chips[row] = chip
	c.filled++
	b.count++
	return row, true
}

// ChipAt is safe for any coordinates; cells outside the board read as Empty.
// The win scan relies on this to probe past the edges.
func (b *Board) ChipAt(col, row int) Chip {
	if col < 1 || col > b.width || row < 0 || row >= b.height {
		return Empty
	}
	c := &b.columns[col-1]
	if row >= c.filled {
		return Empty
	}
	return c.chips[row]
}

func (b *Board) ColumnFull(col int) bool {
	if col < 1 || col > b.width {
		return false
	}
	return b.columns[col-1].filled >= b.height
}

func (b *Board) IsFull() bool {
	return b.count == b.width*b.height
}

// Reset empties every column and keeps the dimensions.
func (b *Board) Reset() {
	b.columns = [MaxSize]column{}
	b.count = 0
}
