package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFrom builds a board from rows drawn top to bottom, using '1' and '2'
// for the players and '.' for empty cells.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows[0]), len(rows))
	require.NoError(t, err)
	for col := 1; col <= b.Width(); col++ {
		for r := len(rows) - 1; r >= 0; r-- {
			switch rows[r][col-1] {
			case '1':
				_, ok := b.Insert(col, Player1)
				require.True(t, ok)
			case '2':
				_, ok := b.Insert(col, Player2)
				require.True(t, ok)
			}
		}
	}
	return b
}

func TestWinnerDetectsEveryDirection(t *testing.T) {
	tests := []struct {
		name   string
		rows   []string
		winner Chip
	}{
		{
			name: "horizontal",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				"..2221.",
				"..1111.",
			},
			winner: Player1,
		},
		{
			name: "vertical",
			rows: []string{
				".......",
				".......",
				"......2",
				"......2",
				"1.1...2",
				"1.1...2",
			},
			winner: Player2,
		},
		{
			name: "diagonal up",
			rows: []string{
				".......",
				".......",
				"...1...",
				"..12...",
				".122...",
				"1212...",
			},
			winner: Player1,
		},
		{
			name: "diagonal down",
			rows: []string{
				".......",
				".......",
				"2......",
				"12.....",
				"112....",
				"1212...",
			},
			winner: Player2,
		},
		{
			name: "five in a row",
			rows: []string{
				".....",
				".....",
				".....",
				"22.22",
				"11111",
			},
			winner: Player1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, tc.rows...)
			chip, ok := Winner(b)
			require.True(t, ok)
			assert.Equal(t, tc.winner, chip)
			assert.True(t, HasFourInARow(b))
		})
	}
}

func TestWinnerIgnoresIncompleteLines(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{
			name: "three in a row",
			rows: []string{
				".......",
				".......",
				".......",
				"2......",
				"2......",
				"111.2..",
			},
		},
		{
			name: "broken by empty cell",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"11.11..",
			},
		},
		{
			name: "mixed chips",
			rows: []string{
				".......",
				".......",
				"1......",
				"1......",
				"2......",
				"1112...",
			},
		},
		{
			name: "line wrapping across the right edge",
			rows: []string{
				".....",
				".....",
				".....",
				"1...1",
				"2..11",
			},
		},
		{
			name: "empty board",
			rows: []string{
				".....",
				".....",
				".....",
				".....",
				".....",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, tc.rows...)
			assert.False(t, HasFourInARow(b))
		})
	}
}

func TestWinsAtAgreesWithFullScan(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		"...1...",
		"..12...",
		".122...",
		"1212...",
	)
	// the winning diagonal runs (1,0) -> (4,3)
	for i := 0; i < 4; i++ {
		assert.True(t, WinsAt(b, 1+i, i))
	}
	assert.False(t, WinsAt(b, 2, 0))
	assert.False(t, WinsAt(b, 7, 5))
}
