package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/connect4/internal/domain"
)

func symbols(c domain.Chip) rune {
	switch c {
	case domain.Player1:
		return 'o'
	case domain.Player2:
		return '*'
	}
	return ' '
}

func TestRenderBoard(t *testing.T) {
	b, err := domain.NewBoard(5, 5)
	require.NoError(t, err)
	b.Insert(1, domain.Player1)
	b.Insert(2, domain.Player2)
	b.Insert(2, domain.Player1)

	var buf bytes.Buffer
	RenderBoard(&buf, b, symbols)

	want := " 1 2 3 4 5\n" +
		"║ ║ ║ ║ ║ ║\n" +
		"║ ║ ║ ║ ║ ║\n" +
		"║ ║ ║ ║ ║ ║\n" +
		"║ ║o║ ║ ║ ║\n" +
		"║o║*║ ║ ║ ║\n" +
		"╚═╩═╩═╩═╩═╝\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderBoardSizes(t *testing.T) {
	b, err := domain.NewBoard(9, 6)
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderBoard(&buf, b, symbols)

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 8)
	assert.Equal(t, " 1 2 3 4 5 6 7 8 9", string(lines[0]))
	assert.Equal(t, "╚═╩═╩═╩═╩═╩═╩═╩═╩═╝", string(lines[7]))
}

func TestRenderScore(t *testing.T) {
	var buf bytes.Buffer
	RenderScore(&buf, domain.Player{Name: "Anna", Score: 3}, domain.Player{Name: "Joan", Score: 1})
	assert.Equal(t, "Score\nAnna: 3 Joan: 1\n", buf.String())
}
