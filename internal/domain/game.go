package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Player is one side of the game. Score only grows through round outcomes.
type Player struct {
	Name   string
	Symbol rune
	Score  int
}

// Outcome describes what one accepted move did.
type Outcome struct {
	Column   int
	Row      int
	Mover    Chip
	Round    int
	Result   Result
	NewRound bool
	Status   GameStatus
	// Final is a copy of the board as the round ended, taken before any
	// reset for the next round. Nil unless Result is ResultWin or ResultDraw.
	Final *Board
}

type Game struct {
	board       *Board
	players     [2]Player
	turn        Chip
	status      GameStatus
	round       int
	totalRounds int
}

func NewGame(first, second Player) (*Game, error) {
	for _, p := range []Player{first, second} {
		if strings.TrimSpace(p.Name) == "" || p.Symbol == 0 || unicode.IsSpace(p.Symbol) {
			return nil, ErrInvalidPlayers
		}
	}
	if first.Symbol == second.Symbol {
		return nil, fmt.Errorf("%w: both players use %q", ErrInvalidPlayers, first.Symbol)
	}
	first.Score, second.Score = 0, 0

	return &Game{
		players:     [2]Player{first, second},
		turn:        Player1,
		status:      StatusRunning,
		round:       1,
		totalRounds: 1,
	}, nil
}

// ApplyDimensions configures the board from "<rows> x <columns>". A blank
// spec selects the default 6 x 7 board. On error the current board is kept.
func (g *Game) ApplyDimensions(spec string) error {
	rows, cols, err := ParseDimensions(spec)
	if err != nil {
		return err
	}
	board, err := NewBoard(cols, rows)
	if err != nil {
		return err
	}
	g.board = board
	return nil
}

// ApplyGameCount sets the number of rounds. A blank spec means a single game.
func (g *Game) ApplyGameCount(spec string) error {
	n, err := ParseGameCount(spec)
	if err != nil {
		return err
	}
	g.totalRounds = n
	return nil
}

// ApplyMove plays one line of input for the current player. Rejected input
// leaves the game untouched.
func (g *Game) ApplyMove(input string) (Outcome, error) {
	if g.board == nil {
		return Outcome{}, ErrNotConfigured
	}
	if g.IsOver() {
		return Outcome{}, ErrGameOver
	}

	// input is matched as given; " end" or "3 " are not moves
	if input == "end" {
		g.status = StatusCancelled
		return Outcome{Mover: g.turn, Round: g.round, Result: ResultCancelled, Status: g.status}, nil
	}

	col, err := parseInt(input)
	if err != nil {
		return Outcome{}, ErrIncorrectColumn
	}
	if col < 1 || col > g.board.Width() {
		return Outcome{}, fmt.Errorf("%w (1 - %d)", ErrColumnOutOfRange, g.board.Width())
	}
	if g.board.ColumnFull(col) {
		return Outcome{}, fmt.Errorf("column %d: %w", col, ErrColumnFull)
	}

	row, _ := g.board.Insert(col, g.turn)
	out := Outcome{Column: col, Row: row, Mover: g.turn, Round: g.round}

	if HasFourInARow(g.board) {
		g.status = StatusWon
		g.player(g.turn).Score += 2
		out.Result = ResultWin
	} else if g.board.IsFull() {
		g.status = StatusDraw
		g.players[0].Score++
		g.players[1].Score++
		out.Result = ResultDraw
	}

	if out.Result == ResultWin || out.Result == ResultDraw {
		final := *g.board
		out.Final = &final
	}

	if (g.status == StatusWon || g.status == StatusDraw) && g.totalRounds > 1 {
		if g.round+1 > g.totalRounds {
			g.status = StatusAllRoundsDone
		} else {
			g.round++
			g.board.Reset()
			g.status = StatusRunning
			out.NewRound = true
		}
	}

	// the turn always passes, even once the game has ended
	g.turn = g.turn.Opponent()

	out.Status = g.status
	return out, nil
}

// IsActive reports whether the driver should keep asking for input. In a
// series, a cancelled game still counts as active; use IsOver to stop.
func (g *Game) IsActive() bool {
	if g.totalRounds == 1 {
		return g.status == StatusRunning
	}
	return g.status != StatusAllRoundsDone
}

// IsOver reports whether no further move will be accepted.
func (g *Game) IsOver() bool {
	return g.status == StatusCancelled || !g.IsActive()
}

func (g *Game) Configured() bool { return g.board != nil }

func (g *Game) Board() *Board { return g.board }

func (g *Game) Rows() int {
	if g.board == nil {
		return 0
	}
	return g.board.Height()
}

func (g *Game) Columns() int {
	if g.board == nil {
		return 0
	}
	return g.board.Width()
}

func (g *Game) Status() GameStatus { return g.status }
func (g *Game) Turn() Chip         { return g.turn }
func (g *Game) Round() int         { return g.round }
func (g *Game) TotalRounds() int   { return g.totalRounds }

// Player returns a copy of the player owning chip. Empty yields the zero value.
func (g *Game) Player(chip Chip) Player {
	if !chip.Valid() {
		return Player{}
	}
	return *g.player(chip)
}

func (g *Game) Players() (Player, Player) {
	return g.players[0], g.players[1]
}

func (g *Game) CurrentPlayer() Player {
	return *g.player(g.turn)
}

// Symbol maps a chip to the owning player's symbol, or a space for Empty.
func (g *Game) Symbol(chip Chip) rune {
	if !chip.Valid() {
		return ' '
	}
	return g.player(chip).Symbol
}

func (g *Game) player(chip Chip) *Player {
	return &g.players[chip-1]
}
