package domain

import "errors"

// Chip is the content of one board cell. Player1 and Player2 double as the
// turn tag of the game.
type Chip int

const (
	Empty   Chip = 0
	Player1 Chip = 1
	Player2 Chip = 2
)

// Opponent returns the other player's chip. Empty maps to Empty.
func (c Chip) Opponent() Chip {
	switch c {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (c Chip) Valid() bool {
	return c == Player1 || c == Player2
}

// for board representation
const (
	MinSize        = 5
	MaxSize        = 9
	DefaultRows    = 6
	DefaultColumns = 7
	ToWin          = 4
)

// to represent the game status
type GameStatus string

const (
	StatusRunning       GameStatus = "running"
	StatusWon           GameStatus = "won"
	StatusDraw          GameStatus = "draw"
	StatusCancelled     GameStatus = "cancelled"
	StatusAllRoundsDone GameStatus = "all_rounds_done"
)

func (s GameStatus) String() string {
	return string(s)
}

// Result tells the caller what a single applied move did to the round.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultDraw
	ResultCancelled
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimensions Error = "invalid board dimensions"
	ErrRowsOutOfRange    Error = "board rows should be from 5 to 9"
	ErrColumnsOutOfRange Error = "board columns should be from 5 to 9"
	ErrInvalidGameCount  Error = "invalid number of games"
	ErrInvalidPlayers    Error = "invalid players"

	ErrIncorrectColumn  Error = "incorrect column number"
	ErrColumnOutOfRange Error = "the column number is out of range"
	ErrColumnFull       Error = "column is full"

	ErrNotConfigured Error = "board dimensions are not configured"
	ErrGameOver      Error = "game is over"
)

// IsConfigError reports whether err came from setup validation. The driver
// re-prompts on these.
func IsConfigError(err error) bool {
	for _, target := range []error{ErrInvalidDimensions, ErrRowsOutOfRange, ErrColumnsOutOfRange, ErrInvalidGameCount, ErrInvalidPlayers} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsMoveError reports whether err rejected a single move. The game state is
// unchanged and another move may be submitted.
func IsMoveError(err error) bool {
	return errors.Is(err, ErrIncorrectColumn) ||
		errors.Is(err, ErrColumnOutOfRange) ||
		errors.Is(err, ErrColumnFull)
}
