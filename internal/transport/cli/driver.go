package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/internal/service/game"
)

// ErrNoInput is returned when input ends before the game could be set up.
var ErrNoInput = errors.New("input closed before setup finished")

// Driver runs one interactive session: it asks for the players and the game
// settings, then reads one move per line until the game is over.
type Driver struct {
	in      io.Reader
	out     io.Writer
	symbols [2]rune
	log     *zap.Logger
}

func NewDriver(in io.Reader, out io.Writer, first, second rune, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{in: in, out: out, symbols: [2]rune{first, second}, log: logger}
}

// Run blocks until the session ends, the input closes or ctx is cancelled.
// Closed input during play counts as "end".
func (d *Driver) Run(ctx context.Context) error {
	lines := newLineReader(d.in)
	defer lines.close()

	d.println("Connect Four")
	gs, err := d.setup(ctx, lines)
	if err != nil {
		return err
	}
	d.printSetup(gs)

	for !gs.Game.IsOver() {
		d.printf("%s's turn:\n", gs.Game.CurrentPlayer().Name)
		input, err := lines.next(ctx)
		if errors.Is(err, io.EOF) {
			input = "end"
		} else if err != nil {
			return err
		}
		d.play(gs, input)
	}

	d.println("Game over!")
	return nil
}

func (d *Driver) setup(ctx context.Context, lines *lineReader) (*game.GameSession, error) {
	first, err := d.askName(ctx, lines, "First player's name:")
	if err != nil {
		return nil, err
	}
	second, err := d.askName(ctx, lines, "Second player's name:")
	if err != nil {
		return nil, err
	}

	gs, err := game.NewGameSession(
		domain.Player{Name: first, Symbol: d.symbols[0]},
		domain.Player{Name: second, Symbol: d.symbols[1]},
		d.log,
	)
	if err != nil {
		return nil, err
	}

	for {
		d.println("Set the board dimensions (Rows x Columns)")
		d.println("Press Enter for default (6 x 7)")
		spec, err := d.read(ctx, lines)
		if err != nil {
			return nil, err
		}
		err = gs.ApplyDimensions(spec)
		if err == nil {
			break
		}
		d.println(configMessage(err))
	}

	for {
		d.println("Do you want to play single or multiple games?")
		d.println("For a single game, input 1 or press Enter")
		d.println("Input a number of games:")
		spec, err := d.read(ctx, lines)
		if err != nil {
			return nil, err
		}
		err = gs.ApplyGameCount(spec)
		if err == nil {
			break
		}
		d.println(configMessage(err))
	}

	return gs, nil
}

func (d *Driver) askName(ctx context.Context, lines *lineReader, prompt string) (string, error) {
	for {
		d.println(prompt)
		name, err := d.read(ctx, lines)
		if err != nil {
			return "", err
		}
		if name = strings.TrimSpace(name); name != "" {
			return name, nil
		}
	}
}

func (d *Driver) read(ctx context.Context, lines *lineReader) (string, error) {
	line, err := lines.next(ctx)
	if errors.Is(err, io.EOF) {
		return "", ErrNoInput
	}
	return line, err
}

func (d *Driver) printSetup(gs *game.GameSession) {
	first, second := gs.Scores()
	d.printf("%s VS %s\n", first.Name, second.Name)
	d.printf("%d X %d board\n", gs.Game.Rows(), gs.Game.Columns())
	if gs.Game.TotalRounds() > 1 {
		d.printf("Total %d games\n", gs.Game.TotalRounds())
		d.printf("Game #%d\n", gs.Game.Round())
	} else {
		d.println("Single game")
	}
	d.printBoard(gs)
}

func (d *Driver) play(gs *game.GameSession, input string) {
	out, err := gs.Play(input)
	switch {
	case errors.Is(err, domain.ErrIncorrectColumn):
		d.println("Incorrect column number")
		return
	case errors.Is(err, domain.ErrColumnOutOfRange):
		d.printf("The column number is out of range (1 - %d)\n", gs.Game.Columns())
		return
	case errors.Is(err, domain.ErrColumnFull):
		d.printf("Column %s is full\n", input)
		return
	case err != nil:
		d.println(err.Error())
		return
	}

	if out.Result == domain.ResultCancelled {
		return
	}

	// a finished round is shown as it ended, even if the board was already
	// cleared for the next one
	if out.Final != nil {
		RenderBoard(d.out, out.Final, gs.Game.Symbol)
	} else {
		d.printBoard(gs)
	}

	switch out.Result {
	case domain.ResultWin:
		d.printf("Player %s won\n", gs.Game.Player(out.Mover).Name)
	case domain.ResultDraw:
		d.println("It is a draw")
	}

	if out.Result != domain.ResultNone && gs.Game.TotalRounds() > 1 {
		first, second := gs.Scores()
		RenderScore(d.out, first, second)
	}
	if out.NewRound {
		d.printf("Game #%d\n", gs.Game.Round())
		d.printBoard(gs)
	}
}

func (d *Driver) printBoard(gs *game.GameSession) {
	RenderBoard(d.out, gs.Game.Board(), gs.Game.Symbol)
}

func (d *Driver) println(s string) {
	fmt.Fprintln(d.out, s)
}

func (d *Driver) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func configMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRowsOutOfRange):
		return "Board rows should be from 5 to 9"
	case errors.Is(err, domain.ErrColumnsOutOfRange):
		return "Board columns should be from 5 to 9"
	default:
		return "Invalid input"
	}
}

// lineReader moves the blocking reads off the caller's goroutine so that a
// cancelled context can interrupt a pending prompt.
type lineReader struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{lines: make(chan string), done: make(chan struct{})}
	go func() {
		defer close(lr.lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lr.lines <- strings.TrimRight(sc.Text(), "\r"):
			case <-lr.done:
				return
			}
		}
		lr.err = sc.Err()
	}()
	return lr
}

func (lr *lineReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-lr.lines:
		if !ok {
			if lr.err != nil {
				return "", lr.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

func (lr *lineReader) close() {
	close(lr.done)
}
