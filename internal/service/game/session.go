package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/iamasit07/connect4/internal/domain"
	"github.com/iamasit07/connect4/pkg/uid"
)

// GameSession wraps one domain.Game for the lifetime of a process run and
// records what happens to it. It is not safe for concurrent use; moves are
// applied one at a time by a single driver.
type GameSession struct {
	SessionID  string
	Game       *domain.Game
	CreatedAt  time.Time
	FinishedAt time.Time
	Reason     string
	MoveCount  int
	log        *zap.Logger
}

func NewGameSession(first, second domain.Player, logger *zap.Logger) (*GameSession, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g, err := domain.NewGame(first, second)
	if err != nil {
		return nil, err
	}
	id, err := uid.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	gs := &GameSession{
		SessionID: id,
		Game:      g,
		CreatedAt: time.Now(),
		log:       logger.With(zap.String("session_id", id)),
	}
	gs.log.Info("session created",
		zap.String("player1", first.Name),
		zap.String("player2", second.Name))
	return gs, nil
}

func (gs *GameSession) ApplyDimensions(spec string) error {
	if err := gs.Game.ApplyDimensions(spec); err != nil {
		gs.log.Warn("rejected board dimensions", zap.String("input", spec), zap.Error(err))
		return err
	}
	gs.log.Info("board configured", zap.Int("rows", gs.Game.Rows()), zap.Int("columns", gs.Game.Columns()))
	return nil
}

func (gs *GameSession) ApplyGameCount(spec string) error {
	if err := gs.Game.ApplyGameCount(spec); err != nil {
		gs.log.Warn("rejected game count", zap.String("input", spec), zap.Error(err))
		return err
	}
	gs.log.Info("game count configured", zap.Int("rounds", gs.Game.TotalRounds()))
	return nil
}

// Play applies one line of input for whoever's turn it is.
func (gs *GameSession) Play(input string) (domain.Outcome, error) {
	mover := gs.Game.CurrentPlayer()
	out, err := gs.Game.ApplyMove(input)
	if err != nil {
		gs.log.Debug("move rejected",
			zap.String("player", mover.Name),
			zap.String("input", input),
			zap.Error(err))
		return out, err
	}

	switch out.Result {
	case domain.ResultCancelled:
		gs.log.Info("game cancelled", zap.String("player", mover.Name), zap.Int("round", out.Round))
		gs.finish("cancelled")
		return out, nil
	case domain.ResultWin:
		gs.MoveCount++
		gs.log.Info("round won",
			zap.String("player", mover.Name),
			zap.Int("round", out.Round),
			zap.Int("score", gs.Game.Player(out.Mover).Score))
	case domain.ResultDraw:
		gs.MoveCount++
		gs.log.Info("round drawn", zap.Int("round", out.Round))
	default:
		gs.MoveCount++
		gs.log.Debug("move applied",
			zap.String("player", mover.Name),
			zap.Int("column", out.Column),
			zap.Int("row", out.Row))
	}

	if out.NewRound {
		gs.log.Info("next round started", zap.Int("round", gs.Game.Round()))
	}
	if gs.Game.IsOver() {
		gs.finish(string(out.Status))
	}
	return out, nil
}

// Scores returns both players in seat order.
func (gs *GameSession) Scores() (domain.Player, domain.Player) {
	return gs.Game.Players()
}

func (gs *GameSession) finish(reason string) {
	gs.FinishedAt = time.Now()
	gs.Reason = reason
	first, second := gs.Game.Players()
	gs.log.Info("session finished",
		zap.String("reason", reason),
		zap.Int("moves", gs.MoveCount),
		zap.Duration("duration", gs.FinishedAt.Sub(gs.CreatedAt)),
		zap.Int("player1_score", first.Score),
		zap.Int("player2_score", second.Score))
}
