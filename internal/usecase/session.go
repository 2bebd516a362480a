package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

type gameEngine interface {
	ID() string
	Drop(col int) (int, error)
	Restart()
	Snapshot() entity.Snapshot
	Subscribe(observer connectfour.Observer)
}

// GameSession drives a single engine on behalf of a presentation layer.
type GameSession struct {
	logger *slog.Logger
	engine gameEngine
}

func NewGameSession(logger *slog.Logger, engine gameEngine, observers ...connectfour.Observer) *GameSession {
	for _, observer := range observers {
		engine.Subscribe(observer)
	}

	return &GameSession{
		logger: logger.With("component", "session", "sessionID", engine.ID()),
		engine: engine,
	}
}

// Drop plays the current player's mark into col.
func (that *GameSession) Drop(ctx context.Context, col int) (*entity.Snapshot, error) {
	log := that.logger.With("method", "Drop", "col", col)

	mover := that.engine.Snapshot().Turn

	row, err := that.engine.Drop(col)
	if err != nil {
		log.WarnContext(ctx, "move rejected", "mark", mover, "error", err)

		return nil, fmt.Errorf("failed to drop mark: %w", err)
	}

	snapshot := that.engine.Snapshot()
	log.DebugContext(ctx, "move accepted", "mark", mover, "row", row, "version", snapshot.Version)

	switch {
	case snapshot.Win.IsDraw():
		log.InfoContext(ctx, "game finished", "result", "draw")
	case snapshot.Win != nil:
		log.InfoContext(ctx, "game finished", "winner", snapshot.Win.Mark, "line", snapshot.Win.Line)
	}

	return &snapshot, nil
}

// Restart starts a new game on the same session.
func (that *GameSession) Restart(ctx context.Context) *entity.Snapshot {
	that.engine.Restart()

	snapshot := that.engine.Snapshot()
	that.logger.InfoContext(ctx, "game restarted", "version", snapshot.Version)

	return &snapshot
}

func (that *GameSession) State() entity.Snapshot {
	return that.engine.Snapshot()
}
