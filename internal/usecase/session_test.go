package usecase

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	calls int
	last  entity.Snapshot
}

func (that *countingObserver) StateChanged(snapshot entity.Snapshot) {
	that.calls++
	that.last = snapshot
}

func newTestSession(t *testing.T, observers ...connectfour.Observer) (*GameSession, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewGameSession(logger, connectfour.New("session-1"), observers...), &logs
}

func TestGameSession_Drop(t *testing.T) {
	ctx := context.Background()

	t.Run("Accepted move returns the new state", func(t *testing.T) {
		// Given: a new session with an observer
		observer := &countingObserver{}
		session, logs := newTestSession(t, observer)

		// When: black drops into column 3
		snapshot, err := session.Drop(ctx, 3)

		// Then: the snapshot shows the mark and red to move
		require.NoError(t, err)
		assert.Equal(t, entity.MarkBlack, snapshot.Board[5][3])
		assert.Equal(t, entity.MarkRed, snapshot.Turn)
		assert.True(t, snapshot.Started)
		assert.Equal(t, "session-1", snapshot.Session)

		// Then: the observer was notified and the move was logged
		assert.Equal(t, 1, observer.calls)
		assert.Equal(t, *snapshot, observer.last)
		assert.Contains(t, logs.String(), "move accepted")
	})

	t.Run("Rejected move is wrapped and logged", func(t *testing.T) {
		// Given: a new session
		observer := &countingObserver{}
		session, logs := newTestSession(t, observer)

		// When: dropping into a column that does not exist
		snapshot, err := session.Drop(ctx, 9)

		// Then: the engine error is still recognisable
		require.ErrorIs(t, err, apperror.ErrOutOfBounds)
		assert.Nil(t, snapshot)
		assert.Zero(t, observer.calls)
		assert.Contains(t, logs.String(), "move rejected")
	})

	t.Run("Winning move logs the winner", func(t *testing.T) {
		// Given: a new session
		session, logs := newTestSession(t)

		// When: black stacks four in column 0
		var snapshot *entity.Snapshot
		for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
			var err error
			snapshot, err = session.Drop(ctx, col)
			require.NoError(t, err)
		}

		// Then: the game is over with black as winner
		require.True(t, snapshot.IsOver())
		assert.Equal(t, entity.MarkBlack, snapshot.Win.Mark)
		assert.Contains(t, logs.String(), `"winner":"BLACK"`)

		// Then: further moves are rejected
		_, err := session.Drop(ctx, 4)
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})
}

func TestGameSession_Restart(t *testing.T) {
	ctx := context.Background()

	// Given: a session with a move played
	observer := &countingObserver{}
	session, _ := newTestSession(t, observer)
	_, err := session.Drop(ctx, 2)
	require.NoError(t, err)

	// When: restarting
	snapshot := session.Restart(ctx)

	// Then: the board is empty and the observer saw both mutations
	assert.Equal(t, entity.Board{}, snapshot.Board)
	assert.False(t, snapshot.Started)
	assert.Equal(t, entity.MarkBlack, snapshot.Turn)
	assert.Equal(t, 2, observer.calls)
	assert.Equal(t, *snapshot, session.State())
}
