package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Observer is told about every accepted Play, Drop and Restart.
type Observer interface {
	StateChanged(snapshot entity.Snapshot)
}

// Engine owns one game: the board, whose turn it is and whether anyone has moved yet.
// It is not safe for concurrent use.
type Engine struct {
	id      string
	board   entity.Board
	turn    entity.Mark
	started bool
	version uint64

	observers []Observer
}

func New(id string) *Engine {
	return &Engine{
		id:   id,
		turn: FirstMover,
	}
}

// FromBoard positions a new engine at an existing board.
func FromBoard(id string, board entity.Board) (*Engine, error) {
	if err := validateReachable(board); err != nil {
		return nil, err
	}

	return &Engine{
		id:      id,
		board:   board,
		turn:    DeriveTurn(board),
		started: board.Count(entity.EmptyCell) < entity.Rows*entity.Cols,
	}, nil
}

func (that *Engine) ID() string {
	return that.id
}

// Board returns a copy of the grid.
func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) CurrentTurn() entity.Mark {
	return that.turn
}

func (that *Engine) Started() bool {
	return that.started
}

// WinState is recomputed from the board on every call.
func (that *Engine) WinState() *entity.WinResult {
	return checkGameStatus(&that.board)
}

func (that *Engine) IsOver() bool {
	return that.WinState() != nil
}

func (that *Engine) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Session: that.id,
		Version: that.version,
		Board:   that.board,
		Turn:    that.turn,
		Started: that.started,
		Win:     that.WinState(),
	}
}

// Subscribe registers an observer. Observers run synchronously in subscription order.
func (that *Engine) Subscribe(observer Observer) {
	that.observers = append(that.observers, observer)
}

// LandingRow returns the row a mark dropped into col would occupy.
func (that *Engine) LandingRow(col int) (int, bool) {
	return that.board.LandingRow(col)
}

// Playable reports whether Play(col, row) would be accepted.
func (that *Engine) Playable(col, row int) bool {
	return that.validateMove(col, row) == nil
}

// Play puts the current player's mark at (row, col). A rejected move leaves the engine untouched.
func (that *Engine) Play(col, row int) error {
	if err := that.validateMove(col, row); err != nil {
		return err
	}

	that.board[row][col] = that.turn
	that.turn = toggleMark(that.turn)
	that.started = true

	that.commit()

	return nil
}

// Drop plays into the lowest empty cell of col and returns the row it landed on.
func (that *Engine) Drop(col int) (int, error) {
	if that.IsOver() {
		return -1, apperror.ErrGameOver
	}

	if col < 0 || col >= entity.Cols {
		return -1, fmt.Errorf("%w: col %d", apperror.ErrOutOfBounds, col)
	}

	row, ok := that.board.LandingRow(col)
	if !ok {
		return -1, fmt.Errorf("%w: col %d", apperror.ErrColumnFull, col)
	}

	if err := that.Play(col, row); err != nil {
		return -1, err
	}

	return row, nil
}

// Restart clears the board and hands the first move back to FirstMover.
func (that *Engine) Restart() {
	that.board = entity.Board{}
	that.turn = FirstMover
	that.started = false

	that.commit()
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(col, row int) error {
	if that.IsOver() {
		return apperror.ErrGameOver
	}

	if !entity.InBounds(row, col) {
		return fmt.Errorf("%w: col %d, row %d", apperror.ErrOutOfBounds, col, row)
	}

	if !that.board[row][col].IsEmpty() {
		return fmt.Errorf("%w: col %d, row %d", apperror.ErrCellOccupied, col, row)
	}

	if landing, _ := that.board.LandingRow(col); landing != row {
		return fmt.Errorf("%w: col %d lands on row %d, not %d", apperror.ErrIllegalDrop, col, landing, row)
	}

	return nil
}

func (that *Engine) commit() {
	that.version++

	snapshot := that.Snapshot()
	for _, observer := range that.observers {
		observer.StateChanged(snapshot)
	}
}
