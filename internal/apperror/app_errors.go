package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameOver         = errors.New("game is already over")
	ErrOutOfBounds      = errors.New("cell is out of bounds")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrIllegalDrop      = errors.New("mark must land on the lowest empty cell of the column")
	ErrColumnFull       = fmt.Errorf("%w: column is full", ErrIllegalDrop)
	ErrUnreachableBoard = errors.New("board can't be reached by alternating play")
)
