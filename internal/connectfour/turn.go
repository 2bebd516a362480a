package connectfour

import (
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// FirstMover moves whenever both players have placed the same number of marks.
const FirstMover = entity.MarkBlack

// DeriveTurn computes whose turn it is from the board alone: the player with fewer marks moves,
// FirstMover on a tie.
func DeriveTurn(board entity.Board) entity.Mark {
	if board.Count(FirstMover) > board.Count(FirstMover.Opponent()) {
		return FirstMover.Opponent()
	}

	return FirstMover
}

func toggleMark(currentMark entity.Mark) entity.Mark {
	return currentMark.Opponent()
}

// validateReachable - checks that alternating gravity drops could have produced the board.
func validateReachable(board entity.Board) error {
	first := board.Count(FirstMover)
	second := board.Count(FirstMover.Opponent())

	if first != second && first != second+1 {
		return fmt.Errorf("%w: %s has %d marks, %s has %d", apperror.ErrUnreachableBoard,
			FirstMover, first, FirstMover.Opponent(), second)
	}

	for col := 0; col < entity.Cols; col++ {
		for row := 0; row < entity.Rows-1; row++ {
			if !board[row][col].IsEmpty() && board[row+1][col].IsEmpty() {
				return fmt.Errorf("%w: mark at row %d, col %d is floating", apperror.ErrUnreachableBoard, row, col)
			}
		}
	}

	return nil
}
