package connectfour

import "github.com/rocketscienceinc/connectfour/internal/entity"

// Start cells of every diagonal long enough to hold a winning run.
var (
	backSlashStarts = []entity.Coord{
		{Row: 2, Col: 0},
		{Row: 1, Col: 0},
		{Row: 0, Col: 0},
		{Row: 0, Col: 1},
		{Row: 0, Col: 2},
		{Row: 0, Col: 3},
	}

	forwardSlashStarts = []entity.Coord{
		{Row: 0, Col: 3},
		{Row: 0, Col: 4},
		{Row: 0, Col: 5},
		{Row: 0, Col: 6},
		{Row: 1, Col: 6},
		{Row: 2, Col: 6},
	}
)

type scanner func(board *entity.Board) *entity.WinResult

// scanners in priority order.
var scanners = []scanner{
	checkRows,
	checkColumns,
	checkBackSlashes,
	checkForwardSlashes,
}

// checkGameStatus - returns the winning run, a draw, or nil while the game goes on.
func checkGameStatus(board *entity.Board) *entity.WinResult {
	for _, scan := range scanners {
		if win := scan(board); win != nil {
			return win
		}
	}

	if board.IsFull() {
		return &entity.WinResult{Draw: true}
	}

	return nil
}

func checkRows(board *entity.Board) *entity.WinResult {
	for row := 0; row < entity.Rows; row++ {
		if win := scanLine(board, entity.Coord{Row: row, Col: 0}, 0, 1); win != nil {
			return win
		}
	}

	return nil
}

func checkColumns(board *entity.Board) *entity.WinResult {
	for col := 0; col < entity.Cols; col++ {
		if win := scanLine(board, entity.Coord{Row: 0, Col: col}, 1, 0); win != nil {
			return win
		}
	}

	return nil
}

// checkBackSlashes walks "\" diagonals down-right.
func checkBackSlashes(board *entity.Board) *entity.WinResult {
	for _, start := range backSlashStarts {
		if win := scanLine(board, start, 1, 1); win != nil {
			return win
		}
	}

	return nil
}

// checkForwardSlashes walks "/" diagonals down-left.
func checkForwardSlashes(board *entity.Board) *entity.WinResult {
	for _, start := range forwardSlashStarts {
		if win := scanLine(board, start, 1, -1); win != nil {
			return win
		}
	}

	return nil
}

// scanLine walks from start in the (dRow, dCol) direction and stops at the first run of ToWin equal marks.
func scanLine(board *entity.Board, start entity.Coord, dRow, dCol int) *entity.WinResult {
	var current run

	for at := start; entity.InBounds(at.Row, at.Col); at.Row, at.Col = at.Row+dRow, at.Col+dCol {
		if current.push(board.At(at), at) {
			return current.result()
		}
	}

	return nil
}

// run is the sequence of equal non-empty marks ending at the last pushed cell.
type run struct {
	mark   entity.Mark
	length int
	cells  [entity.ToWin]entity.Coord
}

// push extends or resets the run and reports whether it reached ToWin.
func (that *run) push(mark entity.Mark, at entity.Coord) bool {
	switch {
	case mark.IsEmpty():
		that.mark, that.length = entity.EmptyCell, 0
		return false
	case mark == that.mark:
		that.length++
	default:
		that.mark, that.length = mark, 1
	}

	that.cells[that.length-1] = at

	return that.length == entity.ToWin
}

func (that *run) result() *entity.WinResult {
	line := make([]entity.Coord, entity.ToWin)
	copy(line, that.cells[:])

	return &entity.WinResult{
		Mark: that.mark,
		Line: line,
	}
}
