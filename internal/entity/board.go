package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Rows  = 6
	Cols  = 7
	ToWin = 4
)

const (
	MarkRed   Mark = "RED"
	MarkBlack Mark = "BLACK"

	EmptyCell Mark = ""
)

const (
	symbolEmpty = '.'
	symbolRed   = 'R'
	symbolBlack = 'B'
)

var ErrMalformedBoard = errors.New("malformed board")

// Mark is what a player leaves in a cell. The zero value is an empty cell.
type Mark string

// Opponent returns the other player's mark. An empty cell has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkRed:
		return MarkBlack
	case MarkBlack:
		return MarkRed
	default:
		return EmptyCell
	}
}

func (m Mark) IsEmpty() bool {
	return m == EmptyCell
}

// Symbol is the single character used for the mark in the text board format.
func (m Mark) Symbol() byte {
	switch m {
	case MarkRed:
		return symbolRed
	case MarkBlack:
		return symbolBlack
	default:
		return symbolEmpty
	}
}

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is the 6x7 grid, row 0 on top and column 0 on the left.
type Board [Rows][Cols]Mark

func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (that *Board) At(c Coord) Mark {
	return that[c.Row][c.Col]
}

// Count returns how many cells hold the given mark.
func (that *Board) Count(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				count++
			}
		}
	}

	return count
}

// IsFull reports whether every cell of every row is occupied.
func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}

	return true
}

// LandingRow returns the lowest empty row of the column, false if the column is full or does not exist.
func (that *Board) LandingRow(col int) (int, bool) {
	if col < 0 || col >= Cols {
		return -1, false
	}

	for row := Rows - 1; row >= 0; row-- {
		if that[row][col].IsEmpty() {
			return row, true
		}
	}

	return -1, false
}

// String renders the board as six lines of seven symbols, top row first.
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))

	for r, row := range that {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteByte(cell.Symbol())
		}
	}

	return sb.String()
}

// ParseBoard reads the format produced by Board.String. Blank lines and surrounding spaces are ignored.
func ParseBoard(text string) (Board, error) {
	var board Board

	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) != Rows {
		return Board{}, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, Rows, len(lines))
	}

	for r, line := range lines {
		if len(line) != Cols {
			return Board{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrMalformedBoard, r, len(line), Cols)
		}

		for c := 0; c < Cols; c++ {
			switch line[c] {
			case symbolEmpty:
				board[r][c] = EmptyCell
			case symbolRed:
				board[r][c] = MarkRed
			case symbolBlack:
				board[r][c] = MarkBlack
			default:
				return Board{}, fmt.Errorf("%w: unknown symbol %q at row %d, col %d", ErrMalformedBoard, line[c], r, c)
			}
		}
	}

	return board, nil
}

// MustParseBoard is ParseBoard for fixtures known to be valid.
func MustParseBoard(text string) Board {
	board, err := ParseBoard(text)
	if err != nil {
		panic(err)
	}

	return board
}
