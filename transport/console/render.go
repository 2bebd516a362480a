package console

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

// Render draws the status line, the grid and the column numbers. Cells of a winning line are lower case.
func Render(snapshot entity.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(status(snapshot))
	sb.WriteByte('\n')

	for r := 0; r < entity.Rows; r++ {
		for c := 0; c < entity.Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}

			symbol := snapshot.Board[r][c].Symbol()
			if snapshot.Win.Contains(entity.Coord{Row: r, Col: c}) {
				symbol = symbol - 'A' + 'a'
			}
			sb.WriteByte(symbol)
		}
		sb.WriteByte('\n')
	}

	for c := 1; c <= entity.Cols; c++ {
		if c > 1 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte('\n')

	return sb.String()
}

func status(snapshot entity.Snapshot) string {
	switch {
	case snapshot.Win.IsDraw():
		return "DRAW"
	case snapshot.Win != nil:
		return "WINNER: " + string(snapshot.Win.Mark)
	default:
		return "TURN: " + string(snapshot.Turn)
	}
}
