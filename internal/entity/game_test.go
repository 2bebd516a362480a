package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkBlack, MarkRed.Opponent())
	assert.Equal(t, MarkRed, MarkBlack.Opponent())
	assert.Equal(t, EmptyCell, EmptyCell.Opponent())
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses symbols row-major, top row first", func(t *testing.T) {
		// Given: a board with one mark of each kind on the bottom row
		text := `
			.......
			.......
			.......
			.......
			.......
			R.....B
		`

		// When: parsing the board
		board, err := ParseBoard(text)

		// Then: the marks should land on row 5, the rest stays empty
		require.NoError(t, err)
		assert.Equal(t, MarkRed, board[5][0])
		assert.Equal(t, MarkBlack, board[5][6])
		assert.Equal(t, 1, board.Count(MarkRed))
		assert.Equal(t, 1, board.Count(MarkBlack))
		assert.Equal(t, 40, board.Count(EmptyCell))
	})

	t.Run("Round-trips through String", func(t *testing.T) {
		// Given: a board rendered to text
		text := "" +
			".......\n" +
			".......\n" +
			"...B...\n" +
			"..RR...\n" +
			"..BRB..\n" +
			"BRRBBR."

		// When: parsing and rendering it again
		board, err := ParseBoard(text)
		require.NoError(t, err)

		// Then: the text should be unchanged
		assert.Equal(t, text, board.String())
	})

	t.Run("Returns ErrMalformedBoard on wrong row count", func(t *testing.T) {
		// When: parsing a board with five rows
		_, err := ParseBoard(".......\n.......\n.......\n.......\n.......")

		// Then: ErrMalformedBoard should be returned
		require.ErrorIs(t, err, ErrMalformedBoard)
		assert.Contains(t, err.Error(), "expected 6 rows")
	})

	t.Run("Returns ErrMalformedBoard on wrong row width", func(t *testing.T) {
		// When: parsing a board whose last row is too short
		_, err := ParseBoard(".......\n.......\n.......\n.......\n.......\n......")

		// Then: ErrMalformedBoard should be returned
		require.ErrorIs(t, err, ErrMalformedBoard)
	})

	t.Run("Returns ErrMalformedBoard on unknown symbol", func(t *testing.T) {
		// When: parsing a board with an X in it
		_, err := ParseBoard(".......\n.......\n.......\n.......\n.......\n...X...")

		// Then: ErrMalformedBoard should be returned
		require.ErrorIs(t, err, ErrMalformedBoard)
		assert.Contains(t, err.Error(), "'X'")
	})
}

func TestBoard_LandingRow(t *testing.T) {
	board := MustParseBoard(`
		B......
		R......
		B......
		R......
		B.R....
		R.B....
	`)

	t.Run("Empty column lands on the bottom row", func(t *testing.T) {
		row, ok := board.LandingRow(1)

		assert.True(t, ok)
		assert.Equal(t, Rows-1, row)
	})

	t.Run("Partly filled column lands above the top mark", func(t *testing.T) {
		row, ok := board.LandingRow(2)

		assert.True(t, ok)
		assert.Equal(t, 3, row)
	})

	t.Run("Full column has no landing row", func(t *testing.T) {
		_, ok := board.LandingRow(0)

		assert.False(t, ok)
	})

	t.Run("Unknown column has no landing row", func(t *testing.T) {
		_, ok := board.LandingRow(Cols)
		assert.False(t, ok)

		_, ok = board.LandingRow(-1)
		assert.False(t, ok)
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Empty board is not full", func(t *testing.T) {
		board := Board{}

		assert.False(t, board.IsFull())
	})

	t.Run("One empty cell keeps the board open", func(t *testing.T) {
		board := MustParseBoard(`
			.BRBRBR
			BRBRBRB
			BRBRBRB
			RBRBRBR
			RBRBRBR
			BRBRBRB
		`)

		assert.False(t, board.IsFull())
	})

	t.Run("Every cell occupied", func(t *testing.T) {
		board := MustParseBoard(`
			RBRBRBR
			BRBRBRB
			BRBRBRB
			RBRBRBR
			RBRBRBR
			BRBRBRB
		`)

		assert.True(t, board.IsFull())
	})
}

func TestWinResult(t *testing.T) {
	t.Run("Nil result is neither draw nor containing cells", func(t *testing.T) {
		var win *WinResult

		assert.False(t, win.IsDraw())
		assert.False(t, win.Contains(Coord{Row: 0, Col: 0}))
	})

	t.Run("Contains finds line cells", func(t *testing.T) {
		win := &WinResult{
			Mark: MarkRed,
			Line: []Coord{{5, 0}, {5, 1}, {5, 2}, {5, 3}},
		}

		assert.True(t, win.Contains(Coord{Row: 5, Col: 2}))
		assert.False(t, win.Contains(Coord{Row: 5, Col: 4}))
		assert.False(t, win.IsDraw())
	})
}
