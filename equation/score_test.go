package equation

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/amath/board"
)

func TestScorePlain(t *testing.T) {
	is := is.New(t)
	tiles := mustTiles(t, "2", "+", "3", "=", "5")
	plain := func(board.Position) board.BonusSquare { return board.NoBonus }
	is.Equal(Score(tiles, line(board.Position{}, true, 5), plain), 7)
}

func TestScoreTileAndEquationBonus(t *testing.T) {
	is := is.New(t)
	l, err := board.MakeLayout(board.AMathBoard)
	is.NoErr(err)
	// Row 3 starts with a double-tile square, then a double-equation
	// square at column 3.
	tiles := mustTiles(t, "2", "+", "3", "=", "5")
	is.Equal(Score(tiles, line(board.Position{Row: 3}, true, 5), l.Bonus), 16)
}

func TestScoreEquationBonusesDoNotStack(t *testing.T) {
	is := is.New(t)
	l, err := board.MakeLayout(board.AMathBoard)
	is.NoErr(err)
	// Columns 0 and 7 of row 0 are both triple-equation squares; column 3
	// is double-tile.
	tiles := mustTiles(t, "1", "2", "+", "3", "=", "1", "5", "1")
	is.Equal(Score(tiles, line(board.Position{}, true, 8), l.Bonus), 33)

	mixed := func(p board.Position) board.BonusSquare {
		switch p.Col {
		case 0:
			return board.Bonus2EQ
		case 2:
			return board.Bonus3EQ
		}
		return board.NoBonus
	}
	is.Equal(Score(mustTiles(t, "2", "+", "3", "=", "5"), line(board.Position{}, true, 5), mixed), 21)
}

func TestScoreBlankIsWorthless(t *testing.T) {
	is := is.New(t)
	l, err := board.MakeLayout(board.AMathBoard)
	is.NoErr(err)
	// A blank on a triple-tile square adds nothing.
	tiles := mustTiles(t, "?", "=", "1")
	is.Equal(Score(tiles, line(board.Position{Row: 5, Col: 1}, true, 3), l.Bonus), 2)
}
