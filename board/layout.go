package board

import "fmt"

// A BonusSquare is a bonus square (duh)
type BonusSquare rune

const (
	NoBonus BonusSquare = ' '
	// Bonus3EQ is a triple equation score
	Bonus3EQ BonusSquare = '='
	// Bonus2EQ is a double equation score
	Bonus2EQ BonusSquare = '-'
	// Bonus3TS is a triple tile score
	Bonus3TS BonusSquare = '"'
	// Bonus2TS is a double tile score
	Bonus2TS BonusSquare = '\''
	// BonusStar is the center square. It has no multiplier.
	BonusStar BonusSquare = '*'
)

// Dim is the dimension of the board.
const Dim = 15

var (
	// AMathBoard is the standard A-Math board.
	AMathBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   *   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
)

func (b BonusSquare) String() string {
	switch b {
	case Bonus3EQ:
		return "triple-equation"
	case Bonus2EQ:
		return "double-equation"
	case Bonus3TS:
		return "triple-tile"
	case Bonus2TS:
		return "double-tile"
	case BonusStar:
		return "center-star"
	}
	return "normal"
}

// TileMultiplier is the factor applied to a single tile on this square.
func (b BonusSquare) TileMultiplier() int {
	switch b {
	case Bonus2TS:
		return 2
	case Bonus3TS:
		return 3
	}
	return 1
}

// EquationMultiplier is the factor applied to a whole equation that covers
// this square.
func (b BonusSquare) EquationMultiplier() int {
	switch b {
	case Bonus2EQ:
		return 2
	case Bonus3EQ:
		return 3
	}
	return 1
}

// Layout is the fixed bonus-square layout of a board.
type Layout [Dim][Dim]BonusSquare

// MakeLayout creates a layout from a description.
func MakeLayout(desc []string) (*Layout, error) {
	if len(desc) != Dim {
		return nil, fmt.Errorf("layout has %d rows, expected %d", len(desc), Dim)
	}
	l := &Layout{}
	for r, s := range desc {
		row := []rune(s)
		if len(row) != Dim {
			return nil, fmt.Errorf("layout row %d has %d squares, expected %d", r, len(row), Dim)
		}
		for c, ch := range row {
			switch b := BonusSquare(ch); b {
			case NoBonus, Bonus3EQ, Bonus2EQ, Bonus3TS, Bonus2TS, BonusStar:
				l[r][c] = b
			default:
				return nil, fmt.Errorf("unknown bonus square %q at row %d col %d", ch, r, c)
			}
		}
	}
	return l, nil
}

// Bonus returns the bonus at the position; positions off the board are
// plain squares.
func (l *Layout) Bonus(pos Position) BonusSquare {
	if !pos.Valid() {
		return NoBonus
	}
	return l[pos.Row][pos.Col]
}
