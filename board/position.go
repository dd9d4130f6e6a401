package board

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// A Position is a square on the board. Row and Col are zero-based.
type Position struct {
	Row int
	Col int
}

var (
	reColRow  = regexp.MustCompile(`^(?P<col>[A-O])(?P<row>[0-9]+)$`)
	reRowCol  = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-O])$`)
	reNumeric = regexp.MustCompile(`^(?P<row>[0-9]+)[-,](?P<col>[0-9]+)$`)
)

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Dim && p.Col >= 0 && p.Col < Dim
}

// String returns the zero-based "row-col" form.
func (p Position) String() string {
	return fmt.Sprintf("%d-%d", p.Row, p.Col)
}

// Coords returns the board-game coordinates, e.g. H8 for the center.
func (p Position) Coords() string {
	return fmt.Sprintf("%c%d", 'A'+p.Col, p.Row+1)
}

// FromCoords parses a position. It accepts board-game coordinates
// (H8 or 8H, column letter A-O and one-based row) or the zero-based
// "row-col" / "row,col" forms.
func FromCoords(c string) (Position, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	var row, col int
	if m := reColRow.FindStringSubmatch(c); len(m) == 3 {
		row, _ = strconv.Atoi(m[2])
		col = int(m[1][0] - 'A')
		row--
	} else if m := reRowCol.FindStringSubmatch(c); len(m) == 3 {
		row, _ = strconv.Atoi(m[1])
		col = int(m[2][0] - 'A')
		row--
	} else if m := reNumeric.FindStringSubmatch(c); len(m) == 3 {
		row, _ = strconv.Atoi(m[1])
		col, _ = strconv.Atoi(m[2])
	} else {
		return Position{}, fmt.Errorf("cannot parse coordinates %q", c)
	}
	pos := Position{Row: row, Col: col}
	if !pos.Valid() {
		return Position{}, fmt.Errorf("%w: %q", ErrOutOfBounds, c)
	}
	return pos, nil
}
