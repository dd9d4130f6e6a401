package board

import (
	"fmt"
	"os"
	"strings"

	"github.com/domino14/amath/tilemapping"
)

var (
	ColorSupport = os.Getenv("AMATH_DISABLE_COLOR") != "on"
)

func (b BonusSquare) displayString() string {
	if !ColorSupport {
		return string(b)
	}
	switch b {
	case Bonus3EQ:
		return fmt.Sprintf("\033[31m%s\033[0m", string(b))
	case Bonus2EQ:
		return fmt.Sprintf("\033[35m%s\033[0m", string(b))
	case Bonus3TS:
		return fmt.Sprintf("\033[34m%s\033[0m", string(b))
	case Bonus2TS:
		return fmt.Sprintf("\033[36m%s\033[0m", string(b))
	case BonusStar:
		return fmt.Sprintf("\033[33m%s\033[0m", string(b))
	}
	return string(b)
}

// cellText pads a tile symbol to three columns. The wide symbols (×/÷ and
// two-digit numbers) are what need the room.
func cellText(t tilemapping.Tile) string {
	s := tilemapping.UserVisible([]tilemapping.Tile{t})
	switch len([]rune(s)) {
	case 1:
		return " " + s + " "
	case 2:
		return s + " "
	}
	return s
}

// ToDisplayText renders the board as text, with bonus markers on empty
// squares.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("\n    ")
	for i := 0; i < Dim; i++ {
		sb.WriteString(fmt.Sprintf(" %c ", 'A'+i))
	}
	sb.WriteString("\n    " + strings.Repeat("-", Dim*3) + "\n")
	for r := 0; r < Dim; r++ {
		sb.WriteString(fmt.Sprintf("%2d |", r+1))
		for c := 0; c < Dim; c++ {
			pos := Position{Row: r, Col: c}
			if t, ok := g.tiles[pos]; ok {
				sb.WriteString(cellText(t))
				continue
			}
			b := g.layout.Bonus(pos)
			if b == NoBonus {
				sb.WriteString(" . ")
			} else {
				sb.WriteString(" " + b.displayString() + " ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("    " + strings.Repeat("-", Dim*3) + "\n")
	return sb.String()
}

// PlaceLine places tiles one after another starting at the position,
// going right if horizontal and down otherwise. It is used to set up
// positions.
func (g *GameBoard) PlaceLine(start Position, horizontal bool, tiles []tilemapping.Tile) error {
	pos := start
	for _, t := range tiles {
		if err := g.PlaceTile(pos, t); err != nil {
			return err
		}
		if horizontal {
			pos.Col++
		} else {
			pos.Row++
		}
	}
	return nil
}
