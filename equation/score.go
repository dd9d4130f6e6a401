package equation

import (
	"github.com/domino14/amath/board"
	"github.com/domino14/amath/tilemapping"
)

// A BonusLookup returns the bonus square at a position, e.g.
// (*board.Snapshot).Bonus or (*board.GameBoard).GetBonus.
type BonusLookup func(board.Position) board.BonusSquare

// Score scores a run. Tile bonuses scale single tiles; equation bonuses
// scale the whole run but do not stack: the largest one wins.
// tiles and positions must be the same length and in the same order.
func Score(tiles []tilemapping.Tile, positions []board.Position, bonus BonusLookup) int {
	total := 0
	multiplier := 1
	for i, t := range tiles {
		b := bonus(positions[i])
		total += t.Value() * b.TileMultiplier()
		if m := b.EquationMultiplier(); m > multiplier {
			multiplier = m
		}
	}
	return total * multiplier
}
