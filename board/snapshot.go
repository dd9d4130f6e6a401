package board

import (
	"github.com/domino14/amath/tilemapping"
)

type cell struct {
	tile   tilemapping.Tile
	filled bool
}

// A Snapshot is a read-only copy of a board at one point in time. It is
// safe to share between goroutines.
type Snapshot struct {
	layout *Layout
	cells  [Dim][Dim]cell
}

// EmptySnapshot returns a snapshot of an empty board with the given layout.
func EmptySnapshot(l *Layout) *Snapshot {
	return &Snapshot{layout: l}
}

// At returns the tile at row, col, if any.
func (s *Snapshot) At(row, col int) (tilemapping.Tile, bool) {
	if row < 0 || row >= Dim || col < 0 || col >= Dim {
		return tilemapping.Tile{}, false
	}
	c := s.cells[row][col]
	return c.tile, c.filled
}

func (s *Snapshot) Bonus(pos Position) BonusSquare {
	return s.layout.Bonus(pos)
}

// With returns a new snapshot with the tile placed at the position. It
// overwrites whatever was there. It is mostly useful for building
// positions in tests.
func (s *Snapshot) With(pos Position, t tilemapping.Tile) *Snapshot {
	ns := *s
	if pos.Valid() {
		ns.cells[pos.Row][pos.Col] = cell{tile: t, filled: true}
	}
	return &ns
}

// NumTiles returns how many squares are occupied.
func (s *Snapshot) NumTiles() int {
	n := 0
	for r := range s.cells {
		for c := range s.cells[r] {
			if s.cells[r][c].filled {
				n++
			}
		}
	}
	return n
}
