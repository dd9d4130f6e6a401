package board

import (
	"errors"
	"fmt"

	"github.com/domino14/amath/tilemapping"
)

var (
	ErrOutOfBounds = errors.New("position is off the board")
	ErrOccupied    = errors.New("square is already occupied")
	ErrEmptySquare = errors.New("square is empty")
)

// A GameBoard is the main board structure: a fixed bonus layout plus a
// sparse set of placed tiles.
type GameBoard struct {
	layout *Layout
	tiles  map[Position]tilemapping.Tile
}

// MakeBoard creates an empty board from a layout description.
func MakeBoard(desc []string) (*GameBoard, error) {
	l, err := MakeLayout(desc)
	if err != nil {
		return nil, err
	}
	return &GameBoard{layout: l, tiles: map[Position]tilemapping.Tile{}}, nil
}

// MustMakeBoard is MakeBoard for layouts known to be good, like AMathBoard.
func MustMakeBoard(desc []string) *GameBoard {
	b, err := MakeBoard(desc)
	if err != nil {
		panic(err)
	}
	return b
}

func (g *GameBoard) Dim() int {
	return Dim
}

func (g *GameBoard) Layout() *Layout {
	return g.layout
}

func (g *GameBoard) GetBonus(pos Position) BonusSquare {
	return g.layout.Bonus(pos)
}

// GetTile returns the tile at the position, if any.
func (g *GameBoard) GetTile(pos Position) (tilemapping.Tile, bool) {
	t, ok := g.tiles[pos]
	return t, ok
}

// PlaceTile puts a tile on an empty square.
func (g *GameBoard) PlaceTile(pos Position, t tilemapping.Tile) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if _, ok := g.tiles[pos]; ok {
		return fmt.Errorf("%w: %v", ErrOccupied, pos.Coords())
	}
	g.tiles[pos] = t
	return nil
}

// RemoveTile takes the tile off the square and returns it.
func (g *GameBoard) RemoveTile(pos Position) (tilemapping.Tile, error) {
	if !pos.Valid() {
		return tilemapping.Tile{}, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	t, ok := g.tiles[pos]
	if !ok {
		return tilemapping.Tile{}, fmt.Errorf("%w: %v", ErrEmptySquare, pos.Coords())
	}
	delete(g.tiles, pos)
	return t, nil
}

// MoveTile moves a tile from one square to another, empty one.
func (g *GameBoard) MoveTile(from, to Position) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, to)
	}
	if from == to {
		return nil
	}
	if _, ok := g.tiles[to]; ok {
		return fmt.Errorf("%w: %v", ErrOccupied, to.Coords())
	}
	t, err := g.RemoveTile(from)
	if err != nil {
		return err
	}
	g.tiles[to] = t
	return nil
}

// Find returns the position of the tile with the given id.
func (g *GameBoard) Find(id tilemapping.TileID) (Position, bool) {
	for pos, t := range g.tiles {
		if t.ID() == id {
			return pos, true
		}
	}
	return Position{}, false
}

func (g *GameBoard) TilesPlayed() int {
	return len(g.tiles)
}

// IsEmpty returns if the board is empty.
func (g *GameBoard) IsEmpty() bool {
	return len(g.tiles) == 0
}

// Clear clears the board.
func (g *GameBoard) Clear() {
	g.tiles = map[Position]tilemapping.Tile{}
}

// Copy returns a deep copy of the board. The layout is shared; it never
// changes.
func (g *GameBoard) Copy() *GameBoard {
	tiles := make(map[Position]tilemapping.Tile, len(g.tiles))
	for k, v := range g.tiles {
		tiles[k] = v
	}
	return &GameBoard{layout: g.layout, tiles: tiles}
}

// Snapshot returns an immutable dense copy of the board for scanning.
func (g *GameBoard) Snapshot() *Snapshot {
	s := &Snapshot{layout: g.layout}
	for pos, t := range g.tiles {
		s.cells[pos.Row][pos.Col] = cell{tile: t, filled: true}
	}
	return s
}
